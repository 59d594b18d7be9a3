// Package tracker provides fixed-capacity collections used to record
// harm, traumas and similar marks on a character sheet.
//
// Trackers only grow. To remove or change items, build a new tracker from
// the items you want to keep.
package tracker

import (
	"github.com/KirkDiggler/darkforge/errors"
)

// Tracker is a collection that holds at most Capacity items
type Tracker[T comparable] interface {
	// Append adds item, or fails with ErrTooManyItems when full
	Append(item T) error
	// List returns a copy of the stored items
	List() []T
	Count() int
	Capacity() int
	IsEmpty() bool
	IsFull() bool
	Contains(item T) bool
}

// Factory builds a tracker with the given capacity and initial items
type Factory[T comparable] func(capacity int, items ...T) (Tracker[T], error)

// Reasons reported by this package
const (
	ReasonTooManyItems    errors.Reason = "too_many_items"
	ReasonDuplicate       errors.Reason = "duplicate"
	ReasonInvalidCapacity errors.Reason = "invalid_capacity"
)

var (
	// ErrTooManyItems matches appends or constructions past capacity
	ErrTooManyItems = errors.Sentinel(errors.CodeResourceExhausted, ReasonTooManyItems, "too many items")
	// ErrDuplicate matches appends of an item a unique tracker already holds
	ErrDuplicate = errors.Sentinel(errors.CodeAlreadyExists, ReasonDuplicate, "duplicate item")
)

func tooManyItems(capacity, attempted int) error {
	return errors.ResourceExhaustedf("too many items: capacity is %d but length would become %d", capacity, attempted).
		WithReason(ReasonTooManyItems).
		WithMeta("capacity", capacity).
		WithMeta("attempted", attempted)
}

func duplicate[T comparable](item T) error {
	return errors.AlreadyExistsf("cannot add duplicate item to unique tracker: %v", item).
		WithReason(ReasonDuplicate).
		WithMeta("item", item)
}

func validateCapacity(capacity int) error {
	if capacity < 0 {
		return errors.InvalidArgumentf("capacity must not be negative, got %d", capacity).
			WithReason(ReasonInvalidCapacity)
	}
	return nil
}
