package value

import (
	"github.com/KirkDiggler/darkforge/errors"
)

// Reasons reported by this package
const (
	ReasonClampedLow    errors.Reason = "clamped_low"
	ReasonClampedHigh   errors.Reason = "clamped_high"
	ReasonInvalidBounds errors.Reason = "invalid_bounds"
	ReasonOutOfBounds   errors.Reason = "out_of_bounds"
)

var (
	// ErrClampedLow matches writes stored at the minimum
	ErrClampedLow = errors.Sentinel(errors.CodeOutOfRange, ReasonClampedLow, "value clamped to min")
	// ErrClampedHigh matches writes stored at the maximum
	ErrClampedHigh = errors.Sentinel(errors.CodeOutOfRange, ReasonClampedHigh, "value clamped to max")
	// ErrInvalidBounds matches a range whose min is above its max
	ErrInvalidBounds = errors.Sentinel(errors.CodeInvalidArgument, ReasonInvalidBounds, "min must be <= max")
	// ErrOutOfBounds matches an initial value outside its range
	ErrOutOfBounds = errors.Sentinel(errors.CodeInvalidArgument, ReasonOutOfBounds, "current must be within [min, max]")
)

func clampedLow[I any](attempted, limit I) error {
	return errors.OutOfRange("value clamped to min").
		WithReason(ReasonClampedLow).
		WithMeta("attempted", attempted).
		WithMeta("limit", limit)
}

func clampedHigh[I any](attempted, limit I) error {
	return errors.OutOfRange("value clamped to max").
		WithReason(ReasonClampedHigh).
		WithMeta("attempted", attempted).
		WithMeta("limit", limit)
}
