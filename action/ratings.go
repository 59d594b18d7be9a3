package action

import (
	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/value"
)

// RatingBounds is the legal range of an action rating
var RatingBounds = value.Bounds[uint8]{Min: 0, Max: 4}

// Actions is a character's set of action ratings
type Actions interface {
	// Rating returns the rating of a, zero for unknown actions
	Rating(a Action) uint8
	// Set stores v clamped to RatingBounds and returns the stored rating
	Set(a Action, v uint8) (uint8, error)
	Increment(a Action) (uint8, error)
	Decrement(a Action) (uint8, error)
}

// Ratings is the map-backed Actions
type Ratings struct {
	ratings map[Action]*value.Bounded[uint8]
}

var _ Actions = (*Ratings)(nil)

// NewRatings returns every action at zero
func NewRatings() *Ratings {
	r := &Ratings{ratings: make(map[Action]*value.Bounded[uint8], len(allActions))}
	for _, a := range allActions {
		b := RatingBounds.Default()
		r.ratings[a] = &b
	}
	return r
}

func (r *Ratings) Rating(a Action) uint8 {
	b, ok := r.ratings[a]
	if !ok {
		return 0
	}
	return b.Get()
}

func (r *Ratings) Set(a Action, v uint8) (uint8, error) {
	b, err := r.lookup(a)
	if err != nil {
		return 0, err
	}
	return b.Set(v)
}

func (r *Ratings) Increment(a Action) (uint8, error) {
	b, err := r.lookup(a)
	if err != nil {
		return 0, err
	}
	return b.Increment(1)
}

func (r *Ratings) Decrement(a Action) (uint8, error) {
	b, err := r.lookup(a)
	if err != nil {
		return 0, err
	}
	return b.Decrement(1)
}

func (r *Ratings) lookup(a Action) (*value.Bounded[uint8], error) {
	b, ok := r.ratings[a]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown action %q", a)
	}
	return b, nil
}
