package value

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/KirkDiggler/darkforge/errors"
)

// Bounds is a reusable [Min, Max] range for Bounded values of one type
type Bounds[I constraints.Integer] struct {
	Min I
	Max I
}

// Validate checks that Min <= Max
func (b Bounds[I]) Validate() error {
	if b.Min > b.Max {
		return errors.InvalidArgumentf("min %v must be <= max %v", b.Min, b.Max).
			WithReason(ReasonInvalidBounds).
			WithMeta("min", b.Min).
			WithMeta("max", b.Max)
	}
	return nil
}

// Default returns a Bounded at Min. It panics if the bounds are invalid;
// use New for bounds that are not fixed at compile time.
func (b Bounds[I]) Default() Bounded[I] {
	if err := b.Validate(); err != nil {
		panic(err)
	}
	return Bounded[I]{min: b.Min, max: b.Max, current: b.Min}
}

// Contains reports whether v lies within the bounds
func (b Bounds[I]) Contains(v I) bool {
	return v >= b.Min && v <= b.Max
}

// Config holds the parameters for New
type Config[I constraints.Integer] struct {
	Min     I
	Max     I
	Current I
}

// Bounded is an integer clamped to [min, max]. The zero value is the
// degenerate range [0, 0].
type Bounded[I constraints.Integer] struct {
	min     I
	max     I
	current I
}

// New creates a Bounded from cfg
func New[I constraints.Integer](cfg Config[I]) (Bounded[I], error) {
	bounds := Bounds[I]{Min: cfg.Min, Max: cfg.Max}
	if err := bounds.Validate(); err != nil {
		return Bounded[I]{}, err
	}
	if !bounds.Contains(cfg.Current) {
		return Bounded[I]{}, errors.InvalidArgumentf("current %v must be within [%v, %v]", cfg.Current, cfg.Min, cfg.Max).
			WithReason(ReasonOutOfBounds).
			WithMeta("current", cfg.Current)
	}

	return Bounded[I]{min: cfg.Min, max: cfg.Max, current: cfg.Current}, nil
}

// Get returns the current value
func (b *Bounded[I]) Get() I { return b.current }

// Min returns the lower bound
func (b *Bounded[I]) Min() I { return b.min }

// Max returns the upper bound
func (b *Bounded[I]) Max() I { return b.max }

// Bounds returns the range of b
func (b *Bounded[I]) Bounds() Bounds[I] { return Bounds[I]{Min: b.min, Max: b.max} }

// AtMin reports whether the value sits on the lower bound
func (b *Bounded[I]) AtMin() bool { return b.current == b.min }

// AtMax reports whether the value sits on the upper bound
func (b *Bounded[I]) AtMax() bool { return b.current == b.max }

// Set stores v clamped into range and returns the stored value. The store
// happens even when ErrClampedLow or ErrClampedHigh is returned.
func (b *Bounded[I]) Set(v I) (I, error) {
	switch {
	case v < b.min:
		b.current = b.min
		return b.current, clampedLow(v, b.min)
	case v > b.max:
		b.current = b.max
		return b.current, clampedHigh(v, b.max)
	default:
		b.current = v
		return b.current, nil
	}
}

// Increment adds d, saturating at the limits of I, then behaves like Set
func (b *Bounded[I]) Increment(d I) (I, error) {
	return b.Set(SaturatingAdd(b.current, d))
}

// Decrement subtracts d, saturating at the limits of I, then behaves like Set
func (b *Bounded[I]) Decrement(d I) (I, error) {
	return b.Set(SaturatingSub(b.current, d))
}

// SaturatingAdd returns a+b pinned to the representable range of I
func SaturatingAdd[I constraints.Integer](a, b I) I {
	lo, hi := limits[I]()
	s := a + b
	switch {
	case b > 0 && s < a:
		return hi
	case b < 0 && s > a:
		return lo
	}
	return s
}

// SaturatingSub returns a-b pinned to the representable range of I
func SaturatingSub[I constraints.Integer](a, b I) I {
	lo, hi := limits[I]()
	s := a - b
	switch {
	case b > 0 && s > a:
		return lo
	case b < 0 && s < a:
		return hi
	}
	return s
}

func limits[I constraints.Integer]() (lo, hi I) {
	var zero I
	if ^zero > zero {
		// unsigned
		return zero, ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	lo = I(1) << (bits - 1)
	return lo, ^lo
}
