// Package value provides Bounded, an integer that always stays inside a
// closed range.
//
// Writes outside the range are stored clamped and reported with
// ErrClampedLow or ErrClampedHigh. The stored value is valid even when an
// error is returned, so callers may treat the error as information:
//
//	stress := value.Bounds[uint8]{Min: 0, Max: 10}.Default()
//	got, err := stress.Increment(12)
//	// got == 10, errors.Is(err, value.ErrClampedHigh)
package value
