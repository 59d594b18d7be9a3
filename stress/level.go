// Package stress tracks a character's stress and the traumas taken when
// stress maxes out.
package stress

import (
	"github.com/KirkDiggler/darkforge/value"
)

// MaxStress is the stress at which a trauma is pending
const MaxStress uint8 = 10

// Bounds is the legal stress range
var Bounds = value.Bounds[uint8]{Min: 0, Max: MaxStress}

// Level is a character's current stress
type Level struct {
	value.Bounded[uint8]
}

// NewLevel returns an unstressed Level
func NewLevel() Level {
	return Level{Bounded: Bounds.Default()}
}

// HasPendingTrauma reports whether stress is at its maximum
func (l *Level) HasPendingTrauma() bool {
	return l.Get() >= l.Max()
}

// Clear drops stress back to the minimum
func (l *Level) Clear() {
	// Min is always in range
	_, _ = l.Set(l.Min())
}
