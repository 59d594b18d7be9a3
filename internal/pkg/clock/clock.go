// Package clock supplies the wall-clock time stamped on new characters
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/darkforge/internal/pkg/clock Clock

// Clock returns the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock, truncated to the second in UTC
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// New returns a system clock
func New() Clock {
	return &Real{}
}
