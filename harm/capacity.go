package harm

import (
	"github.com/KirkDiggler/darkforge/errors"
)

// Capacity is the number of slots per severity
type Capacity struct {
	Lesser   int
	Moderate int
	Severe   int
	Fatal    int
}

// DefaultCapacity is the standard track: two lesser, two moderate, one
// severe and one fatal slot.
var DefaultCapacity = Capacity{Lesser: 2, Moderate: 2, Severe: 1, Fatal: 1}

// Validate requires at least one slot per severity and quotas that do not
// grow from Lesser up to Severe. Heal relies on the latter.
func (c Capacity) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("Capacity.Lesser", c.Lesser, 1, vb)
	errors.ValidateMin("Capacity.Moderate", c.Moderate, 1, vb)
	errors.ValidateMin("Capacity.Severe", c.Severe, 1, vb)
	errors.ValidateMin("Capacity.Fatal", c.Fatal, 1, vb)

	if c.Moderate > c.Lesser {
		vb.Fieldf("Capacity.Moderate", "must not exceed Capacity.Lesser (%d)", c.Lesser)
	}
	if c.Severe > c.Moderate {
		vb.Fieldf("Capacity.Severe", "must not exceed Capacity.Moderate (%d)", c.Moderate)
	}

	return vb.Build()
}

// For returns the slots available at sev
func (c Capacity) For(sev Severity) int {
	switch sev {
	case SeverityLesser:
		return c.Lesser
	case SeverityModerate:
		return c.Moderate
	case SeveritySevere:
		return c.Severe
	case SeverityFatal:
		return c.Fatal
	default:
		return 0
	}
}

// Total is the number of slots on the whole track
func (c Capacity) Total() int {
	return c.Lesser + c.Moderate + c.Severe + c.Fatal
}
