package harm

import (
	"fmt"

	"github.com/KirkDiggler/darkforge/errors"
)

// Severity ranks harm from Lesser to Fatal
type Severity int

const (
	SeverityLesser Severity = iota
	SeverityModerate
	SeveritySevere
	SeverityFatal
)

// AllSeverities lists the severities from least to most serious
func AllSeverities() []Severity {
	return []Severity{SeverityLesser, SeverityModerate, SeveritySevere, SeverityFatal}
}

// Valid reports whether s is a known severity
func (s Severity) Valid() bool {
	return s >= SeverityLesser && s <= SeverityFatal
}

// Up returns the next severity, or ErrSeverityOutOfBounds past Fatal
func (s Severity) Up() (Severity, error) {
	if s >= SeverityFatal {
		return s, errors.OutOfRange("cannot increase severity past Fatal").
			WithReason(ReasonSeverityOutOfBounds)
	}
	return s + 1, nil
}

// Down returns the previous severity. False means s was Lesser and the harm
// is gone.
func (s Severity) Down() (Severity, bool) {
	if s <= SeverityLesser {
		return s, false
	}
	return s - 1, true
}

func (s Severity) String() string {
	switch s {
	case SeverityLesser:
		return "Lesser"
	case SeverityModerate:
		return "Moderate"
	case SeveritySevere:
		return "Severe"
	case SeverityFatal:
		return "Fatal"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}
