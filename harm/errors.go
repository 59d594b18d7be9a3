package harm

import (
	"github.com/KirkDiggler/darkforge/errors"
)

// Reasons reported by this package
const (
	ReasonHarmDead            errors.Reason = "harm_dead"
	ReasonHealHealthy         errors.Reason = "heal_healthy"
	ReasonHealDead            errors.Reason = "heal_dead"
	ReasonSeverityOutOfBounds errors.Reason = "severity_out_of_bounds"
)

var (
	// ErrHarmDead matches harm applied to a character already on the fatal slot
	ErrHarmDead = errors.Sentinel(errors.CodeFailedPrecondition, ReasonHarmDead, "cannot harm a character that is already dead")
	// ErrHealHealthy matches healing an empty track
	ErrHealHealthy = errors.Sentinel(errors.CodeFailedPrecondition, ReasonHealHealthy, "cannot heal, character is not wounded")
	// ErrHealDead matches healing a dead character
	ErrHealDead = errors.Sentinel(errors.CodeFailedPrecondition, ReasonHealDead, "cannot heal a dead character")
	// ErrSeverityOutOfBounds matches raising a severity past Fatal
	ErrSeverityOutOfBounds = errors.Sentinel(errors.CodeOutOfRange, ReasonSeverityOutOfBounds, "cannot increase severity past Fatal")
)
