package action

import (
	"github.com/KirkDiggler/darkforge/errors"
)

// Reasons reported by this package
const (
	ReasonPositionClampedLow  errors.Reason = "position_clamped_low"
	ReasonPositionClampedHigh errors.Reason = "position_clamped_high"
	ReasonEffectClampedLow    errors.Reason = "effect_clamped_low"
	ReasonEffectClampedHigh   errors.Reason = "effect_clamped_high"
)

var (
	ErrPositionClampedLow  = errors.Sentinel(errors.CodeOutOfRange, ReasonPositionClampedLow, "cannot decrease position")
	ErrPositionClampedHigh = errors.Sentinel(errors.CodeOutOfRange, ReasonPositionClampedHigh, "cannot increase position")
	ErrEffectClampedLow    = errors.Sentinel(errors.CodeOutOfRange, ReasonEffectClampedLow, "cannot decrease effect")
	ErrEffectClampedHigh   = errors.Sentinel(errors.CodeOutOfRange, ReasonEffectClampedHigh, "cannot increase effect")
)

func positionClamped(reason errors.Reason, verb string, limit Position) error {
	return errors.OutOfRangef("cannot %s position %s %s", verb, direction(reason), limit).
		WithReason(reason).
		WithMeta("limit", limit)
}

func effectClamped(reason errors.Reason, verb string, limit Effect) error {
	return errors.OutOfRangef("cannot %s effect %s %s", verb, direction(reason), limit).
		WithReason(reason).
		WithMeta("limit", limit)
}

func direction(reason errors.Reason) string {
	switch reason {
	case ReasonPositionClampedLow, ReasonEffectClampedLow:
		return "below"
	default:
		return "above"
	}
}
