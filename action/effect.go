package action

import "fmt"

// Effect is how much an action accomplishes
type Effect int

const (
	EffectZero Effect = iota
	EffectLimited
	EffectStandard
	EffectGreat
	EffectExtreme
)

// Increase moves one step toward Extreme
func (e Effect) Increase() Effect {
	if e >= EffectExtreme {
		return EffectExtreme
	}
	return e + 1
}

// Decrease moves one step toward Zero
func (e Effect) Decrease() Effect {
	if e <= EffectZero {
		return EffectZero
	}
	return e - 1
}

// AtLeast returns the larger of e and floor
func (e Effect) AtLeast(floor Effect) Effect {
	if e < floor {
		return floor
	}
	return e
}

// AtMost returns the smaller of e and ceiling
func (e Effect) AtMost(ceiling Effect) Effect {
	if e > ceiling {
		return ceiling
	}
	return e
}

// TradeForPosition gives up one step of effect to improve the position
func (e Effect) TradeForPosition(position Position) (Effect, Position, error) {
	if e <= EffectLimited {
		return e, position, effectClamped(ReasonEffectClampedLow, "decrease", EffectLimited)
	}
	if position == PositionControlled {
		return e, position, positionClamped(ReasonPositionClampedHigh, "increase", PositionControlled)
	}
	return e.Decrease(), position.Improve(), nil
}

func (e Effect) String() string {
	switch e {
	case EffectZero:
		return "Zero"
	case EffectLimited:
		return "Limited"
	case EffectStandard:
		return "Standard"
	case EffectGreat:
		return "Great"
	case EffectExtreme:
		return "Extreme"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}
