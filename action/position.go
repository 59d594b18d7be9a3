package action

import "fmt"

// Position is how dangerous the situation is for the acting character
type Position int

const (
	PositionDesperate Position = iota
	PositionRisky
	PositionControlled
)

// Improve moves one step toward Controlled
func (p Position) Improve() Position {
	if p >= PositionControlled {
		return PositionControlled
	}
	return p + 1
}

// Diminish moves one step toward Desperate
func (p Position) Diminish() Position {
	if p <= PositionDesperate {
		return PositionDesperate
	}
	return p - 1
}

// TradeForEffect worsens the position to raise the effect by one step
func (p Position) TradeForEffect(effect Effect) (Position, Effect, error) {
	if p == PositionDesperate {
		return p, effect, positionClamped(ReasonPositionClampedLow, "decrease", PositionDesperate)
	}
	if effect >= EffectGreat {
		return p, effect, effectClamped(ReasonEffectClampedHigh, "increase", EffectGreat)
	}
	return p.Diminish(), effect.Increase(), nil
}

func (p Position) String() string {
	switch p {
	case PositionDesperate:
		return "Desperate"
	case PositionRisky:
		return "Risky"
	case PositionControlled:
		return "Controlled"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}
