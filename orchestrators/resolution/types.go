package resolution

import (
	"github.com/KirkDiggler/darkforge/action"
	"github.com/KirkDiggler/darkforge/character"
	"github.com/KirkDiggler/darkforge/harm"
	"github.com/KirkDiggler/darkforge/roll"
	"github.com/KirkDiggler/darkforge/stress"
)

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name string
	// Ratings are optional starting action ratings
	Ratings map[action.Action]uint8
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *character.Character
}

// RollActionInput defines the request for an action roll
type RollActionInput struct {
	Character *character.Character
	Action    action.Action
	// Bonus dice from assists, pushing or devil's bargains
	Bonus int
}

// RollActionOutput defines the response for an action roll
type RollActionOutput struct {
	Pool    int
	Outcome *roll.ActionOutcome
}

// ResistInput defines the request for a resistance roll
type ResistInput struct {
	Character *character.Character
	Pool      int
}

// ResistOutput defines the response for a resistance roll
type ResistOutput struct {
	Outcome      *roll.ResistanceOutcome
	StressBefore uint8
	StressAfter  uint8
	// Overflow is set when the stress cost ran past the maximum
	Overflow      bool
	PendingTrauma bool
}

// SufferHarmInput defines the request for applying harm
type SufferHarmInput struct {
	Character *character.Character
	Harm      harm.Harm
}

// SufferHarmOutput defines the response for applying harm
type SufferHarmOutput struct {
	Applied   harm.Harm
	Escalated bool
	Dead      bool
}

// RecoverInput defines the request for a round of healing
type RecoverInput struct {
	Character *character.Character
}

// RecoverOutput defines the response for a round of healing
type RecoverOutput struct {
	Remaining []harm.Harm
}

// MarkTraumaInput defines the request for taking a trauma
type MarkTraumaInput struct {
	Character *character.Character
	Trauma    stress.Trauma
}

// MarkTraumaOutput defines the response for taking a trauma
type MarkTraumaOutput struct {
	State   stress.State
	Traumas []stress.Trauma
}
