// Package testutils provides canned characters for tests
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/darkforge/action"
	"github.com/KirkDiggler/darkforge/character"
	"github.com/KirkDiggler/darkforge/harm"
	"github.com/KirkDiggler/darkforge/internal/testutils/builders"
	"github.com/KirkDiggler/darkforge/stress"
)

// Sheet stages for testing
const (
	StageFresh    = "fresh"
	StageStressed = "stressed"
	StageWounded  = "wounded"
	StageDying    = "dying"
	StageBroken   = "broken"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Silver Crow"
)

// CreateTestCharacter builds a character at a given stage of wear. The
// fixture always knows how to prowl and skirmish.
func CreateTestCharacter(t *testing.T, stage string) *character.Character {
	t.Helper()

	b := builders.NewCharacterBuilder().
		WithName(TestCharacterName).
		WithRating(action.ActionProwl, 2).
		WithRating(action.ActionSkirmish, 1)

	switch stage {
	case StageStressed:
		b.WithStress(stress.MaxStress)

	case StageWounded:
		b.WithStress(4).
			WithHarm(
				harm.Harm{Severity: harm.SeverityLesser, Kind: harm.KindFatigue},
				harm.Harm{Severity: harm.SeverityModerate, Kind: harm.KindSlashing},
				harm.Harm{Severity: harm.SeveritySevere, Kind: harm.KindBlunt},
			)

	case StageDying:
		b.WithHarm(
			harm.Harm{Severity: harm.SeveritySevere, Kind: harm.KindPiercing},
			harm.Harm{Severity: harm.SeverityFatal, Kind: harm.KindPiercing},
		)

	case StageBroken:
		b.WithStress(stress.MaxStress).
			WithTraumas(stress.TraumaCold, stress.TraumaHaunted, stress.TraumaParanoid, stress.TraumaVicious)
	}

	c, err := b.Build()
	require.NoError(t, err, "failed to build %s character", stage)
	return c
}
