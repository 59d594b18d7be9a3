// Package resolution applies roll outcomes and consequences to a character.
package resolution

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/darkforge/character"
	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/internal/pkg/clock"
	"github.com/KirkDiggler/darkforge/internal/pkg/idgen"
	"github.com/KirkDiggler/darkforge/roll"
	"github.com/KirkDiggler/darkforge/value"
)

// ReasonNoPendingTrauma is reported when a trauma is marked below max stress
const ReasonNoPendingTrauma errors.Reason = "no_pending_trauma"

// ErrNoPendingTrauma matches MarkTrauma calls on a character without pending trauma
var ErrNoPendingTrauma = errors.Sentinel(errors.CodeFailedPrecondition, ReasonNoPendingTrauma, "character has no pending trauma")

// Service defines the interface for resolving rolls against a character
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// Rolls
	RollAction(ctx context.Context, input *RollActionInput) (*RollActionOutput, error)
	Resist(ctx context.Context, input *ResistInput) (*ResistOutput, error)

	// Consequences
	SufferHarm(ctx context.Context, input *SufferHarmInput) (*SufferHarmOutput, error)
	Recover(ctx context.Context, input *RecoverInput) (*RecoverOutput, error)
	MarkTrauma(ctx context.Context, input *MarkTraumaInput) (*MarkTraumaOutput, error)
}

// Config holds the dependencies for the resolution orchestrator
type Config struct {
	DiceRoller  dice.Roller
	// IDGenerator defaults to prefixed UUIDs
	IDGenerator idgen.Generator
	// Clock defaults to the system clock
	Clock clock.Clock
	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

type orchestrator struct {
	action     *roll.ActionRoller
	resistance *roll.ResistanceRoller
	idGen      idgen.Generator
	clock      clock.Clock
	logger     *slog.Logger
}

// NewOrchestrator creates a new resolution orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID(idgen.CharacterPrefix)
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	pool := roll.NewD6(cfg.DiceRoller)
	return &orchestrator{
		action:     roll.NewActionRoller(pool),
		resistance: roll.NewResistanceRoller(pool),
		idGen:      idGen,
		clock:      clk,
		logger:     logger,
	}, nil
}

// CreateCharacter creates an unharmed, unstressed character with a new ID
func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := character.New(&character.Config{
		ID:        o.idGen.Generate(),
		Name:      input.Name,
		CreatedAt: o.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	for a, rating := range input.Ratings {
		if _, err := c.Actions().Set(a, rating); err != nil {
			return nil, errors.Wrapf(err, "failed to set rating for %s", a)
		}
	}

	o.logger.InfoContext(ctx, "Character created",
		"character_id", c.ID,
		"name", c.Name)

	return &CreateCharacterOutput{Character: c}, nil
}

// RollAction rolls the character's rating in an action plus any bonus dice
func (o *orchestrator) RollAction(ctx context.Context, input *RollActionInput) (*RollActionOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if !input.Action.Valid() {
		return nil, errors.InvalidArgumentf("unknown action %q", input.Action)
	}
	if input.Bonus < 0 {
		return nil, errors.InvalidArgumentf("bonus dice must not be negative, got %d", input.Bonus)
	}

	pool := int(input.Character.Actions().Rating(input.Action)) + input.Bonus

	outcome, err := o.action.Roll(pool)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll action")
	}

	o.logger.InfoContext(ctx, "Action rolled",
		"character_id", input.Character.ID,
		"action", input.Action,
		"pool", pool,
		"dice", outcome.Dice,
		"rating", outcome.Rating.String())

	return &RollActionOutput{Pool: pool, Outcome: outcome}, nil
}

// Resist rolls resistance and charges the stress cost. Running past max
// stress is reported as Overflow rather than an error.
func (o *orchestrator) Resist(ctx context.Context, input *ResistInput) (*ResistOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	outcome, err := o.resistance.Roll(input.Pool)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll resistance")
	}

	level := input.Character.Stress()
	before := level.Get()
	overflow := false

	switch {
	case outcome.Stress > 0:
		_, err = level.Increment(uint8(outcome.Stress))
		if errors.Is(err, value.ErrClampedHigh) {
			overflow = true
			err = nil
		}
	case outcome.Stress < 0:
		_, err = level.Decrement(uint8(-outcome.Stress))
		if errors.Is(err, value.ErrClampedLow) {
			err = nil
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply stress")
	}

	out := &ResistOutput{
		Outcome:       outcome,
		StressBefore:  before,
		StressAfter:   level.Get(),
		Overflow:      overflow,
		PendingTrauma: input.Character.HasPendingTrauma(),
	}

	o.logger.InfoContext(ctx, "Consequence resisted",
		"character_id", input.Character.ID,
		"pool", input.Pool,
		"rating", outcome.Rating.String(),
		"stress_before", out.StressBefore,
		"stress_after", out.StressAfter,
		"overflow", out.Overflow)

	if out.PendingTrauma {
		o.logger.WarnContext(ctx, "Character has pending trauma",
			"character_id", input.Character.ID)
	}

	return out, nil
}

// SufferHarm records harm on the character's track
func (o *orchestrator) SufferHarm(ctx context.Context, input *SufferHarmInput) (*SufferHarmOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	applied, err := input.Character.Harm().Apply(input.Harm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply harm")
	}

	out := &SufferHarmOutput{
		Applied:   applied,
		Escalated: applied.Severity != input.Harm.Severity,
		Dead:      input.Character.IsDead(),
	}

	o.logger.InfoContext(ctx, "Harm suffered",
		"character_id", input.Character.ID,
		"kind", applied.Kind,
		"severity", applied.Severity.String(),
		"escalated", out.Escalated)

	if out.Dead {
		o.logger.WarnContext(ctx, "Character took fatal harm",
			"character_id", input.Character.ID)
	}

	return out, nil
}

// Recover heals one step of every harm
func (o *orchestrator) Recover(ctx context.Context, input *RecoverInput) (*RecoverOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	if err := input.Character.Harm().Heal(); err != nil {
		return nil, errors.Wrap(err, "failed to heal")
	}

	remaining := input.Character.Harm().List()

	o.logger.InfoContext(ctx, "Character recovered",
		"character_id", input.Character.ID,
		"remaining", len(remaining))

	return &RecoverOutput{Remaining: remaining}, nil
}

// MarkTrauma takes a trauma for a character at max stress and clears
// their stress.
func (o *orchestrator) MarkTrauma(ctx context.Context, input *MarkTraumaInput) (*MarkTraumaOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if !input.Character.HasPendingTrauma() {
		return nil, errors.FailedPrecondition("character has no pending trauma").
			WithReason(ReasonNoPendingTrauma).
			WithMeta("stress", input.Character.Stress().Get())
	}

	state, err := input.Character.Traumas().Scar(input.Trauma)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark trauma")
	}
	input.Character.Stress().Clear()

	o.logger.InfoContext(ctx, "Trauma marked",
		"character_id", input.Character.ID,
		"trauma", input.Trauma,
		"state", state)

	return &MarkTraumaOutput{
		State:   state,
		Traumas: input.Character.Traumas().List(),
	}, nil
}
