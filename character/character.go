// Package character assembles a scoundrel's sheet from the rules packages.
// It adds no rules of its own.
package character

import (
	"time"

	"github.com/KirkDiggler/darkforge/action"
	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/harm"
	"github.com/KirkDiggler/darkforge/stress"
)

// MaxNameLength bounds character names
const MaxNameLength = 64

// Config holds the parts of a new character. Nil parts start empty.
type Config struct {
	ID      string
	Name    string
	Actions action.Actions
	Traumas *stress.Traumas
	Harm    *harm.Tracker
	// CreatedAt is informational only
	CreatedAt time.Time
}

// Validate ensures the identifying fields are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", c.ID, vb)
	errors.ValidateRequired("Name", c.Name, vb)
	errors.ValidateMaxLength("Name", c.Name, MaxNameLength, vb)

	return vb.Build()
}

// Character is a single player character
type Character struct {
	ID        string
	Name      string
	CreatedAt time.Time

	actions action.Actions
	stress  stress.Level
	traumas *stress.Traumas
	harm    *harm.Tracker
}

// New creates a character with zero stress and the given parts
func New(cfg *Config) (*Character, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Character{
		ID:        cfg.ID,
		Name:      cfg.Name,
		CreatedAt: cfg.CreatedAt,
		actions:   cfg.Actions,
		stress:    stress.NewLevel(),
		traumas:   cfg.Traumas,
		harm:      cfg.Harm,
	}

	if c.actions == nil {
		c.actions = action.NewRatings()
	}
	if c.traumas == nil {
		traumas, err := stress.NewTraumas()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create traumas")
		}
		c.traumas = traumas
	}
	if c.harm == nil {
		c.harm = harm.NewDefaultTracker()
	}

	return c, nil
}

// Actions returns the action ratings
func (c *Character) Actions() action.Actions { return c.actions }

// Stress returns the stress level for reading and mutation
func (c *Character) Stress() *stress.Level { return &c.stress }

// Traumas returns the trauma set
func (c *Character) Traumas() *stress.Traumas { return c.traumas }

// Harm returns the harm track
func (c *Character) Harm() *harm.Tracker { return c.harm }

// HasPendingTrauma reports whether stress is maxed out
func (c *Character) HasPendingTrauma() bool {
	return c.stress.HasPendingTrauma()
}

// IsDead reports whether the harm track holds a fatal harm
func (c *Character) IsDead() bool {
	return c.harm.IsDead()
}
