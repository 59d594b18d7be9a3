// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/darkforge/action"
	"github.com/KirkDiggler/darkforge/character"
	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/harm"
	"github.com/KirkDiggler/darkforge/stress"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	id       string
	name     string
	ratings  map[action.Action]uint8
	stress   uint8
	traumas  []stress.Trauma
	harms    []harm.Harm
	capacity harm.Capacity
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		id:       "char-test-001",
		name:     "Test Scoundrel",
		ratings:  make(map[action.Action]uint8),
		capacity: harm.DefaultCapacity,
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.id = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.name = name
	return b
}

// WithRating sets one action rating
func (b *CharacterBuilder) WithRating(a action.Action, rating uint8) *CharacterBuilder {
	b.ratings[a] = rating
	return b
}

// WithStress sets the starting stress
func (b *CharacterBuilder) WithStress(level uint8) *CharacterBuilder {
	b.stress = level
	return b
}

// WithTraumas adds traumas to the sheet
func (b *CharacterBuilder) WithTraumas(traumas ...stress.Trauma) *CharacterBuilder {
	b.traumas = append(b.traumas, traumas...)
	return b
}

// WithHarm applies harms in order, escalating as the track would
func (b *CharacterBuilder) WithHarm(harms ...harm.Harm) *CharacterBuilder {
	b.harms = append(b.harms, harms...)
	return b
}

// WithHarmCapacity replaces the default harm track quotas
func (b *CharacterBuilder) WithHarmCapacity(capacity harm.Capacity) *CharacterBuilder {
	b.capacity = capacity
	return b
}

// Build assembles the character. Any rule violation in the builder's
// inputs is returned.
func (b *CharacterBuilder) Build() (*character.Character, error) {
	ratings := action.NewRatings()
	for a, r := range b.ratings {
		if _, err := ratings.Set(a, r); err != nil {
			return nil, errors.Wrapf(err, "failed to set %s", a)
		}
	}

	traumas, err := stress.NewTraumas(b.traumas...)
	if err != nil {
		return nil, err
	}

	track, err := harm.NewTracker(&harm.Config{Capacity: b.capacity})
	if err != nil {
		return nil, err
	}
	for _, h := range b.harms {
		if _, err := track.Apply(h); err != nil {
			return nil, errors.Wrapf(err, "failed to apply %s", h)
		}
	}

	c, err := character.New(&character.Config{
		ID:      b.id,
		Name:    b.name,
		Actions: ratings,
		Traumas: traumas,
		Harm:    track,
	})
	if err != nil {
		return nil, err
	}

	if _, err := c.Stress().Set(b.stress); err != nil {
		return nil, errors.Wrap(err, "failed to set stress")
	}
	return c, nil
}
