package stress

import (
	"sort"

	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/tracker"
)

// TraumaCapacity is the number of traumas that breaks a character
const TraumaCapacity = 4

// Traumas is the set of traumas a character carries
type Traumas struct {
	set tracker.Tracker[Trauma]
}

// NewTraumas creates a trauma set holding initial
func NewTraumas(initial ...Trauma) (*Traumas, error) {
	for _, t := range initial {
		if !t.Valid() {
			return nil, errors.InvalidArgumentf("unknown trauma %q", t)
		}
	}

	set, err := tracker.NewSet(TraumaCapacity, initial...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create traumas")
	}
	return &Traumas{set: set}, nil
}

// Scar adds t and returns the resulting state. On error the set is
// unchanged and the current state is returned.
func (t *Traumas) Scar(trauma Trauma) (State, error) {
	if !trauma.Valid() {
		return t.State(), errors.InvalidArgumentf("unknown trauma %q", trauma)
	}
	if err := t.set.Append(trauma); err != nil {
		return t.State(), err
	}
	return t.State(), nil
}

// State derives Fresh, Scarred or Broken from the trauma count
func (t *Traumas) State() State {
	switch {
	case t.set.IsEmpty():
		return StateFresh
	case t.set.IsFull():
		return StateBroken
	default:
		return StateScarred
	}
}

// Has reports whether trauma has been taken
func (t *Traumas) Has(trauma Trauma) bool {
	return t.set.Contains(trauma)
}

// Count returns the number of traumas taken
func (t *Traumas) Count() int {
	return t.set.Count()
}

// List returns the traumas in display order
func (t *Traumas) List() []Trauma {
	out := t.set.List()
	sort.Slice(out, func(i, j int) bool {
		return out[i].order() < out[j].order()
	})
	return out
}
