// Package harm tracks wounds by severity. Each severity has a fixed number
// of slots; harm landing on a full severity moves up until it fits, and a
// harm that would move past a full Fatal slot means the character is
// already dead.
package harm

import (
	"github.com/KirkDiggler/darkforge/errors"
	"github.com/KirkDiggler/darkforge/tracker"
)

// Config configures a Tracker
type Config struct {
	// Capacity is the slot quota per severity
	Capacity Capacity
	// Storage builds the underlying collection; nil means tracker.ArrayFactory.
	// A set-backed storage rejects two identical harms.
	Storage tracker.Factory[Harm]
}

// Validate checks the capacity quotas
func (c *Config) Validate() error {
	return c.Capacity.Validate()
}

// Tracker is a character's harm track
type Tracker struct {
	capacity Capacity
	factory  tracker.Factory[Harm]
	storage  tracker.Tracker[Harm]
}

// NewTracker creates an empty harm track
func NewTracker(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	factory := cfg.Storage
	if factory == nil {
		factory = tracker.ArrayFactory[Harm]
	}

	storage, err := factory(cfg.Capacity.Total())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create harm storage")
	}

	return &Tracker{
		capacity: cfg.Capacity,
		factory:  factory,
		storage:  storage,
	}, nil
}

// NewDefaultTracker creates an empty track with DefaultCapacity
func NewDefaultTracker() *Tracker {
	t, err := NewTracker(&Config{Capacity: DefaultCapacity})
	if err != nil {
		// DefaultCapacity is valid and array storage cannot fail
		panic(err)
	}
	return t
}

// Apply records h, escalating it while its severity is full. The returned
// harm is what was stored and may be more severe than h.
func (t *Tracker) Apply(h Harm) (Harm, error) {
	if !h.Severity.Valid() {
		return Harm{}, errors.InvalidArgumentf("unknown severity %d", int(h.Severity))
	}

	for t.CountAt(h.Severity) >= t.capacity.For(h.Severity) {
		next, err := h.Severity.Up()
		if err != nil {
			return Harm{}, errors.FailedPrecondition("cannot harm a character that is already dead").
				WithReason(ReasonHarmDead).
				WithMeta("kind", h.Kind)
		}
		h.Severity = next
	}

	if err := t.storage.Append(h); err != nil {
		return Harm{}, errors.Wrap(err, "failed to record harm")
	}
	return h, nil
}

// Heal moves every harm down one severity and drops Lesser harm. Kinds and
// order are kept.
func (t *Tracker) Heal() error {
	if t.storage.IsEmpty() {
		return errors.FailedPrecondition("cannot heal, character is not wounded").
			WithReason(ReasonHealHealthy)
	}
	if t.IsDead() {
		return errors.FailedPrecondition("cannot heal a dead character").
			WithReason(ReasonHealDead)
	}

	healed, err := t.factory(t.capacity.Total())
	if err != nil {
		return errors.Wrap(err, "failed to create harm storage")
	}
	for _, h := range t.storage.List() {
		down, ok := h.Severity.Down()
		if !ok {
			continue
		}
		if err := healed.Append(Harm{Severity: down, Kind: h.Kind}); err != nil {
			return errors.Wrap(err, "failed to record healed harm")
		}
	}

	t.storage = healed
	return nil
}

// IsDead reports whether any stored harm is Fatal
func (t *Tracker) IsDead() bool {
	for _, h := range t.storage.List() {
		if h.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// List returns the stored harm in storage order
func (t *Tracker) List() []Harm {
	return t.storage.List()
}

// CountAt returns the number of harms stored at sev
func (t *Tracker) CountAt(sev Severity) int {
	n := 0
	for _, h := range t.storage.List() {
		if h.Severity == sev {
			n++
		}
	}
	return n
}

func (t *Tracker) Count() int         { return t.storage.Count() }
func (t *Tracker) IsEmpty() bool      { return t.storage.IsEmpty() }
func (t *Tracker) IsFull() bool       { return t.storage.IsFull() }
func (t *Tracker) Capacity() Capacity { return t.capacity }
