// Package roll resolves d6 dice pools into action and resistance outcomes
package roll

//go:generate mockgen -destination=mock/mock_roller.go -package=rollmock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/darkforge/errors"
)

// DieSize is the number of faces on every die in a pool
const DieSize = 6

// SortOrder is the order a pool returns its dice in
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// Pool rolls n dice and returns them sorted
type Pool interface {
	Roll(n int, order SortOrder) ([]int, error)
}

// D6 is a Pool of six-sided dice drawn from a toolkit roller
type D6 struct {
	roller dice.Roller
}

// NewD6 creates a D6 pool. A nil roller uses dice.DefaultRoller.
func NewD6(roller dice.Roller) *D6 {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &D6{roller: roller}
}

// Roll draws n dice. Zero dice is an empty result.
func (p *D6) Roll(n int, order SortOrder) ([]int, error) {
	if n < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", n)
	}
	if n == 0 {
		return []int{}, nil
	}

	faces, err := p.roller.RollN(n, DieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", n, DieSize)
	}
	if len(faces) != n {
		return nil, errors.Internalf("roller returned %d dice, wanted %d", len(faces), n).
			WithMeta("count", n)
	}

	out := make([]int, n)
	for i, f := range faces {
		if f < 1 || f > DieSize {
			return nil, errors.Internalf("roller returned face %d outside 1..%d", f, DieSize).
				WithMeta("face", f)
		}
		out[i] = f
	}

	if order == SortDescending {
		sort.Sort(sort.Reverse(sort.IntSlice(out)))
	} else {
		sort.Ints(out)
	}
	return out, nil
}

// rollPool draws the dice for a pool of n: two dice ascending for an empty
// pool, n dice descending otherwise. rated is the prefix Evaluate should
// see.
func rollPool(p Pool, n int) (all, rated []int, err error) {
	if n < 0 {
		return nil, nil, errors.InvalidArgumentf("pool size must not be negative, got %d", n).
			WithMeta("pool", n)
	}

	if n == 0 {
		all, err = p.Roll(2, SortAscending)
		if err != nil {
			return nil, nil, err
		}
		if len(all) == 0 {
			return nil, nil, errors.Internal("pool returned no dice")
		}
		return all, all[:1], nil
	}

	all, err = p.Roll(n, SortDescending)
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, errors.Internal("pool returned no dice")
	}
	return all, all, nil
}
