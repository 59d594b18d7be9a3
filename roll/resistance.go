package roll

// ResistanceOutcome is the result of a resistance roll
type ResistanceOutcome struct {
	Dice   []int
	Rating Rating
	// Stress is the stress to take; -1 means clear one
	Stress int
}

// ResistanceRoller resolves resistance rolls
type ResistanceRoller struct {
	pool Pool
}

// NewResistanceRoller creates a ResistanceRoller drawing from pool
func NewResistanceRoller(pool Pool) *ResistanceRoller {
	return &ResistanceRoller{pool: pool}
}

// Roll rolls a pool of n dice and prices the stress off the die that was
// rated first.
func (r *ResistanceRoller) Roll(n int) (*ResistanceOutcome, error) {
	all, rated, err := rollPool(r.pool, n)
	if err != nil {
		return nil, err
	}

	rating := Evaluate(rated)
	return &ResistanceOutcome{
		Dice:   all,
		Rating: rating,
		Stress: StressCost(rating, rated[0]),
	}, nil
}
