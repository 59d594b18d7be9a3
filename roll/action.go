package roll

// ActionOutcome is the result of an action roll
type ActionOutcome struct {
	// Dice holds every die rolled, in the order they were rated
	Dice   []int
	Rating Rating
}

// ActionRoller resolves action rolls
type ActionRoller struct {
	pool Pool
}

// NewActionRoller creates an ActionRoller drawing from pool
func NewActionRoller(pool Pool) *ActionRoller {
	return &ActionRoller{pool: pool}
}

// Roll rolls a pool of n dice. An empty pool rolls two and keeps the worst.
func (r *ActionRoller) Roll(n int) (*ActionOutcome, error) {
	all, rated, err := rollPool(r.pool, n)
	if err != nil {
		return nil, err
	}
	return &ActionOutcome{Dice: all, Rating: Evaluate(rated)}, nil
}
