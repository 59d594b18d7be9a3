package stress

// Trauma is a permanent scar taken when stress maxes out
type Trauma string

const (
	TraumaCold     Trauma = "TRAUMA_COLD"
	TraumaHaunted  Trauma = "TRAUMA_HAUNTED"
	TraumaObsessed Trauma = "TRAUMA_OBSESSED"
	TraumaParanoid Trauma = "TRAUMA_PARANOID"
	TraumaReckless Trauma = "TRAUMA_RECKLESS"
	TraumaSoft     Trauma = "TRAUMA_SOFT"
	TraumaUnstable Trauma = "TRAUMA_UNSTABLE"
	TraumaVicious  Trauma = "TRAUMA_VICIOUS"
)

var allTraumas = []Trauma{
	TraumaCold,
	TraumaHaunted,
	TraumaObsessed,
	TraumaParanoid,
	TraumaReckless,
	TraumaSoft,
	TraumaUnstable,
	TraumaVicious,
}

// AllTraumas lists every trauma in display order
func AllTraumas() []Trauma {
	out := make([]Trauma, len(allTraumas))
	copy(out, allTraumas)
	return out
}

// Valid reports whether t is a known trauma
func (t Trauma) Valid() bool {
	return t.order() >= 0
}

func (t Trauma) order() int {
	for i, known := range allTraumas {
		if t == known {
			return i
		}
	}
	return -1
}

func (t Trauma) String() string {
	return string(t)
}

// State summarizes how scarred a character is
type State string

const (
	// StateFresh means no traumas
	StateFresh State = "STATE_FRESH"
	// StateScarred means at least one trauma and room for more
	StateScarred State = "STATE_SCARRED"
	// StateBroken means every trauma slot is taken
	StateBroken State = "STATE_BROKEN"
)
