package harm

// Kind describes where a harm came from. It has no rules of its own.
type Kind string

const (
	KindFatigue   Kind = "HARM_KIND_FATIGUE"
	KindHunger    Kind = "HARM_KIND_HUNGER"
	KindThirst    Kind = "HARM_KIND_THIRST"
	KindPiercing  Kind = "HARM_KIND_PIERCING"
	KindSlashing  Kind = "HARM_KIND_SLASHING"
	KindBlunt     Kind = "HARM_KIND_BLUNT"
	KindPsychic   Kind = "HARM_KIND_PSYCHIC"
	KindFear      Kind = "HARM_KIND_FEAR"
	KindConfusion Kind = "HARM_KIND_CONFUSION"
	KindCharm     Kind = "HARM_KIND_CHARM"
	KindAcid      Kind = "HARM_KIND_ACID"
	KindCold      Kind = "HARM_KIND_COLD"
	KindFire      Kind = "HARM_KIND_FIRE"
	KindElectric  Kind = "HARM_KIND_ELECTRIC"
	KindPoison    Kind = "HARM_KIND_POISON"
	KindDisease   Kind = "HARM_KIND_DISEASE"
)

// Harm is a single wound on the track
type Harm struct {
	Severity Severity
	Kind     Kind
}

func (h Harm) String() string {
	return h.Severity.String() + " " + string(h.Kind)
}
