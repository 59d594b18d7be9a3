// Package action holds action ratings and the position/effect trade-offs
// made before a roll.
package action

// Action is one of the twelve things a character can roll
type Action string

const (
	// Insight
	ActionHunt   Action = "ACTION_HUNT"
	ActionStudy  Action = "ACTION_STUDY"
	ActionSurvey Action = "ACTION_SURVEY"
	ActionTinker Action = "ACTION_TINKER"

	// Prowess
	ActionFinesse  Action = "ACTION_FINESSE"
	ActionProwl    Action = "ACTION_PROWL"
	ActionSkirmish Action = "ACTION_SKIRMISH"
	ActionWreck    Action = "ACTION_WRECK"

	// Resolve
	ActionAttune  Action = "ACTION_ATTUNE"
	ActionCommand Action = "ACTION_COMMAND"
	ActionConsort Action = "ACTION_CONSORT"
	ActionSway    Action = "ACTION_SWAY"
)

var allActions = []Action{
	ActionHunt, ActionStudy, ActionSurvey, ActionTinker,
	ActionFinesse, ActionProwl, ActionSkirmish, ActionWreck,
	ActionAttune, ActionCommand, ActionConsort, ActionSway,
}

// AllActions lists every action in sheet order
func AllActions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	for _, known := range allActions {
		if a == known {
			return true
		}
	}
	return false
}

func (a Action) String() string {
	return string(a)
}
