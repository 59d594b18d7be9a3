package roll

import "fmt"

// Rating is how well a roll went. Higher is better.
type Rating int

const (
	RatingFailure Rating = iota
	RatingPartial
	RatingSuccess
	RatingCritical
)

func (r Rating) String() string {
	switch r {
	case RatingFailure:
		return "Failure"
	case RatingPartial:
		return "Partial"
	case RatingSuccess:
		return "Success"
	case RatingCritical:
		return "Critical"
	default:
		return fmt.Sprintf("Rating(%d)", int(r))
	}
}

// Evaluate rates dice sorted best first. Only the first two values count.
func Evaluate(dice []int) Rating {
	if len(dice) == 0 {
		return RatingFailure
	}
	if dice[0] == 6 {
		if len(dice) > 1 && dice[1] == 6 {
			return RatingCritical
		}
		return RatingSuccess
	}
	if dice[0] == 4 || dice[0] == 5 {
		return RatingPartial
	}
	return RatingFailure
}

// StressCost is the stress paid to resist with the given result. A critical
// clears one stress instead.
func StressCost(rating Rating, die int) int {
	if rating == RatingCritical {
		return -1
	}
	return 6 - die
}
