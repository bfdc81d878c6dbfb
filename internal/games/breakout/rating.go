package breakout

// Rating grades a finished run by its score.
type Rating int

const (
	RatingChallenging Rating = iota
	RatingGood
	RatingGreat
	RatingPerfect
)

// RateScore maps a final score to a rating.
func RateScore(score int) Rating {
	switch {
	case score <= 50:
		return RatingChallenging
	case score <= 100:
		return RatingGood
	case score <= 190:
		return RatingGreat
	default:
		return RatingPerfect
	}
}

func (r Rating) String() string {
	switch r {
	case RatingChallenging:
		return "challenging"
	case RatingGood:
		return "good"
	case RatingGreat:
		return "great"
	case RatingPerfect:
		return "perfect"
	default:
		return "unknown"
	}
}

// Banner is the line shown on the game over screen.
func (r Rating) Banner() string {
	switch r {
	case RatingGood:
		return "GOOD JOB!"
	case RatingGreat:
		return "GREAT JOB!"
	case RatingPerfect:
		return "PERFECT!!"
	default:
		return "GOOD CHALLENGING!"
	}
}
