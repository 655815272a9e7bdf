package analysis

// Rating is the qualitative label derived from a rounded overall score.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"
	RatingCritical  Rating = "Critical"
)

func (r Rating) Valid() bool {
	switch r {
	case RatingExcellent, RatingGood, RatingFair, RatingPoor, RatingCritical:
		return true
	}
	return false
}

// RatingFor buckets a score, already rounded to one decimal, into its band:
// [9.0,10.0] Excellent, [7.5,8.9] Good, [6.0,7.4] Fair, [4.0,5.9] Poor,
// everything below Critical. The bands are contiguous at one-decimal
// granularity, so no score is left unclassified.
func RatingFor(score float64) Rating {
	switch {
	case score >= 9.0:
		return RatingExcellent
	case score >= 7.5:
		return RatingGood
	case score >= 6.0:
		return RatingFair
	case score >= 4.0:
		return RatingPoor
	default:
		return RatingCritical
	}
}
