package stats

// Band classifies an average rating for display
type Band string

const (
	BandGood    Band = "good"
	BandAverage Band = "average"
	BandPoor    Band = "poor"
)

// RatingBand returns good at 4 and above, average at 3 and above, poor otherwise
func RatingBand(avg float64) Band {
	switch {
	case avg >= 4:
		return BandGood
	case avg >= 3:
		return BandAverage
	default:
		return BandPoor
	}
}
