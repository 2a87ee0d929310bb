package stats

import "sort"

// Summary holds order statistics over a series of averages
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
}

// ComputeSummaryStatistics returns min, max, mean and median of values, each
// rounded to 2 decimal places. An even count takes the mean of the two middle
// values. Empty input yields the zero Summary.
func ComputeSummaryStatistics(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Summary{
		Min:    round2(sorted[0]),
		Max:    round2(sorted[n-1]),
		Avg:    round2(sum / float64(n)),
		Median: round2(median),
	}
}
