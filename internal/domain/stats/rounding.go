package stats

import "github.com/shopspring/decimal"

// round2 rounds half away from zero to 2 decimal places
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// meanOf returns the mean of ratings rounded to 2 decimal places.
// The sum is exact, so the result does not depend on float accumulation order.
func meanOf(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(ratings)))).
		Round(2).
		InexactFloat64()
}
