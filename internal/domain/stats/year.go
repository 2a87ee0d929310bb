package stats

// YearBucket groups feedback by the respondent's year of study
type YearBucket string

const (
	Year1       YearBucket = "1"
	Year2       YearBucket = "2"
	Year3       YearBucket = "3"
	YearUnknown YearBucket = "unknown"
)

// YearBuckets lists the buckets in emission order
var YearBuckets = []YearBucket{Year1, Year2, Year3, YearUnknown}

// BucketForYear maps a respondent year to its bucket.
// Anything other than 1, 2 or 3, including nil, is unknown.
func BucketForYear(year *int) YearBucket {
	if year == nil {
		return YearUnknown
	}
	switch *year {
	case 1:
		return Year1
	case 2:
		return Year2
	case 3:
		return Year3
	}
	return YearUnknown
}

// Label returns the display label of the bucket
func (y YearBucket) Label() string {
	switch y {
	case Year1:
		return "1st Year"
	case Year2:
		return "2nd Year"
	case Year3:
		return "3rd Year"
	}
	return "Unknown Year"
}
