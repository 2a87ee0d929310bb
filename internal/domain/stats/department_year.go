package stats

import "github.com/facultyfeedback/backend/internal/domain/feedback"

// ChartData is a series of labelled averages with one color per label
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

type bucketKey struct {
	department string
	year       YearBucket
}

// ComputeDepartmentYearStats averages ratings per (department, year) for the
// selected departments. Orphans are dropped first. Buckets are emitted with
// departments in selection order and years in YearBuckets order; empty buckets
// are omitted.
func ComputeDepartmentYearStats(selectedDepartments []string, allFeedback []feedback.Feedback, catalog Catalog) ChartData {
	selected := make(map[string]struct{}, len(selectedDepartments))
	for _, d := range selectedDepartments {
		selected[d] = struct{}{}
	}

	buckets := make(map[bucketKey][]int)
	for _, f := range FilterOrphans(allFeedback, catalog) {
		if _, ok := selected[f.StudentDepartment]; !ok {
			continue
		}
		key := bucketKey{department: f.StudentDepartment, year: BucketForYear(f.StudentYear)}
		buckets[key] = append(buckets[key], f.Ratings()...)
	}

	out := ChartData{
		Labels: make([]string, 0),
		Data:   make([]float64, 0),
		Colors: make([]string, 0),
	}
	emitted := make(map[string]struct{}, len(selectedDepartments))
	for _, dept := range selectedDepartments {
		if _, dup := emitted[dept]; dup {
			continue
		}
		emitted[dept] = struct{}{}
		for _, year := range YearBuckets {
			ratings := buckets[bucketKey{department: dept, year: year}]
			if len(ratings) == 0 {
				continue
			}
			out.Labels = append(out.Labels, dept+" "+year.Label())
			out.Data = append(out.Data, meanOf(ratings))
			out.Colors = append(out.Colors, ColorAt(len(out.Colors)))
		}
	}
	return out
}
