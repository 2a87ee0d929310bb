package stats

import (
	"sort"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/google/uuid"
)

// FacultyYearRating is one faculty member's averages split by respondent year
type FacultyYearRating struct {
	Name        string                 `json:"name"`
	PerYear     map[YearBucket]float64 `json:"perYear"`
	CombinedAvg float64                `json:"combinedAvg"`
	Count       int                    `json:"count"`
}

// FacultyRatings maps department name to faculty id to that faculty's averages
type FacultyRatings map[string]map[uuid.UUID]FacultyYearRating

type facultyAccumulator struct {
	name     string
	perYear  map[YearBucket][]int
	combined []int
}

// ComputeFacultyRatingsByYear averages ratings per faculty member, split by
// respondent year, within each department. Orphans are dropped first. Only
// years that received ratings appear in PerYear.
func ComputeFacultyRatingsByYear(allFeedback []feedback.Feedback, catalog Catalog) FacultyRatings {
	acc := make(map[string]map[uuid.UUID]*facultyAccumulator)
	for _, f := range FilterOrphans(allFeedback, catalog) {
		year := BucketForYear(f.StudentYear)
		dept := acc[f.StudentDepartment]
		if dept == nil {
			dept = make(map[uuid.UUID]*facultyAccumulator)
			acc[f.StudentDepartment] = dept
		}
		for _, r := range f.Responses {
			a := dept[r.TeacherID]
			if a == nil {
				a = &facultyAccumulator{name: r.TeacherName, perYear: make(map[YearBucket][]int)}
				dept[r.TeacherID] = a
			}
			a.perYear[year] = append(a.perYear[year], r.Rating)
			a.combined = append(a.combined, r.Rating)
		}
	}

	out := make(FacultyRatings, len(acc))
	for dept, faculty := range acc {
		ratings := make(map[uuid.UUID]FacultyYearRating, len(faculty))
		for id, a := range faculty {
			perYear := make(map[YearBucket]float64, len(a.perYear))
			for y, rs := range a.perYear {
				perYear[y] = meanOf(rs)
			}
			ratings[id] = FacultyYearRating{
				Name:        a.name,
				PerYear:     perYear,
				CombinedAvg: meanOf(a.combined),
				Count:       len(a.combined),
			}
		}
		out[dept] = ratings
	}
	return out
}

// Departments returns the department names in alphabetical order
func (fr FacultyRatings) Departments() []string {
	names := make([]string, 0, len(fr))
	for name := range fr {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FacultyIDs returns the faculty ids of a department ordered by name, then id
func (fr FacultyRatings) FacultyIDs(department string) []uuid.UUID {
	faculty := fr[department]
	ids := make([]uuid.UUID, 0, len(faculty))
	for id := range faculty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := faculty[ids[i]], faculty[ids[j]]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return ids[i].String() < ids[j].String()
	})
	return ids
}
