package stats

import (
	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/google/uuid"
)

// Roster is the live faculty list of one department
type Roster struct {
	Department string
	FacultyIDs []uuid.UUID
}

// Catalog is a read-only snapshot of the entities feedback may reference
type Catalog struct {
	surveys map[uuid.UUID]struct{}
	rosters map[string]map[uuid.UUID]struct{}
}

// NewCatalog builds a catalog from the current survey ids and department rosters.
// Departments are keyed by exact name.
func NewCatalog(surveyIDs []uuid.UUID, rosters []Roster) Catalog {
	c := Catalog{
		surveys: make(map[uuid.UUID]struct{}, len(surveyIDs)),
		rosters: make(map[string]map[uuid.UUID]struct{}, len(rosters)),
	}
	for _, id := range surveyIDs {
		c.surveys[id] = struct{}{}
	}
	for _, r := range rosters {
		ids := make(map[uuid.UUID]struct{}, len(r.FacultyIDs))
		for _, id := range r.FacultyIDs {
			ids[id] = struct{}{}
		}
		c.rosters[r.Department] = ids
	}
	return c
}

// IsOrphan reports whether f references a survey, department or faculty
// member that is no longer present
func (c Catalog) IsOrphan(f feedback.Feedback) bool {
	if _, ok := c.surveys[f.SurveyID]; !ok {
		return true
	}
	roster, ok := c.rosters[f.StudentDepartment]
	if !ok {
		return true
	}
	for _, t := range f.SelectedTeachers {
		if _, ok := roster[t.ID]; !ok {
			return true
		}
	}
	for _, r := range f.Responses {
		if _, ok := roster[r.TeacherID]; !ok {
			return true
		}
	}
	return false
}

// FilterOrphans returns the records of all that are not orphans, preserving order
func FilterOrphans(all []feedback.Feedback, c Catalog) []feedback.Feedback {
	kept := make([]feedback.Feedback, 0, len(all))
	for _, f := range all {
		if !c.IsOrphan(f) {
			kept = append(kept, f)
		}
	}
	return kept
}
