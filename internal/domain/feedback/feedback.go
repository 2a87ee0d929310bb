package feedback

import (
	"fmt"
	"strings"
	"time"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Rating bounds. Unrated is the in-flow sentinel and is never persisted.
const (
	Unrated   = 0
	MinRating = 1
	MaxRating = 10
)

// SelectedTeacher is a faculty member the respondent chose to rate
type SelectedTeacher struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
}

// Response is one rating for a (question, faculty) pair
type Response struct {
	QuestionID   uuid.UUID `json:"questionId"`
	QuestionText string    `json:"questionText"`
	TeacherID    uuid.UUID `json:"teacherId"`
	TeacherName  string    `json:"teacherName"`
	Rating       int       `json:"rating"`
}

// Validation records which live checks passed before the feedback was written
type Validation struct {
	Validated        bool `json:"validated"`
	SurveyExists     bool `json:"surveyExists"`
	DepartmentExists bool `json:"departmentExists"`
	FacultiesExist   bool `json:"facultiesExist"`
}

// Respondent identifies the student submitting feedback
type Respondent struct {
	ID         uuid.UUID
	Name       string
	RollNo     string
	Year       *int
	Department string
}

// Feedback is one respondent's complete, immutable submission against one survey
type Feedback struct {
	shared.BaseAggregateRoot
	SurveyID          uuid.UUID
	StudentID         uuid.UUID
	StudentName       string
	StudentRollNo     string
	StudentYear       *int
	StudentDepartment string
	SelectedTeachers  []SelectedTeacher
	Responses         []Response
	SubmittedAt       time.Time
	Validation        Validation
}

// NewFeedback creates a feedback record. Every rating must be within 1..10.
func NewFeedback(surveyID uuid.UUID, respondent Respondent, teachers []SelectedTeacher, responses []Response, validation Validation) (*Feedback, error) {
	if surveyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SURVEY_ID", "Survey ID cannot be empty")
	}
	if respondent.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STUDENT_ID", "Student ID cannot be empty")
	}
	if strings.TrimSpace(respondent.RollNo) == "" {
		return nil, shared.NewDomainError("INVALID_ROLL_NUMBER", "Roll number cannot be empty")
	}
	if len(teachers) == 0 {
		return nil, shared.NewValidationError("Please select at least one teacher")
	}
	if len(responses) == 0 {
		return nil, shared.NewValidationError("Feedback must contain at least one rating")
	}
	for _, r := range responses {
		if !ValidRating(r.Rating) {
			return nil, shared.NewDomainError("INVALID_RATING",
				fmt.Sprintf("Rating for %s must be between %d and %d", r.TeacherName, MinRating, MaxRating))
		}
	}

	f := &Feedback{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SurveyID:          surveyID,
		StudentID:         respondent.ID,
		StudentName:       respondent.Name,
		StudentRollNo:     strings.TrimSpace(respondent.RollNo),
		StudentYear:       respondent.Year,
		StudentDepartment: respondent.Department,
		SelectedTeachers:  append([]SelectedTeacher(nil), teachers...),
		Responses:         append([]Response(nil), responses...),
		Validation:        validation,
	}
	f.SubmittedAt = f.CreatedAt

	f.AddDomainEvent(NewFeedbackSubmittedEvent(f))

	return f, nil
}

// ValidRating reports whether r is a final rating value
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Ratings returns every rating value in response order
func (f *Feedback) Ratings() []int {
	out := make([]int, len(f.Responses))
	for i, r := range f.Responses {
		out[i] = r.Rating
	}
	return out
}

// RatedTeacherIDs returns the distinct faculty ids that received a rating
func (f *Feedback) RatedTeacherIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	out := make([]uuid.UUID, 0)
	for _, r := range f.Responses {
		if _, ok := seen[r.TeacherID]; ok {
			continue
		}
		seen[r.TeacherID] = struct{}{}
		out = append(out, r.TeacherID)
	}
	return out
}
