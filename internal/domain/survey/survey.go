package survey

import (
	"strings"
	"time"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	MinQuestions = 1
	MaxQuestions = 50
)

// FacultySnapshot is a roster entry frozen at survey creation
type FacultySnapshot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// QuestionSnapshot is a question frozen at survey creation
type QuestionSnapshot struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	AllowComments bool      `json:"allowComments"`
}

// Survey is a department-scoped bundle of faculty and questions.
// Department, faculties and questions are snapshots and never track later edits.
type Survey struct {
	shared.BaseAggregateRoot
	Department string
	Faculties  []FacultySnapshot
	Questions  []QuestionSnapshot
	CreatedBy  uuid.UUID
	IsActive   bool
}

// Snapshot is the historical view of a survey as it was at creation.
// Rating eligibility must use the live roster instead.
type Snapshot struct {
	ID         uuid.UUID
	Department string
	Faculties  []FacultySnapshot
	Questions  []QuestionSnapshot
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
}

// NewSurvey creates an active survey for one department
func NewSurvey(department string, faculties []FacultySnapshot, questions []QuestionSnapshot, createdBy uuid.UUID) (*Survey, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, shared.NewDomainError("INVALID_SURVEY_DEPARTMENT", "Survey department cannot be empty")
	}
	if len(faculties) == 0 {
		return nil, shared.NewValidationError("No faculties available for " + department + " department")
	}
	if len(questions) < MinQuestions {
		return nil, shared.NewValidationError("Please select at least one question")
	}
	if len(questions) > MaxQuestions {
		return nil, shared.NewValidationError("You can select a maximum of 50 questions")
	}

	s := &Survey{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Department:        department,
		Faculties:         append([]FacultySnapshot(nil), faculties...),
		Questions:         append([]QuestionSnapshot(nil), questions...),
		CreatedBy:         createdBy,
		IsActive:          true,
	}

	s.AddDomainEvent(NewSurveyCreatedEvent(s))

	return s, nil
}

// SetActive opens or closes the survey
func (s *Survey) SetActive(active bool) {
	if s.IsActive == active {
		return
	}
	s.IsActive = active
	s.Touch()
	s.AddDomainEvent(NewSurveyStatusChangedEvent(s))
}

// MarkDeleted records the removal of the survey
func (s *Survey) MarkDeleted() {
	s.AddDomainEvent(NewSurveyDeletedEvent(s))
}

// TargetsDepartment reports whether the survey belongs to the named department, ignoring case
func (s *Survey) TargetsDepartment(name string) bool {
	return shared.FoldEqual(s.Department, name)
}

// HasQuestion reports whether id is part of the frozen question list
func (s *Survey) HasQuestion(id uuid.UUID) bool {
	for _, q := range s.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

// QuestionCount returns the number of frozen questions
func (s *Survey) QuestionCount() int {
	return len(s.Questions)
}

// Snapshot returns the historical view of the survey
func (s *Survey) Snapshot() Snapshot {
	return Snapshot{
		ID:         s.ID,
		Department: s.Department,
		Faculties:  append([]FacultySnapshot(nil), s.Faculties...),
		Questions:  append([]QuestionSnapshot(nil), s.Questions...),
		CreatedBy:  s.CreatedBy,
		CreatedAt:  s.CreatedAt,
	}
}
