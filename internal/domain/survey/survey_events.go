package survey

import "github.com/facultyfeedback/backend/internal/domain/shared"

// Aggregate type constant for Survey
const AggregateTypeSurvey = "Survey"

// Survey domain event types
const (
	EventTypeSurveyCreated       = "SurveyCreated"
	EventTypeSurveyStatusChanged = "SurveyStatusChanged"
	EventTypeSurveyDeleted       = "SurveyDeleted"
)

// SurveyCreatedEvent is published when a survey is created
type SurveyCreatedEvent struct {
	shared.BaseDomainEvent
	Department    string `json:"department"`
	FacultyCount  int    `json:"faculty_count"`
	QuestionCount int    `json:"question_count"`
}

// NewSurveyCreatedEvent creates a new SurveyCreatedEvent
func NewSurveyCreatedEvent(s *Survey) *SurveyCreatedEvent {
	return &SurveyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSurveyCreated, AggregateTypeSurvey, s.ID),
		Department:      s.Department,
		FacultyCount:    len(s.Faculties),
		QuestionCount:   len(s.Questions),
	}
}

// SurveyStatusChangedEvent is published when a survey is opened or closed
type SurveyStatusChangedEvent struct {
	shared.BaseDomainEvent
	IsActive bool `json:"is_active"`
}

// NewSurveyStatusChangedEvent creates a new SurveyStatusChangedEvent
func NewSurveyStatusChangedEvent(s *Survey) *SurveyStatusChangedEvent {
	return &SurveyStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSurveyStatusChanged, AggregateTypeSurvey, s.ID),
		IsActive:        s.IsActive,
	}
}

// SurveyDeletedEvent is published when a survey is removed
type SurveyDeletedEvent struct {
	shared.BaseDomainEvent
	Department string `json:"department"`
}

// NewSurveyDeletedEvent creates a new SurveyDeletedEvent
func NewSurveyDeletedEvent(s *Survey) *SurveyDeletedEvent {
	return &SurveyDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSurveyDeleted, AggregateTypeSurvey, s.ID),
		Department:      s.Department,
	}
}
