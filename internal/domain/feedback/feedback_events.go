package feedback

import (
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Feedback
const AggregateTypeFeedback = "Feedback"

// EventTypeFeedbackSubmitted is the only feedback event; feedback is immutable
const EventTypeFeedbackSubmitted = "FeedbackSubmitted"

// FeedbackSubmittedEvent is published when a feedback record is persisted
type FeedbackSubmittedEvent struct {
	shared.BaseDomainEvent
	SurveyID      uuid.UUID `json:"survey_id"`
	StudentID     uuid.UUID `json:"student_id"`
	Department    string    `json:"department"`
	ResponseCount int       `json:"response_count"`
}

// NewFeedbackSubmittedEvent creates a new FeedbackSubmittedEvent
func NewFeedbackSubmittedEvent(f *Feedback) *FeedbackSubmittedEvent {
	return &FeedbackSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeedbackSubmitted, AggregateTypeFeedback, f.ID),
		SurveyID:        f.SurveyID,
		StudentID:       f.StudentID,
		Department:      f.StudentDepartment,
		ResponseCount:   len(f.Responses),
	}
}
