package question

import "github.com/facultyfeedback/backend/internal/domain/shared"

// Aggregate type constant for Question
const AggregateTypeQuestion = "Question"

// Question domain event types
const (
	EventTypeQuestionCreated = "QuestionCreated"
	EventTypeQuestionUpdated = "QuestionUpdated"
	EventTypeQuestionDeleted = "QuestionDeleted"
)

// QuestionCreatedEvent is published when a question is added to the bank
type QuestionCreatedEvent struct {
	shared.BaseDomainEvent
	Text string `json:"text"`
}

// NewQuestionCreatedEvent creates a new QuestionCreatedEvent
func NewQuestionCreatedEvent(q *Question) *QuestionCreatedEvent {
	return &QuestionCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuestionCreated, AggregateTypeQuestion, q.ID),
		Text:            q.Text,
	}
}

// QuestionUpdatedEvent is published when a question is edited
type QuestionUpdatedEvent struct {
	shared.BaseDomainEvent
	Text string `json:"text"`
}

// NewQuestionUpdatedEvent creates a new QuestionUpdatedEvent
func NewQuestionUpdatedEvent(q *Question) *QuestionUpdatedEvent {
	return &QuestionUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuestionUpdated, AggregateTypeQuestion, q.ID),
		Text:            q.Text,
	}
}

// QuestionDeletedEvent is published when a question is removed from the bank
type QuestionDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewQuestionDeletedEvent creates a new QuestionDeletedEvent
func NewQuestionDeletedEvent(q *Question) *QuestionDeletedEvent {
	return &QuestionDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuestionDeleted, AggregateTypeQuestion, q.ID),
	}
}
