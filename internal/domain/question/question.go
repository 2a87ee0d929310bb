package question

import (
	"strings"
	"unicode/utf8"

	"github.com/facultyfeedback/backend/internal/domain/shared"
)

const (
	MinTextLength = 5
	MaxTextLength = 500
)

// WarningMissingQuestionMark is returned alongside a valid question whose text
// does not end with a question mark
const WarningMissingQuestionMark = "Question should end with '?'"

// Question is a reusable prompt rated per faculty member per survey.
// Surveys embed a copy, so edits and deletes never reach existing surveys.
type Question struct {
	shared.BaseAggregateRoot
	Text          string
	AllowComments bool
}

// NewQuestion creates a question
func NewQuestion(text string, allowComments bool) (*Question, error) {
	text = strings.TrimSpace(text)
	if err := validateText(text); err != nil {
		return nil, err
	}

	q := &Question{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Text:              text,
		AllowComments:     allowComments,
	}

	q.AddDomainEvent(NewQuestionCreatedEvent(q))

	return q, nil
}

// Update replaces the question text and comment flag
func (q *Question) Update(text string, allowComments bool) error {
	text = strings.TrimSpace(text)
	if err := validateText(text); err != nil {
		return err
	}

	q.Text = text
	q.AllowComments = allowComments
	q.Touch()

	q.AddDomainEvent(NewQuestionUpdatedEvent(q))

	return nil
}

// MarkDeleted records the removal of the question
func (q *Question) MarkDeleted() {
	q.AddDomainEvent(NewQuestionDeletedEvent(q))
}

// Warnings returns non-blocking advice about the question text
func Warnings(text string) []string {
	warnings := make([]string, 0)
	if !strings.HasSuffix(strings.TrimSpace(text), "?") {
		warnings = append(warnings, WarningMissingQuestionMark)
	}
	return warnings
}

func validateText(text string) error {
	if text == "" {
		return shared.NewDomainError("INVALID_QUESTION_TEXT", "Question text cannot be empty")
	}
	n := utf8.RuneCountInString(text)
	if n < MinTextLength {
		return shared.NewDomainError("INVALID_QUESTION_TEXT", "Question must be at least 5 characters")
	}
	if n > MaxTextLength {
		return shared.NewDomainError("INVALID_QUESTION_TEXT", "Question cannot exceed 500 characters")
	}
	return nil
}
