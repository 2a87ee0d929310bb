package question

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/question"
	"github.com/google/uuid"
)

// CreateQuestionRequest represents a request to create a question.
// AllowComments defaults to true when omitted.
type CreateQuestionRequest struct {
	Text          string `json:"text" binding:"required,min=5,max=500"`
	AllowComments *bool  `json:"allowComments"`
}

// UpdateQuestionRequest represents a request to edit a question
type UpdateQuestionRequest struct {
	Text          string `json:"text" binding:"required,min=5,max=500"`
	AllowComments *bool  `json:"allowComments"`
}

// QuestionResponse is a question in the bank
type QuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	AllowComments bool      `json:"allowComments"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// QuestionResult is a saved question plus non-blocking advice about its text
type QuestionResult struct {
	Question QuestionResponse `json:"question"`
	Warnings []string         `json:"warnings"`
}

// ToQuestionResponse converts a question to its response
func ToQuestionResponse(q *question.Question) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		Text:          q.Text,
		AllowComments: q.AllowComments,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func allowComments(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
