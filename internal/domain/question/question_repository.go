package question

import (
	"context"

	"github.com/google/uuid"
)

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// FindAll returns every question in creation order
	FindAll(ctx context.Context) ([]Question, error)

	// FindByID finds a question by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Question, error)

	// FindByIDs returns the questions with the given ids in the order requested.
	// Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Question, error)

	// Save upserts a question
	Save(ctx context.Context, q *Question) error

	// Delete removes a question
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByText checks for a case-insensitive text match, ignoring excludeID when set
	ExistsByText(ctx context.Context, text string, excludeID *uuid.UUID) (bool, error)
}
