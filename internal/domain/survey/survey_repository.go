package survey

import (
	"context"

	"github.com/google/uuid"
)

// SurveyRepository defines the interface for survey persistence
type SurveyRepository interface {
	// FindAll returns every survey in creation order
	FindAll(ctx context.Context) ([]Survey, error)

	// FindByID finds a survey by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Survey, error)

	// FindByDepartment returns surveys whose department matches name, ignoring case
	FindByDepartment(ctx context.Context, name string) ([]Survey, error)

	// Save upserts a survey with its snapshots
	Save(ctx context.Context, s *Survey) error

	// SaveAll persists a batch of new surveys in one transaction
	SaveAll(ctx context.Context, surveys []*Survey) error

	// Delete removes a survey
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks whether a survey exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
