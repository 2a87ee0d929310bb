package organization

import (
	"context"

	"github.com/google/uuid"
)

// DepartmentRepository defines the interface for department persistence.
// Departments are always loaded with their full faculty roster.
type DepartmentRepository interface {
	// FindAll returns every department in store order (creation time)
	FindAll(ctx context.Context) ([]Department, error)

	// FindByID finds a department by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)

	// FindByName finds a department by its exact name
	FindByName(ctx context.Context, name string) (*Department, error)

	// Save upserts the department row. The roster is managed through AddFaculty/RemoveFaculty.
	Save(ctx context.Context, dept *Department) error

	// Delete removes a department and its roster
	Delete(ctx context.Context, id uuid.UUID) error

	// AddFaculty persists a new roster entry
	AddFaculty(ctx context.Context, departmentID uuid.UUID, faculty *Faculty) error

	// RemoveFaculty deletes a roster entry
	RemoveFaculty(ctx context.Context, departmentID, facultyID uuid.UUID) error

	// ExistsByName checks whether a department with the exact name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
