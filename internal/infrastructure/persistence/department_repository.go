package persistence

import (
	"context"

	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

var _ organization.DepartmentRepository = (*GormDepartmentRepository)(nil)

func preloadRoster(db *gorm.DB) *gorm.DB {
	return db.Preload("Faculties", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("faculties.created_at ASC, faculties.id ASC")
	})
}

// FindAll returns every department with its roster, oldest first
func (r *GormDepartmentRepository) FindAll(ctx context.Context) ([]organization.Department, error) {
	var rows []models.DepartmentModel
	if err := preloadRoster(r.db.WithContext(ctx)).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]organization.Department, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// FindByID finds a department by ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Department, error) {
	var m models.DepartmentModel
	if err := preloadRoster(r.db.WithContext(ctx)).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindByName finds a department by its exact name
func (r *GormDepartmentRepository) FindByName(ctx context.Context, name string) (*organization.Department, error) {
	var m models.DepartmentModel
	if err := preloadRoster(r.db.WithContext(ctx)).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// Save upserts the department row without touching the roster
func (r *GormDepartmentRepository) Save(ctx context.Context, dept *organization.Department) error {
	m := models.DepartmentModelFromDomain(dept)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes a department and its roster in one transaction
func (r *GormDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("department_id = ?", id).Delete(&models.FacultyModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.DepartmentModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// AddFaculty persists a new roster entry
func (r *GormDepartmentRepository) AddFaculty(ctx context.Context, departmentID uuid.UUID, faculty *organization.Faculty) error {
	m := models.FacultyModelFromDomain(faculty)
	m.DepartmentID = departmentID
	return r.db.WithContext(ctx).Create(m).Error
}

// RemoveFaculty deletes a roster entry
func (r *GormDepartmentRepository) RemoveFaculty(ctx context.Context, departmentID, facultyID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND department_id = ?", facultyID, departmentID).
		Delete(&models.FacultyModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Faculty")
	}
	return nil
}

// ExistsByName checks whether a department with the exact name exists
func (r *GormDepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DepartmentModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
