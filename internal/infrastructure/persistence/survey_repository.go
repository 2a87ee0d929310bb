package persistence

import (
	"context"
	"strings"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/facultyfeedback/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSurveyRepository implements SurveyRepository using GORM
type GormSurveyRepository struct {
	db *gorm.DB
}

// NewGormSurveyRepository creates a new GormSurveyRepository
func NewGormSurveyRepository(db *gorm.DB) *GormSurveyRepository {
	return &GormSurveyRepository{db: db}
}

var _ survey.SurveyRepository = (*GormSurveyRepository)(nil)

func surveysToDomain(rows []models.SurveyModel) ([]survey.Survey, error) {
	out := make([]survey.Survey, 0, len(rows))
	for i := range rows {
		s, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

// FindAll returns every survey, oldest first
func (r *GormSurveyRepository) FindAll(ctx context.Context) ([]survey.Survey, error) {
	var rows []models.SurveyModel
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return surveysToDomain(rows)
}

// FindByID finds a survey by ID
func (r *GormSurveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*survey.Survey, error) {
	var m models.SurveyModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain()
}

// FindByDepartment returns surveys for a department name, ignoring case
func (r *GormSurveyRepository) FindByDepartment(ctx context.Context, name string) ([]survey.Survey, error) {
	var rows []models.SurveyModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(department) = ?", strings.ToLower(strings.TrimSpace(name))).
		Order("created_at DESC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return surveysToDomain(rows)
}

// Save upserts a survey with its snapshots
func (r *GormSurveyRepository) Save(ctx context.Context, s *survey.Survey) error {
	m, err := models.SurveyModelFromDomain(s)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(m).Error
}

// SaveAll inserts a batch of surveys atomically
func (r *GormSurveyRepository) SaveAll(ctx context.Context, surveys []*survey.Survey) error {
	if len(surveys) == 0 {
		return nil
	}
	rows := make([]*models.SurveyModel, 0, len(surveys))
	for _, s := range surveys {
		m, err := models.SurveyModelFromDomain(s)
		if err != nil {
			return err
		}
		rows = append(rows, m)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range rows {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a survey
func (r *GormSurveyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SurveyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks whether a survey exists
func (r *GormSurveyRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SurveyModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
