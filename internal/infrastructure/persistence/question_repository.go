package persistence

import (
	"context"
	"strings"

	"github.com/facultyfeedback/backend/internal/domain/question"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuestionRepository implements QuestionRepository using GORM
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewGormQuestionRepository creates a new GormQuestionRepository
func NewGormQuestionRepository(db *gorm.DB) *GormQuestionRepository {
	return &GormQuestionRepository{db: db}
}

var _ question.QuestionRepository = (*GormQuestionRepository)(nil)

// FindAll returns every question, oldest first
func (r *GormQuestionRepository) FindAll(ctx context.Context) ([]question.Question, error) {
	var rows []models.QuestionModel
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]question.Question, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// FindByID finds a question by ID
func (r *GormQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*question.Question, error) {
	var m models.QuestionModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.ToDomain(), nil
}

// FindByIDs returns the questions in the order requested, skipping unknown ids
func (r *GormQuestionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]question.Question, error) {
	if len(ids) == 0 {
		return []question.Question{}, nil
	}
	var rows []models.QuestionModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.QuestionModel, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	out := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, *m.ToDomain())
		}
	}
	return out, nil
}

// Save upserts a question
func (r *GormQuestionRepository) Save(ctx context.Context, q *question.Question) error {
	return r.db.WithContext(ctx).Save(models.QuestionModelFromDomain(q)).Error
}

// Delete removes a question
func (r *GormQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.QuestionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByText checks for a case-insensitive text match, ignoring excludeID when set
func (r *GormQuestionRepository) ExistsByText(ctx context.Context, text string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.QuestionModel{}).
		Where("LOWER(text) = ?", strings.ToLower(strings.TrimSpace(text)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
