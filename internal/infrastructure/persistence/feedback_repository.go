package persistence

import (
	"context"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFeedbackRepository implements FeedbackRepository using GORM
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewGormFeedbackRepository creates a new GormFeedbackRepository
func NewGormFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

var _ feedback.FeedbackRepository = (*GormFeedbackRepository)(nil)

func (r *GormFeedbackRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]feedback.Feedback, error) {
	var rows []models.FeedbackModel
	if err := r.db.WithContext(ctx).Scopes(scope).
		Order("submitted_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]feedback.Feedback, 0, len(rows))
	for i := range rows {
		f, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, nil
}

// FindAll returns every feedback record in submission order
func (r *GormFeedbackRepository) FindAll(ctx context.Context) ([]feedback.Feedback, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB { return db })
}

// FindBySurveyID returns the feedback submitted against a survey
func (r *GormFeedbackRepository) FindBySurveyID(ctx context.Context, surveyID uuid.UUID) ([]feedback.Feedback, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB { return db.Where("survey_id = ?", surveyID) })
}

// FindByStudentID returns the feedback submitted by a student
func (r *GormFeedbackRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]feedback.Feedback, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB { return db.Where("student_id = ?", studentID) })
}

// HasSubmitted checks whether the student already answered the survey
func (r *GormFeedbackRepository) HasSubmitted(ctx context.Context, studentID, surveyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FeedbackModel{}).
		Where("student_id = ? AND survey_id = ?", studentID, surveyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountBySurvey returns the number of feedback records per survey id
func (r *GormFeedbackRepository) CountBySurvey(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		SurveyID uuid.UUID
		Total    int64
	}
	if err := r.db.WithContext(ctx).Model(&models.FeedbackModel{}).
		Select("survey_id, COUNT(*) AS total").
		Group("survey_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		out[row.SurveyID] = row.Total
	}
	return out, nil
}

// Save inserts a feedback record. The (student, survey) unique index turns a
// concurrent second submission into shared.ErrAlreadySubmitted.
func (r *GormFeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	m, err := models.FeedbackModelFromDomain(f)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.ErrAlreadySubmitted
		}
		return err
	}
	return nil
}
