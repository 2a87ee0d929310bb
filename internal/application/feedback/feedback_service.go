package feedback

import (
	"context"
	"fmt"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedbackService answers read queries over submitted feedback.
// Feedback is written only by the survey-taking controller.
type FeedbackService struct {
	feedbackRepo feedback.FeedbackRepository
	surveyRepo   survey.SurveyRepository
	logger       *zap.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(
	feedbackRepo feedback.FeedbackRepository,
	surveyRepo survey.SurveyRepository,
	logger *zap.Logger,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		surveyRepo:   surveyRepo,
		logger:       logger,
	}
}

// ListBySurvey returns every feedback record submitted against a survey
func (s *FeedbackService) ListBySurvey(ctx context.Context, surveyID uuid.UUID) (*FeedbackList, error) {
	exists, err := s.surveyRepo.ExistsByID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("check survey: %w", err)
	}
	if !exists {
		return nil, shared.NewNotFoundError("Survey")
	}

	items, err := s.feedbackRepo.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("list feedback for survey: %w", err)
	}
	return toFeedbackList(items), nil
}

// ListByStudent returns the feedback a student has submitted
func (s *FeedbackService) ListByStudent(ctx context.Context, studentID uuid.UUID) (*FeedbackList, error) {
	items, err := s.feedbackRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list feedback for student: %w", err)
	}
	return toFeedbackList(items), nil
}

// ListAll returns every feedback record in submission order
func (s *FeedbackService) ListAll(ctx context.Context) (*FeedbackList, error) {
	items, err := s.feedbackRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	s.logger.Debug("Listed feedback", zap.Int("count", len(items)))
	return toFeedbackList(items), nil
}
