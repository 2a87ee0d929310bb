package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/facultyfeedback/backend/internal/domain/question"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuestionService manages the question bank. Surveys embed copies of
// questions, so nothing here reaches an existing survey.
type QuestionService struct {
	questionRepo   question.QuestionRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	questionRepo question.QuestionRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo:   questionRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Create adds a question. Duplicate text, ignoring case, is rejected.
func (s *QuestionService) Create(ctx context.Context, req CreateQuestionRequest) (*QuestionResult, error) {
	q, err := question.NewQuestion(req.Text, allowComments(req.AllowComments))
	if err != nil {
		return nil, err
	}

	exists, err := s.questionRepo.ExistsByText(ctx, q.Text, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "This question already exists")
	}

	if err := s.questionRepo.Save(ctx, q); err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	s.publish(ctx, q)

	s.logger.Info("Question created", zap.String("question_id", q.ID.String()))

	return &QuestionResult{
		Question: ToQuestionResponse(q),
		Warnings: question.Warnings(q.Text),
	}, nil
}

// Update edits a question, checking duplicates against every other question
func (s *QuestionService) Update(ctx context.Context, id uuid.UUID, req UpdateQuestionRequest) (*QuestionResult, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := q.Update(req.Text, allowComments(req.AllowComments)); err != nil {
		return nil, err
	}

	exists, err := s.questionRepo.ExistsByText(ctx, q.Text, &q.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "This question already exists")
	}

	if err := s.questionRepo.Save(ctx, q); err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	s.publish(ctx, q)

	return &QuestionResult{
		Question: ToQuestionResponse(q),
		Warnings: question.Warnings(q.Text),
	}, nil
}

// Delete removes a question from the bank. Without confirm nothing is removed.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID, confirm bool) (*shared.DeleteOutcome, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !confirm {
		return shared.ConfirmationRequired(
			"Are you sure you want to delete this question? Any surveys using this question will not be affected."), nil
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Question")
		}
		return nil, err
	}
	q.MarkDeleted()
	s.publish(ctx, q)

	return shared.Deleted("Question deleted successfully"), nil
}

// GetByID returns a question
func (s *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*QuestionResponse, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToQuestionResponse(q)
	return &response, nil
}

// List returns the question bank in creation order
func (s *QuestionService) List(ctx context.Context) ([]QuestionResponse, error) {
	questions, err := s.questionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]QuestionResponse, len(questions))
	for i := range questions {
		out[i] = ToQuestionResponse(&questions[i])
	}
	return out, nil
}

func (s *QuestionService) find(ctx context.Context, id uuid.UUID) (*question.Question, error) {
	q, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Question")
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) publish(ctx context.Context, q *question.Question) {
	if err := shared.PublishAndClear(ctx, s.eventPublisher, q); err != nil {
		s.logger.Warn("Failed to publish question events",
			zap.String("question_id", q.ID.String()),
			zap.Error(err),
		)
	}
}
