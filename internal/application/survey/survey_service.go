package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/question"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/facultyfeedback/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SurveyService handles survey authoring and administration
type SurveyService struct {
	surveyRepo     survey.SurveyRepository
	departmentRepo organization.DepartmentRepository
	questionRepo   question.QuestionRepository
	feedbackRepo   feedback.FeedbackRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewSurveyService creates a new SurveyService
func NewSurveyService(
	surveyRepo survey.SurveyRepository,
	departmentRepo organization.DepartmentRepository,
	questionRepo question.QuestionRepository,
	feedbackRepo feedback.FeedbackRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *SurveyService {
	return &SurveyService{
		surveyRepo:     surveyRepo,
		departmentRepo: departmentRepo,
		questionRepo:   questionRepo,
		feedbackRepo:   feedbackRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// CreateSurveys creates a survey for one department, or one per department
// when "ALL" is requested. Every target is validated before anything is
// written; a single failing target fails the whole request.
func (s *SurveyService) CreateSurveys(ctx context.Context, req CreateSurveysRequest) (out *CreateSurveysOutcome, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "survey", "create_surveys",
		attribute.String("survey.department", req.Department),
		attribute.Int("survey.question_count", len(req.QuestionIDs)),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	target := strings.TrimSpace(req.Department)
	if target == "" {
		return nil, shared.NewValidationError("Please select a department")
	}
	if len(req.QuestionIDs) < survey.MinQuestions {
		return nil, shared.NewValidationError("Please select at least one question")
	}
	if len(req.QuestionIDs) > survey.MaxQuestions {
		return nil, shared.NewValidationError("Maximum 50 questions allowed per survey")
	}

	questions, err := s.resolveQuestions(ctx, req.QuestionIDs)
	if err != nil {
		return nil, err
	}
	departments, err := s.resolveDepartments(ctx, target)
	if err != nil {
		return nil, err
	}

	// Check every target before building any survey
	for i := range departments {
		if departments[i].FacultyCount() == 0 {
			return nil, shared.NewValidationError(fmt.Sprintf(
				"No faculties available for %s department. Please add faculties first.", departments[i].Name))
		}
	}

	surveys := make([]*survey.Survey, 0, len(departments))
	for i := range departments {
		sv, err := survey.NewSurvey(departments[i].Name, facultySnapshots(&departments[i]), questions, req.CreatedBy)
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, sv)
	}

	if err := s.surveyRepo.SaveAll(ctx, surveys); err != nil {
		return nil, fmt.Errorf("save surveys: %w", err)
	}

	responses := make([]SurveyResponse, len(surveys))
	for i, sv := range surveys {
		s.publish(ctx, sv)
		responses[i] = ToSurveyResponse(sv, 0)
	}

	s.logger.Info("Surveys created",
		zap.String("target", target),
		zap.Int("count", len(surveys)),
		zap.Int("questions", len(questions)),
		zap.String("created_by", req.CreatedBy.String()),
	)

	return &CreateSurveysOutcome{
		Surveys: responses,
		Count:   len(surveys),
		Message: fmt.Sprintf("Survey created successfully for %d department(s)!", len(surveys)),
	}, nil
}

// resolveQuestions snapshots the requested questions in request order.
// Repeated ids collapse; an unknown id fails the request.
func (s *SurveyService) resolveQuestions(ctx context.Context, rawIDs []string) ([]survey.QuestionSnapshot, error) {
	ids := make([]uuid.UUID, 0, len(rawIDs))
	seen := make(map[uuid.UUID]struct{}, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := shared.ParseID("question", raw)
		if err != nil {
			return nil, shared.NewValidationError("Question not found: " + raw)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	found, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]question.Question, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}

	snapshots := make([]survey.QuestionSnapshot, 0, len(ids))
	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			return nil, shared.NewValidationError("Question not found: " + id.String())
		}
		snapshots = append(snapshots, survey.QuestionSnapshot{
			ID:            q.ID,
			Text:          q.Text,
			AllowComments: q.AllowComments,
		})
	}
	return snapshots, nil
}

func (s *SurveyService) resolveDepartments(ctx context.Context, target string) ([]organization.Department, error) {
	if target == AllDepartments {
		all, err := s.departmentRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			return nil, shared.NewValidationError("No departments found")
		}
		return all, nil
	}

	id, err := shared.ParseID("department", target)
	if err != nil {
		return nil, shared.NewValidationError("Department not found")
	}
	dept, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("Department not found")
		}
		return nil, err
	}
	return []organization.Department{*dept}, nil
}

func facultySnapshots(d *organization.Department) []survey.FacultySnapshot {
	out := make([]survey.FacultySnapshot, len(d.Faculties))
	for i, f := range d.Faculties {
		out[i] = survey.FacultySnapshot{ID: f.ID, Name: f.Name}
	}
	return out
}

// List returns every survey in creation order with its response count
func (s *SurveyService) List(ctx context.Context) ([]SurveyResponse, error) {
	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, surveys)
}

// ListByDepartment returns the surveys for a department name, ignoring case
func (s *SurveyService) ListByDepartment(ctx context.Context, department string) ([]SurveyResponse, error) {
	surveys, err := s.surveyRepo.FindByDepartment(ctx, strings.TrimSpace(department))
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, surveys)
}

// GetByID returns one survey
func (s *SurveyService) GetByID(ctx context.Context, id uuid.UUID) (*SurveyResponse, error) {
	sv, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withCount(ctx, sv)
}

func (s *SurveyService) withCount(ctx context.Context, sv *survey.Survey) (*SurveyResponse, error) {
	responses, err := s.feedbackRepo.FindBySurveyID(ctx, sv.ID)
	if err != nil {
		return nil, err
	}
	response := ToSurveyResponse(sv, int64(len(responses)))
	return &response, nil
}

// SetActive opens or closes a survey. Closed surveys refuse new sessions.
func (s *SurveyService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*SurveyResponse, error) {
	sv, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	sv.SetActive(active)
	if err := s.surveyRepo.Save(ctx, sv); err != nil {
		return nil, fmt.Errorf("save survey: %w", err)
	}
	s.publish(ctx, sv)

	s.logger.Info("Survey status changed",
		zap.String("survey_id", id.String()),
		zap.Bool("is_active", active),
	)

	return s.withCount(ctx, sv)
}

// Delete removes a survey. Feedback already submitted against it stays in
// the store and is excluded from aggregates as orphaned.
func (s *SurveyService) Delete(ctx context.Context, id uuid.UUID, confirm bool) (*shared.DeleteOutcome, error) {
	sv, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !confirm {
		return shared.ConfirmationRequired(
			"Are you sure you want to delete this survey? This will remove it from all students and cannot be undone."), nil
	}

	if err := s.surveyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Survey")
		}
		return nil, err
	}
	sv.MarkDeleted()
	s.publish(ctx, sv)

	s.logger.Info("Survey deleted",
		zap.String("survey_id", id.String()),
		zap.String("department", sv.Department),
	)
	return shared.Deleted("Survey deleted successfully"), nil
}

// CountActive returns the number of open surveys
func (s *SurveyService) CountActive(ctx context.Context) (int64, error) {
	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	for i := range surveys {
		if surveys[i].IsActive {
			n++
		}
	}
	return n, nil
}

func (s *SurveyService) withCounts(ctx context.Context, surveys []survey.Survey) ([]SurveyResponse, error) {
	counts, err := s.feedbackRepo.CountBySurvey(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SurveyResponse, len(surveys))
	for i := range surveys {
		out[i] = ToSurveyResponse(&surveys[i], counts[surveys[i].ID])
	}
	return out, nil
}

func (s *SurveyService) find(ctx context.Context, id uuid.UUID) (*survey.Survey, error) {
	sv, err := s.surveyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Survey")
		}
		return nil, err
	}
	return sv, nil
}

func (s *SurveyService) publish(ctx context.Context, sv *survey.Survey) {
	if err := shared.PublishAndClear(ctx, s.eventPublisher, sv); err != nil {
		s.logger.Warn("Failed to publish survey events",
			zap.String("survey_id", sv.ID.String()),
			zap.Error(err),
		)
	}
}
