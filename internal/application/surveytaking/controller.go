package surveytaking

import (
	"context"
	"errors"
	"fmt"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/identity"
	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/facultyfeedback/backend/internal/domain/surveytaking"
	"github.com/facultyfeedback/backend/internal/infrastructure/logger"
	"github.com/facultyfeedback/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// RosterReader returns the current department and roster for a name.
// It is the only path used for rating eligibility.
type RosterReader interface {
	LiveDepartment(ctx context.Context, name string) (*organization.Department, error)
}

// SessionMetrics counts session lifecycle outcomes
type SessionMetrics interface {
	RecordSessionStarted(ctx context.Context, department string)
	RecordSessionAbandoned(ctx context.Context, department string)
	RecordIntegrityFailure(ctx context.Context, department string)
}

type noopMetrics struct{}

func (noopMetrics) RecordSessionStarted(context.Context, string)   {}
func (noopMetrics) RecordSessionAbandoned(context.Context, string) {}
func (noopMetrics) RecordIntegrityFailure(context.Context, string) {}

// Controller drives survey-taking sessions. Each call loads the session,
// applies one transition and stores the whole session back.
type Controller struct {
	sessions       surveytaking.SessionStore
	surveyRepo     survey.SurveyRepository
	userRepo       identity.UserRepository
	feedbackRepo   feedback.FeedbackRepository
	roster         RosterReader
	metrics        SessionMetrics
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithMetrics records session outcomes on m
func WithMetrics(m SessionMetrics) ControllerOption {
	return func(c *Controller) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithEventPublisher publishes feedback events after a successful submit
func WithEventPublisher(p shared.EventPublisher) ControllerOption {
	return func(c *Controller) {
		c.eventPublisher = p
	}
}

// NewController creates a new Controller
func NewController(
	sessions surveytaking.SessionStore,
	surveyRepo survey.SurveyRepository,
	userRepo identity.UserRepository,
	feedbackRepo feedback.FeedbackRepository,
	roster RosterReader,
	log *zap.Logger,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		sessions:     sessions,
		surveyRepo:   surveyRepo,
		userRepo:     userRepo,
		feedbackRepo: feedbackRepo,
		roster:       roster,
		metrics:      noopMetrics{},
		logger:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin runs the entry guard for a student and opens a new session
func (c *Controller) Begin(ctx context.Context, studentID, surveyID uuid.UUID) (*SessionView, error) {
	user, err := c.userRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsStudent() {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only students can take surveys")
	}

	sv, err := c.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Survey")
		}
		return nil, err
	}

	submitted, err := c.feedbackRepo.HasSubmitted(ctx, studentID, surveyID)
	if err != nil {
		return nil, err
	}

	session, err := surveytaking.Begin(sv, surveytaking.Respondent{
		ID:         user.ID,
		Name:       user.Name,
		RollNo:     user.RollNumber,
		Year:       user.Year,
		Department: user.Department,
	}, submitted)
	if err != nil {
		return nil, err
	}

	if err := c.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	c.metrics.RecordSessionStarted(ctx, session.Department)

	c.log(ctx, session).Info("Survey session started")

	view := ToSessionView(session)
	return &view, nil
}

// Get returns the current view of a session
func (c *Controller) Get(ctx context.Context, studentID, sessionID uuid.UUID) (*SessionView, error) {
	session, err := c.load(ctx, studentID, sessionID)
	if err != nil {
		return nil, err
	}
	view := ToSessionView(session)
	return &view, nil
}

// SubmitRespondentInfo validates step one and loads the live roster of the
// selected class as the candidate list
func (c *Controller) SubmitRespondentInfo(ctx context.Context, studentID, sessionID uuid.UUID, req RespondentInfoRequest) (*SessionView, error) {
	return c.apply(ctx, studentID, sessionID, func(session *surveytaking.Session) error {
		info := surveytaking.RespondentInfo{RollNo: req.RollNo, Year: req.Year, Class: req.Class}
		if err := session.CheckRespondentInfo(info); err != nil {
			return err
		}

		var candidates []surveytaking.Candidate
		dept, err := c.roster.LiveDepartment(ctx, req.Class)
		switch {
		case err == nil:
			candidates = make([]surveytaking.Candidate, len(dept.Faculties))
			for i, f := range dept.Faculties {
				candidates[i] = surveytaking.Candidate{ID: f.ID, Name: f.Name, Subject: f.Subject}
			}
		case !errors.Is(err, shared.ErrNotFound):
			return err
		}

		return session.SubmitRespondentInfo(info, candidates)
	})
}

// SelectRaters chooses which candidates the respondent will rate
func (c *Controller) SelectRaters(ctx context.Context, studentID, sessionID uuid.UUID, req SelectRatersRequest) (*SessionView, error) {
	ids := make([]uuid.UUID, 0, len(req.FacultyIDs))
	for _, raw := range req.FacultyIDs {
		id, err := shared.ParseID("faculty", raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return c.apply(ctx, studentID, sessionID, func(session *surveytaking.Session) error {
		return session.SelectRaters(ids)
	})
}

// Rate records one rating on the current question
func (c *Controller) Rate(ctx context.Context, studentID, sessionID uuid.UUID, req RateRequest) (*SessionView, error) {
	questionID, err := shared.ParseID("question", req.QuestionID)
	if err != nil {
		return nil, err
	}
	facultyID, err := shared.ParseID("faculty", req.FacultyID)
	if err != nil {
		return nil, err
	}
	return c.apply(ctx, studentID, sessionID, func(session *surveytaking.Session) error {
		return session.Rate(questionID, facultyID, req.Rating)
	})
}

// Next advances to the following question
func (c *Controller) Next(ctx context.Context, studentID, sessionID uuid.UUID) (*SessionView, error) {
	return c.apply(ctx, studentID, sessionID, (*surveytaking.Session).Next)
}

// Back returns to the previous question
func (c *Controller) Back(ctx context.Context, studentID, sessionID uuid.UUID) (*SessionView, error) {
	return c.apply(ctx, studentID, sessionID, (*surveytaking.Session).Back)
}

// Submit re-validates the session against live data and persists the
// feedback. An integrity failure discards the session; the respondent must
// start again.
func (c *Controller) Submit(ctx context.Context, studentID, sessionID uuid.UUID) (result *SubmitResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "survey_session", "submit",
		attribute.String("session.id", sessionID.String()),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	session, err := c.load(ctx, studentID, sessionID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("survey.id", session.SurveyID.String()))

	live, err := c.liveState(ctx, session)
	if err != nil {
		return nil, err
	}

	record, err := session.Submit(live)
	if err != nil {
		if shared.IsIntegrityError(err) {
			c.discard(ctx, session)
			c.metrics.RecordIntegrityFailure(ctx, session.Department)
			c.log(ctx, session).Warn("Submission failed re-validation", zap.Error(err))
		}
		return nil, err
	}

	if err := c.feedbackRepo.Save(ctx, record); err != nil {
		if errors.Is(err, shared.ErrAlreadySubmitted) {
			c.discard(ctx, session)
			return nil, shared.ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("save feedback: %w", err)
	}

	session.MarkSubmitted(record.ID)
	if err := c.sessions.Put(ctx, session); err != nil {
		c.log(ctx, session).Warn("Failed to store submitted session", zap.Error(err))
	}
	if err := shared.PublishAndClear(ctx, c.eventPublisher, record); err != nil {
		c.log(ctx, session).Warn("Failed to publish feedback events", zap.Error(err))
	}

	c.log(ctx, session).Info("Feedback submitted",
		zap.String("feedback_id", record.ID.String()),
		zap.Int("responses", len(record.Responses)),
	)

	return &SubmitResult{
		FeedbackID:  record.ID,
		SurveyID:    record.SurveyID,
		Responses:   len(record.Responses),
		SubmittedAt: record.SubmittedAt,
		Message:     "Thank you! Your feedback has been submitted successfully.",
	}, nil
}

// Abandon discards a session. Progress is not kept.
func (c *Controller) Abandon(ctx context.Context, studentID, sessionID uuid.UUID) error {
	session, err := c.load(ctx, studentID, sessionID)
	if err != nil {
		return err
	}
	if err := c.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if session.State != surveytaking.StateSubmitted {
		c.metrics.RecordSessionAbandoned(ctx, session.Department)
		c.log(ctx, session).Info("Survey session abandoned", zap.String("state", string(session.State)))
	}
	return nil
}

// liveState reads the survey and the respondent's department as they are now.
// Missing entities are reported as nil for re-validation to reject.
func (c *Controller) liveState(ctx context.Context, session *surveytaking.Session) (surveytaking.Live, error) {
	var live surveytaking.Live

	sv, err := c.surveyRepo.FindByID(ctx, session.SurveyID)
	switch {
	case err == nil:
		live.Survey = sv
	case !errors.Is(err, shared.ErrNotFound):
		return live, err
	}

	dept, err := c.roster.LiveDepartment(ctx, session.Respondent.Department)
	switch {
	case err == nil:
		live.Department = dept
	case !errors.Is(err, shared.ErrNotFound):
		return live, err
	}

	return live, nil
}

func (c *Controller) apply(ctx context.Context, studentID, sessionID uuid.UUID, step func(*surveytaking.Session) error) (*SessionView, error) {
	session, err := c.load(ctx, studentID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := step(session); err != nil {
		return nil, err
	}
	if err := c.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	view := ToSessionView(session)
	return &view, nil
}

func (c *Controller) load(ctx context.Context, studentID, sessionID uuid.UUID) (*surveytaking.Session, error) {
	session, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Session")
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !session.OwnedBy(studentID) {
		return nil, shared.NewDomainError(shared.CodeForbidden, "This session belongs to another user")
	}
	return session, nil
}

func (c *Controller) discard(ctx context.Context, session *surveytaking.Session) {
	if err := c.sessions.Delete(ctx, session.ID); err != nil {
		c.log(ctx, session).Warn("Failed to discard session", zap.Error(err))
	}
}

func (c *Controller) log(ctx context.Context, session *surveytaking.Session) *zap.Logger {
	return logger.Enrich(logger.WithSessionID(ctx, session.ID.String()), c.logger).With(
		zap.String("survey_id", session.SurveyID.String()),
		zap.String("department", session.Department),
	)
}
