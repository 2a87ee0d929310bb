package event

import (
	"context"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/facultyfeedback/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AuditLogHandler writes one structured log line per domain event
type AuditLogHandler struct {
	logger *zap.Logger
}

// NewAuditLogHandler creates an audit handler that receives every event
func NewAuditLogHandler(l *zap.Logger) *AuditLogHandler {
	return &AuditLogHandler{logger: l.Named("audit")}
}

// EventTypes returns nil; the audit log subscribes to everything
func (h *AuditLogHandler) EventTypes() []string {
	return nil
}

// Handle logs the event with the request-scoped fields from ctx
func (h *AuditLogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	}

	switch e := event.(type) {
	case *feedback.FeedbackSubmittedEvent:
		fields = append(fields,
			zap.String("survey_id", e.SurveyID.String()),
			zap.String("department", e.Department),
			zap.Int("responses", e.ResponseCount),
		)
	case *survey.SurveyCreatedEvent:
		fields = append(fields,
			zap.String("department", e.Department),
			zap.Int("faculties", e.FacultyCount),
			zap.Int("questions", e.QuestionCount),
		)
	case *survey.SurveyStatusChangedEvent:
		fields = append(fields, zap.Bool("is_active", e.IsActive))
	}

	logger.Enrich(ctx, h.logger).Info("Domain event", fields...)
	return nil
}

var _ shared.EventHandler = (*AuditLogHandler)(nil)
