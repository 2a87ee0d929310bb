package telemetry

import (
	"context"
	"fmt"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName names the meter for feedback instruments
const MeterName = "github.com/facultyfeedback/backend/feedback"

// ActiveSurveyCounter reports how many surveys are currently open
type ActiveSurveyCounter func(ctx context.Context) (int64, error)

// FeedbackMetrics holds the domain instruments. It is also an event
// handler so submissions and survey creation are counted from the bus.
type FeedbackMetrics struct {
	feedbackSubmitted metric.Int64Counter
	responses         metric.Int64Histogram
	surveysCreated    metric.Int64Counter
	sessionsStarted   metric.Int64Counter
	sessionsAbandoned metric.Int64Counter
	integrityFailures metric.Int64Counter
	registration      metric.Registration
}

// NewFeedbackMetrics creates the instruments on meter. A non-nil
// activeSurveys registers the survey.active gauge.
func NewFeedbackMetrics(meter metric.Meter, activeSurveys ActiveSurveyCounter) (*FeedbackMetrics, error) {
	m := &FeedbackMetrics{}
	var err error

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&m.feedbackSubmitted, "feedback.submitted", "Feedback records persisted"},
		{&m.surveysCreated, "survey.created", "Surveys created"},
		{&m.sessionsStarted, "survey_session.started", "Survey-taking sessions begun"},
		{&m.sessionsAbandoned, "survey_session.abandoned", "Sessions discarded before submission"},
		{&m.integrityFailures, "survey_session.integrity_failures", "Submissions rejected by live re-validation"},
	}
	for _, c := range counters {
		if *c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit("{count}")); err != nil {
			return nil, &MetricsError{Metric: c.name, Err: err}
		}
	}

	m.responses, err = meter.Int64Histogram("feedback.responses",
		metric.WithDescription("Ratings per feedback record"),
		metric.WithUnit("{rating}"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500),
	)
	if err != nil {
		return nil, &MetricsError{Metric: "feedback.responses", Err: err}
	}

	if activeSurveys != nil {
		gauge, err := meter.Int64ObservableGauge("survey.active",
			metric.WithDescription("Surveys currently open for responses"),
			metric.WithUnit("{survey}"),
		)
		if err != nil {
			return nil, &MetricsError{Metric: "survey.active", Err: err}
		}
		m.registration, err = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
			n, err := activeSurveys(ctx)
			if err != nil {
				return err
			}
			o.ObserveInt64(gauge, n)
			return nil
		}, gauge)
		if err != nil {
			return nil, &MetricsError{Metric: "survey.active", Err: err}
		}
	}

	return m, nil
}

func departmentAttr(department string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("department", shared.FoldKey(department)))
}

// EventTypes returns the events the metrics handler counts
func (m *FeedbackMetrics) EventTypes() []string {
	return []string{feedback.EventTypeFeedbackSubmitted, survey.EventTypeSurveyCreated}
}

// Handle counts feedback submissions and survey creation
func (m *FeedbackMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *feedback.FeedbackSubmittedEvent:
		attrs := departmentAttr(e.Department)
		m.feedbackSubmitted.Add(ctx, 1, attrs)
		m.responses.Record(ctx, int64(e.ResponseCount), attrs)
	case *survey.SurveyCreatedEvent:
		m.surveysCreated.Add(ctx, 1, departmentAttr(e.Department))
	}
	return nil
}

// RecordSessionStarted counts a session that passed the entry guard
func (m *FeedbackMetrics) RecordSessionStarted(ctx context.Context, department string) {
	m.sessionsStarted.Add(ctx, 1, departmentAttr(department))
}

// RecordSessionAbandoned counts a session discarded by its owner
func (m *FeedbackMetrics) RecordSessionAbandoned(ctx context.Context, department string) {
	m.sessionsAbandoned.Add(ctx, 1, departmentAttr(department))
}

// RecordIntegrityFailure counts a submission rejected by re-validation
func (m *FeedbackMetrics) RecordIntegrityFailure(ctx context.Context, department string) {
	m.integrityFailures.Add(ctx, 1, departmentAttr(department))
}

// Stop unregisters the gauge callback
func (m *FeedbackMetrics) Stop() error {
	if m.registration == nil {
		return nil
	}
	return m.registration.Unregister()
}

// MetricsError reports an instrument that could not be created
type MetricsError struct {
	Metric string
	Err    error
}

func (e *MetricsError) Error() string {
	return fmt.Sprintf("metric %s: %v", e.Metric, e.Err)
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}

var _ shared.EventHandler = (*FeedbackMetrics)(nil)
