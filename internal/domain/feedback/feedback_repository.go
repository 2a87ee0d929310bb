package feedback

import (
	"context"

	"github.com/google/uuid"
)

// FeedbackRepository defines the interface for feedback persistence.
// There is no update path: feedback is write-once.
type FeedbackRepository interface {
	// FindAll returns every feedback record in submission order
	FindAll(ctx context.Context) ([]Feedback, error)

	// FindBySurveyID returns the feedback submitted against a survey
	FindBySurveyID(ctx context.Context, surveyID uuid.UUID) ([]Feedback, error)

	// FindByStudentID returns the feedback submitted by a student
	FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]Feedback, error)

	// HasSubmitted checks whether the student already answered the survey
	HasSubmitted(ctx context.Context, studentID, surveyID uuid.UUID) (bool, error)

	// CountBySurvey returns the number of feedback records per survey id
	CountBySurvey(ctx context.Context) (map[uuid.UUID]int64, error)

	// Save inserts a new feedback record. A second record for the same
	// (student, survey) pair fails with shared.ErrAlreadySubmitted.
	Save(ctx context.Context, f *Feedback) error
}
