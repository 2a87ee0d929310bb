package survey

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/google/uuid"
)

// AllDepartments targets every department in one all-or-nothing batch
const AllDepartments = "ALL"

// CreateSurveysRequest represents a request to create one survey, or one per
// department when Department is "ALL". Bounds on the question list are
// checked by the service so the caller gets the specific message.
type CreateSurveysRequest struct {
	Department  string    `json:"department"`
	QuestionIDs []string  `json:"questionIds"`
	CreatedBy   uuid.UUID `json:"-"`
}

// SetActiveRequest opens or closes a survey
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// SurveyResponse is a survey with its frozen snapshots
type SurveyResponse struct {
	ID            uuid.UUID                 `json:"id"`
	Department    string                    `json:"department"`
	Faculties     []survey.FacultySnapshot  `json:"faculties"`
	Questions     []survey.QuestionSnapshot `json:"questions"`
	CreatedBy     uuid.UUID                 `json:"createdBy"`
	CreatedAt     time.Time                 `json:"createdAt"`
	IsActive      bool                      `json:"isActive"`
	ResponseCount int64                     `json:"responseCount"`
}

// CreateSurveysOutcome lists the surveys created by one request
type CreateSurveysOutcome struct {
	Surveys []SurveyResponse `json:"surveys"`
	Count   int              `json:"count"`
	Message string           `json:"message"`
}

// ToSurveyResponse converts a survey to its response
func ToSurveyResponse(s *survey.Survey, responses int64) SurveyResponse {
	return SurveyResponse{
		ID:            s.ID,
		Department:    s.Department,
		Faculties:     s.Faculties,
		Questions:     s.Questions,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		IsActive:      s.IsActive,
		ResponseCount: responses,
	}
}
