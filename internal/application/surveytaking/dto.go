package surveytaking

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/surveytaking"
	"github.com/google/uuid"
)

// BeginRequest starts a session for a survey
type BeginRequest struct {
	SurveyID string `json:"surveyId" binding:"required"`
}

// RespondentInfoRequest is step one of the flow
type RespondentInfoRequest struct {
	RollNo string `json:"rollNo"`
	Year   *int   `json:"year"`
	Class  string `json:"class"`
}

// SelectRatersRequest is step two of the flow
type SelectRatersRequest struct {
	FacultyIDs []string `json:"facultyIds"`
}

// RateRequest rates one selected faculty member on the current question
type RateRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	FacultyID  string `json:"facultyId" binding:"required"`
	Rating     int    `json:"rating"`
}

// QuestionView is the question being rated with the ratings given so far
type QuestionView struct {
	ID            uuid.UUID         `json:"id"`
	Text          string            `json:"text"`
	AllowComments bool              `json:"allowComments"`
	Number        int               `json:"number"`
	Ratings       map[uuid.UUID]int `json:"ratings"`
	Unrated       []string          `json:"unrated"`
}

// SessionView is what the respondent sees of an in-flight session
type SessionView struct {
	ID             uuid.UUID                   `json:"id"`
	State          surveytaking.State          `json:"state"`
	SurveyID       uuid.UUID                   `json:"surveyId"`
	Department     string                      `json:"department"`
	Respondent     surveytaking.Respondent     `json:"respondent"`
	Info           surveytaking.RespondentInfo `json:"info"`
	Candidates     []surveytaking.Candidate    `json:"candidates"`
	Selected       []surveytaking.Candidate    `json:"selected"`
	QuestionIndex  int                         `json:"questionIndex"`
	TotalQuestions int                         `json:"totalQuestions"`
	Progress       int                         `json:"progress"`
	IsLastQuestion bool                        `json:"isLastQuestion"`
	Current        *QuestionView               `json:"currentQuestion,omitempty"`
	FeedbackID     *uuid.UUID                  `json:"feedbackId,omitempty"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

// SubmitResult reports the persisted feedback record
type SubmitResult struct {
	FeedbackID  uuid.UUID `json:"feedbackId"`
	SurveyID    uuid.UUID `json:"surveyId"`
	Responses   int       `json:"responses"`
	SubmittedAt time.Time `json:"submittedAt"`
	Message     string    `json:"message"`
}

// ToSessionView converts a session to its view
func ToSessionView(s *surveytaking.Session) SessionView {
	view := SessionView{
		ID:             s.ID,
		State:          s.State,
		SurveyID:       s.SurveyID,
		Department:     s.Department,
		Respondent:     s.Respondent,
		Info:           s.Info,
		Candidates:     nonNil(s.Candidates),
		Selected:       nonNil(s.Selected),
		QuestionIndex:  s.QuestionIndex,
		TotalQuestions: len(s.Questions),
		UpdatedAt:      s.UpdatedAt,
	}

	switch s.State {
	case surveytaking.StateRatingQuestions:
		view.IsLastQuestion = s.IsLastQuestion()
		view.Progress = progress(s.QuestionIndex, len(s.Questions))
		if q, ok := s.CurrentQuestion(); ok {
			ratings := make(map[uuid.UUID]int, len(s.Selected))
			for id, r := range s.Ratings[q.ID] {
				ratings[id] = r
			}
			view.Current = &QuestionView{
				ID:            q.ID,
				Text:          q.Text,
				AllowComments: q.AllowComments,
				Number:        s.QuestionIndex + 1,
				Ratings:       ratings,
				Unrated:       s.Unrated(s.QuestionIndex),
			}
		}
	case surveytaking.StateSubmitted:
		view.Progress = 100
		id := s.FeedbackID
		view.FeedbackID = &id
	}
	return view
}

// progress is the share of questions reached, counting the current one
func progress(index, total int) int {
	if total == 0 {
		return 0
	}
	return (index + 1) * 100 / total
}

func nonNil(c []surveytaking.Candidate) []surveytaking.Candidate {
	if c == nil {
		return []surveytaking.Candidate{}
	}
	return c
}
