package feedback

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/google/uuid"
)

// FeedbackResponse is a submitted feedback record
type FeedbackResponse struct {
	ID                uuid.UUID                  `json:"id"`
	SurveyID          uuid.UUID                  `json:"surveyId"`
	StudentID         uuid.UUID                  `json:"studentId"`
	StudentName       string                     `json:"studentName"`
	StudentRollNo     string                     `json:"studentRollNo"`
	StudentYear       *int                       `json:"studentYear,omitempty"`
	StudentDepartment string                     `json:"studentDepartment"`
	SelectedTeachers  []feedback.SelectedTeacher `json:"selectedTeachers"`
	Responses         []feedback.Response        `json:"responses"`
	SubmittedAt       time.Time                  `json:"submittedAt"`
	Validation        feedback.Validation        `json:"validation"`
}

// FeedbackList wraps a list of feedback with its size
type FeedbackList struct {
	Feedbacks []FeedbackResponse `json:"feedbacks"`
	Count     int                `json:"count"`
}

// ToFeedbackResponse converts a feedback record to its response
func ToFeedbackResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:                f.ID,
		SurveyID:          f.SurveyID,
		StudentID:         f.StudentID,
		StudentName:       f.StudentName,
		StudentRollNo:     f.StudentRollNo,
		StudentYear:       f.StudentYear,
		StudentDepartment: f.StudentDepartment,
		SelectedTeachers:  f.SelectedTeachers,
		Responses:         f.Responses,
		SubmittedAt:       f.SubmittedAt,
		Validation:        f.Validation,
	}
}

func toFeedbackList(items []feedback.Feedback) *FeedbackList {
	out := make([]FeedbackResponse, len(items))
	for i := range items {
		out[i] = ToFeedbackResponse(&items[i])
	}
	return &FeedbackList{Feedbacks: out, Count: len(out)}
}
