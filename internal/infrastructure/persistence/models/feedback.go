package models

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/google/uuid"
)

// FeedbackModel is the persistence model for a Feedback record.
// The unique index on (student_id, survey_id) is the only guard against
// concurrent double submission.
type FeedbackModel struct {
	BaseModel
	SurveyID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedbacks_student_survey,priority:2;index"`
	StudentID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedbacks_student_survey,priority:1"`
	StudentName          string    `gorm:"type:varchar(100);not null"`
	StudentRollNo        string    `gorm:"type:varchar(50);not null"`
	StudentYear          *int
	StudentDepartment    string    `gorm:"type:varchar(50);not null"`
	SelectedTeachersJSON string    `gorm:"column:selected_teachers;type:jsonb;not null"`
	ResponsesJSON        string    `gorm:"column:responses;type:jsonb;not null"`
	ValidationJSON       string    `gorm:"column:validation;type:jsonb;not null"`
	SubmittedAt          time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (FeedbackModel) TableName() string {
	return "feedbacks"
}

// FeedbackModelFromDomain converts a domain feedback record
func FeedbackModelFromDomain(f *feedback.Feedback) (*FeedbackModel, error) {
	teachers, err := encodeJSON("selected_teachers", f.SelectedTeachers)
	if err != nil {
		return nil, err
	}
	responses, err := encodeJSON("responses", f.Responses)
	if err != nil {
		return nil, err
	}
	validation, err := encodeJSON("validation", f.Validation)
	if err != nil {
		return nil, err
	}
	m := &FeedbackModel{
		SurveyID:             f.SurveyID,
		StudentID:            f.StudentID,
		StudentName:          f.StudentName,
		StudentRollNo:        f.StudentRollNo,
		StudentYear:          f.StudentYear,
		StudentDepartment:    f.StudentDepartment,
		SelectedTeachersJSON: teachers,
		ResponsesJSON:        responses,
		ValidationJSON:       validation,
		SubmittedAt:          f.SubmittedAt,
	}
	m.FromDomainBaseEntity(f.BaseEntity)
	return m, nil
}

// ToDomain converts the model back to a domain feedback record
func (m *FeedbackModel) ToDomain() (*feedback.Feedback, error) {
	f := &feedback.Feedback{
		BaseAggregateRoot: m.AggregateRoot(),
		SurveyID:          m.SurveyID,
		StudentID:         m.StudentID,
		StudentName:       m.StudentName,
		StudentRollNo:     m.StudentRollNo,
		StudentYear:       m.StudentYear,
		StudentDepartment: m.StudentDepartment,
		SelectedTeachers:  make([]feedback.SelectedTeacher, 0),
		Responses:         make([]feedback.Response, 0),
		SubmittedAt:       m.SubmittedAt,
	}
	if err := decodeJSON("selected_teachers", m.SelectedTeachersJSON, &f.SelectedTeachers); err != nil {
		return nil, err
	}
	if err := decodeJSON("responses", m.ResponsesJSON, &f.Responses); err != nil {
		return nil, err
	}
	if err := decodeJSON("validation", m.ValidationJSON, &f.Validation); err != nil {
		return nil, err
	}
	return f, nil
}
