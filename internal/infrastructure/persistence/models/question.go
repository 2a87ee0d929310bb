package models

import "github.com/facultyfeedback/backend/internal/domain/question"

// QuestionModel is the persistence model for the Question aggregate
type QuestionModel struct {
	BaseModel
	Text          string `gorm:"type:varchar(500);not null"`
	AllowComments bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (QuestionModel) TableName() string {
	return "questions"
}

// QuestionModelFromDomain converts a domain question
func QuestionModelFromDomain(q *question.Question) *QuestionModel {
	m := &QuestionModel{
		Text:          q.Text,
		AllowComments: q.AllowComments,
	}
	m.FromDomainBaseEntity(q.BaseEntity)
	return m
}

// ToDomain converts the model back to a domain question
func (m *QuestionModel) ToDomain() *question.Question {
	return &question.Question{
		BaseAggregateRoot: m.AggregateRoot(),
		Text:              m.Text,
		AllowComments:     m.AllowComments,
	}
}
