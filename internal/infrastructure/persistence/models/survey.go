package models

import (
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/google/uuid"
)

// SurveyModel is the persistence model for the Survey aggregate.
// Snapshots are stored as JSON so later catalog edits never reach them.
type SurveyModel struct {
	BaseModel
	Department    string    `gorm:"type:varchar(50);not null;index"`
	FacultiesJSON string    `gorm:"column:faculties;type:jsonb;not null"`
	QuestionsJSON string    `gorm:"column:questions;type:jsonb;not null"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null"`
	IsActive      bool      `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SurveyModel) TableName() string {
	return "surveys"
}

// SurveyModelFromDomain converts a domain survey
func SurveyModelFromDomain(s *survey.Survey) (*SurveyModel, error) {
	faculties, err := encodeJSON("faculties", s.Faculties)
	if err != nil {
		return nil, err
	}
	questions, err := encodeJSON("questions", s.Questions)
	if err != nil {
		return nil, err
	}
	m := &SurveyModel{
		Department:    s.Department,
		FacultiesJSON: faculties,
		QuestionsJSON: questions,
		CreatedBy:     s.CreatedBy,
		IsActive:      s.IsActive,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m, nil
}

// ToDomain converts the model back to a domain survey
func (m *SurveyModel) ToDomain() (*survey.Survey, error) {
	s := &survey.Survey{
		BaseAggregateRoot: m.AggregateRoot(),
		Department:        m.Department,
		Faculties:         make([]survey.FacultySnapshot, 0),
		Questions:         make([]survey.QuestionSnapshot, 0),
		CreatedBy:         m.CreatedBy,
		IsActive:          m.IsActive,
	}
	if err := decodeJSON("faculties", m.FacultiesJSON, &s.Faculties); err != nil {
		return nil, err
	}
	if err := decodeJSON("questions", m.QuestionsJSON, &s.Questions); err != nil {
		return nil, err
	}
	return s, nil
}
