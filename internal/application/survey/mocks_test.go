package survey

import (
	"context"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/question"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) FindAll(ctx context.Context) ([]survey.Survey, error) {
	args := m.Called(ctx)
	return args.Get(0).([]survey.Survey), args.Error(1)
}

func (m *MockSurveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*survey.Survey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*survey.Survey), args.Error(1)
}

func (m *MockSurveyRepository) FindByDepartment(ctx context.Context, name string) ([]survey.Survey, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]survey.Survey), args.Error(1)
}

func (m *MockSurveyRepository) Save(ctx context.Context, s *survey.Survey) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSurveyRepository) SaveAll(ctx context.Context, surveys []*survey.Survey) error {
	return m.Called(ctx, surveys).Error(0)
}

func (m *MockSurveyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSurveyRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context) ([]organization.Department, error) {
	args := m.Called(ctx)
	return args.Get(0).([]organization.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByName(ctx context.Context, name string) (*organization.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Save(ctx context.Context, dept *organization.Department) error {
	return m.Called(ctx, dept).Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDepartmentRepository) AddFaculty(ctx context.Context, departmentID uuid.UUID, faculty *organization.Faculty) error {
	return m.Called(ctx, departmentID, faculty).Error(0)
}

func (m *MockDepartmentRepository) RemoveFaculty(ctx context.Context, departmentID, facultyID uuid.UUID) error {
	return m.Called(ctx, departmentID, facultyID).Error(0)
}

func (m *MockDepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) FindAll(ctx context.Context) ([]question.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]question.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*question.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*question.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]question.Question, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]question.Question), args.Error(1)
}

func (m *MockQuestionRepository) Save(ctx context.Context, q *question.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockQuestionRepository) ExistsByText(ctx context.Context, text string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, text, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) FindAll(ctx context.Context) ([]feedback.Feedback, error) {
	args := m.Called(ctx)
	return args.Get(0).([]feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindBySurveyID(ctx context.Context, surveyID uuid.UUID) ([]feedback.Feedback, error) {
	args := m.Called(ctx, surveyID)
	return args.Get(0).([]feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]feedback.Feedback, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) HasSubmitted(ctx context.Context, studentID, surveyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, studentID, surveyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) CountBySurvey(ctx context.Context) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockFeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	return m.Called(ctx, f).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}
