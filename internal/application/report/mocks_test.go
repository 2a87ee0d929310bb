package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/identity"
	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) FindAll(ctx context.Context) ([]survey.Survey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) FindAll(ctx context.Context) ([]feedback.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindBySurveyID(ctx context.Context, surveyID uuid.UUID) ([]feedback.Feedback, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByStudentID(ctx context.Context, studentID uuid.UUID) ([]feedback.Feedback, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feedback.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) HasSubmitted(ctx context.Context, studentID, surveyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, studentID, surveyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) CountBySurvey(ctx context.Context) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockFeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	return m.Called(ctx, f).Error(0)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context) ([]organization.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

// memoryStorage keeps uploads in memory
type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *memoryStorage) Upload(_ context.Context, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	s.types[key] = contentType
	return nil
}

func (s *memoryStorage) GenerateDownloadURL(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return "", time.Time{}, fmt.Errorf("object %s not found", key)
	}
	return "memory://" + key, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(expiresIn), nil
}
