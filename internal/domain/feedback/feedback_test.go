package feedback

import (
	"testing"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRespondent() Respondent {
	year := 2
	return Respondent{ID: uuid.New(), Name: "Sam", RollNo: "21CS001", Year: &year, Department: "CSE"}
}

func TestNewFeedback(t *testing.T) {
	surveyID := uuid.New()
	alice := SelectedTeacher{ID: uuid.New(), Name: "Alice", Subject: "Algorithms"}
	q := uuid.New()

	t.Run("creates feedback", func(t *testing.T) {
		responses := []Response{{QuestionID: q, TeacherID: alice.ID, TeacherName: "Alice", Rating: 10}}
		f, err := NewFeedback(surveyID, testRespondent(), []SelectedTeacher{alice}, responses, Validation{Validated: true})
		require.NoError(t, err)

		assert.Equal(t, surveyID, f.SurveyID)
		assert.Equal(t, "21CS001", f.StudentRollNo)
		assert.Equal(t, 2, *f.StudentYear)
		assert.Equal(t, f.CreatedAt, f.SubmittedAt)
		assert.Equal(t, []int{10}, f.Ratings())
		require.Len(t, f.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeFeedbackSubmitted, f.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects unrated sentinel", func(t *testing.T) {
		responses := []Response{{QuestionID: q, TeacherID: alice.ID, TeacherName: "Alice", Rating: Unrated}}
		_, err := NewFeedback(surveyID, testRespondent(), []SelectedTeacher{alice}, responses, Validation{})
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("rejects rating above ten", func(t *testing.T) {
		responses := []Response{{QuestionID: q, TeacherID: alice.ID, TeacherName: "Alice", Rating: 11}}
		_, err := NewFeedback(surveyID, testRespondent(), []SelectedTeacher{alice}, responses, Validation{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 10")
	})

	t.Run("rejects missing roll number", func(t *testing.T) {
		r := testRespondent()
		r.RollNo = " "
		responses := []Response{{QuestionID: q, TeacherID: alice.ID, Rating: 5}}
		_, err := NewFeedback(surveyID, r, []SelectedTeacher{alice}, responses, Validation{})
		require.Error(t, err)
	})

	t.Run("rejects empty responses", func(t *testing.T) {
		_, err := NewFeedback(surveyID, testRespondent(), []SelectedTeacher{alice}, nil, Validation{})
		require.Error(t, err)
	})
}

func TestFeedback_RatedTeacherIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	f := &Feedback{Responses: []Response{
		{TeacherID: a, Rating: 1},
		{TeacherID: b, Rating: 2},
		{TeacherID: a, Rating: 3},
	}}
	assert.Equal(t, []uuid.UUID{a, b}, f.RatedTeacherIDs())
}

func TestValidRating(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		assert.True(t, ValidRating(r))
	}
	assert.False(t, ValidRating(0))
	assert.False(t, ValidRating(-1))
	assert.False(t, ValidRating(11))
}
