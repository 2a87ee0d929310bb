package surveytaking

import (
	"testing"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flowFixture struct {
	dept       *organization.Department
	survey     *survey.Survey
	respondent Respondent
}

func newFlowFixture(t *testing.T, questions int) flowFixture {
	t.Helper()
	dept, err := organization.NewDepartment("CSE", "")
	require.NoError(t, err)
	_, err = dept.AddFaculty("Alice", "Algorithms")
	require.NoError(t, err)
	_, err = dept.AddFaculty("Bob", "Networks")
	require.NoError(t, err)

	faculties := make([]survey.FacultySnapshot, 0)
	for _, f := range dept.Faculties {
		faculties = append(faculties, survey.FacultySnapshot{ID: f.ID, Name: f.Name})
	}
	qs := make([]survey.QuestionSnapshot, questions)
	for i := range qs {
		qs[i] = survey.QuestionSnapshot{ID: uuid.New(), Text: "Question?", AllowComments: true}
	}
	s, err := survey.NewSurvey("CSE", faculties, qs, uuid.New())
	require.NoError(t, err)

	year := 2
	return flowFixture{
		dept:   dept,
		survey: s,
		respondent: Respondent{
			ID: uuid.New(), Name: "Sam", RollNo: "21CS001", Year: &year, Department: "cse",
		},
	}
}

func (fx flowFixture) roster() []Candidate {
	out := make([]Candidate, 0)
	for _, f := range fx.dept.Faculties {
		out = append(out, Candidate{ID: f.ID, Name: f.Name, Subject: f.Subject})
	}
	return out
}

func (fx flowFixture) facultyIDs() []uuid.UUID {
	return fx.dept.FacultyIDs()
}

// ratedToEnd drives a session to the last question with every rating filled
func ratedToEnd(t *testing.T, fx flowFixture) *Session {
	t.Helper()
	s, err := Begin(fx.survey, fx.respondent, false)
	require.NoError(t, err)
	require.NoError(t, s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Class: "CSE"}, fx.roster()))
	require.NoError(t, s.SelectRaters(fx.facultyIDs()))
	for i, q := range s.Questions {
		for j, id := range fx.facultyIDs() {
			require.NoError(t, s.Rate(q.ID, id, 1+(i+j)%10))
		}
		if i < len(s.Questions)-1 {
			require.NoError(t, s.Next())
		}
	}
	return s
}

func TestBegin(t *testing.T) {
	fx := newFlowFixture(t, 2)

	t.Run("opens session in first state", func(t *testing.T) {
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		assert.Equal(t, StateCollectingRespondentInfo, s.State)
		assert.Equal(t, "21CS001", s.Info.RollNo)
		assert.Len(t, s.Questions, 2)
	})

	t.Run("rejects missing survey", func(t *testing.T) {
		_, err := Begin(nil, fx.respondent, false)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("rejects other department", func(t *testing.T) {
		r := fx.respondent
		r.Department = "ECE"
		_, err := Begin(fx.survey, r, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available for your department")
	})

	t.Run("rejects second submission at entry", func(t *testing.T) {
		_, err := Begin(fx.survey, fx.respondent, true)
		assert.ErrorIs(t, err, shared.ErrAlreadySubmitted)
	})

	t.Run("rejects closed survey", func(t *testing.T) {
		closed := newFlowFixture(t, 1)
		closed.survey.SetActive(false)
		_, err := Begin(closed.survey, closed.respondent, false)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestSubmitRespondentInfo(t *testing.T) {
	fx := newFlowFixture(t, 1)

	t.Run("requires roll number and class", func(t *testing.T) {
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		err = s.SubmitRespondentInfo(RespondentInfo{RollNo: " ", Class: ""}, fx.roster())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Roll number is missing")
		assert.Contains(t, err.Error(), "select your class")
		assert.Equal(t, StateCollectingRespondentInfo, s.State)
	})

	t.Run("rejects empty roster", func(t *testing.T) {
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		err = s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Class: "CSE"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No teachers available for CSE")
	})

	t.Run("rejects class outside the respondent department", func(t *testing.T) {
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		err = s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Class: "ECE"}, fx.roster())
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		assert.Contains(t, err.Error(), "does not match your department")
		assert.Equal(t, StateCollectingRespondentInfo, s.State)
	})

	t.Run("matches class case-insensitively", func(t *testing.T) {
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		require.NoError(t, s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Class: "cse"}, fx.roster()))
		assert.Equal(t, StateSelectingRaters, s.State)
	})

	t.Run("rejects year outside one to three", func(t *testing.T) {
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		year := 5
		err = s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Year: &year, Class: "CSE"}, fx.roster())
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("loads candidates and advances", func(t *testing.T) {
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		require.NoError(t, s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Class: "CSE"}, fx.roster()))
		assert.Equal(t, StateSelectingRaters, s.State)
		assert.Len(t, s.Candidates, 2)
	})
}

func TestSelectRaters(t *testing.T) {
	fx := newFlowFixture(t, 2)
	s, err := Begin(fx.survey, fx.respondent, false)
	require.NoError(t, err)

	err = s.SelectRaters(fx.facultyIDs())
	assert.ErrorIs(t, err, shared.ErrInvalidState, "raters cannot be chosen before respondent info")

	require.NoError(t, s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Class: "CSE"}, fx.roster()))

	err = s.SelectRaters(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one teacher")

	err = s.SelectRaters([]uuid.UUID{uuid.New()})
	require.Error(t, err)

	ids := fx.facultyIDs()
	require.NoError(t, s.SelectRaters([]uuid.UUID{ids[1], ids[0], ids[1]}))
	assert.Equal(t, StateRatingQuestions, s.State)
	assert.Equal(t, 0, s.QuestionIndex)
	require.Len(t, s.Selected, 2)
	assert.Equal(t, "Bob", s.Selected[0].Name)
	for _, q := range s.Questions {
		for _, id := range ids {
			assert.Equal(t, feedback.Unrated, s.Ratings[q.ID][id])
		}
	}
}

func TestRatingNavigation(t *testing.T) {
	fx := newFlowFixture(t, 3)
	s, err := Begin(fx.survey, fx.respondent, false)
	require.NoError(t, err)
	require.NoError(t, s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Class: "CSE"}, fx.roster()))
	ids := fx.facultyIDs()
	require.NoError(t, s.SelectRaters(ids))

	q0 := s.Questions[0]

	t.Run("rejects out of range rating", func(t *testing.T) {
		assert.Error(t, s.Rate(q0.ID, ids[0], 0))
		assert.Error(t, s.Rate(q0.ID, ids[0], 11))
	})

	t.Run("rejects rating a later question", func(t *testing.T) {
		assert.Error(t, s.Rate(s.Questions[1].ID, ids[0], 5))
	})

	t.Run("rejects unselected faculty", func(t *testing.T) {
		assert.Error(t, s.Rate(q0.ID, uuid.New(), 5))
	})

	t.Run("back is rejected on the first question", func(t *testing.T) {
		assert.ErrorIs(t, s.Back(), shared.ErrInvalidState)
	})

	t.Run("next blocks with unrated names", func(t *testing.T) {
		require.NoError(t, s.Rate(q0.ID, ids[0], 7))
		err := s.Next()
		require.Error(t, err)
		assert.Equal(t, "Unrated: Bob", err.Error())
		assert.Equal(t, 0, s.QuestionIndex)
	})

	t.Run("next advances once complete", func(t *testing.T) {
		require.NoError(t, s.Rate(q0.ID, ids[1], 9))
		require.NoError(t, s.Next())
		assert.Equal(t, 1, s.QuestionIndex)
	})

	t.Run("back needs no validation", func(t *testing.T) {
		require.NoError(t, s.Back())
		assert.Equal(t, 0, s.QuestionIndex)
		require.NoError(t, s.Next())
	})

	t.Run("submit is only allowed on the last question", func(t *testing.T) {
		_, err := s.Submit(Live{Survey: fx.survey, Department: fx.dept})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestSubmit(t *testing.T) {
	t.Run("flattens ratings into a feedback record", func(t *testing.T) {
		fx := newFlowFixture(t, 2)
		s := ratedToEnd(t, fx)

		f, err := s.Submit(Live{Survey: fx.survey, Department: fx.dept})
		require.NoError(t, err)

		require.Len(t, f.Responses, 4)
		assert.Equal(t, s.Questions[0].ID, f.Responses[0].QuestionID)
		assert.Equal(t, "Alice", f.Responses[0].TeacherName)
		assert.Equal(t, "Bob", f.Responses[1].TeacherName)
		assert.Equal(t, s.Questions[1].ID, f.Responses[2].QuestionID)
		for _, r := range f.Responses {
			assert.True(t, feedback.ValidRating(r.Rating))
		}
		assert.Equal(t, feedback.Validation{Validated: true, SurveyExists: true, DepartmentExists: true, FacultiesExist: true}, f.Validation)
		assert.Equal(t, "Algorithms", f.SelectedTeachers[0].Subject)
		assert.Equal(t, 2, *f.StudentYear)
		assert.Equal(t, "21CS001", f.StudentRollNo)

		s.MarkSubmitted(f.ID)
		assert.Equal(t, StateSubmitted, s.State)
		assert.ErrorIs(t, s.Back(), shared.ErrInvalidState)
		_, err = s.Submit(Live{Survey: fx.survey, Department: fx.dept})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("year from step one overrides profile year", func(t *testing.T) {
		fx := newFlowFixture(t, 1)
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		year := 3
		require.NoError(t, s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Year: &year, Class: "CSE"}, fx.roster()))
		require.NoError(t, s.SelectRaters(fx.facultyIDs()[:1]))
		require.NoError(t, s.Rate(s.Questions[0].ID, fx.facultyIDs()[0], 6))

		f, err := s.Submit(Live{Survey: fx.survey, Department: fx.dept})
		require.NoError(t, err)
		assert.Equal(t, 3, *f.StudentYear)
	})

	t.Run("blocks when last question incomplete", func(t *testing.T) {
		fx := newFlowFixture(t, 1)
		s, err := Begin(fx.survey, fx.respondent, false)
		require.NoError(t, err)
		require.NoError(t, s.SubmitRespondentInfo(RespondentInfo{RollNo: "21CS001", Class: "CSE"}, fx.roster()))
		require.NoError(t, s.SelectRaters(fx.facultyIDs()))
		require.NoError(t, s.Rate(s.Questions[0].ID, fx.facultyIDs()[1], 6))

		_, err = s.Submit(Live{Survey: fx.survey, Department: fx.dept})
		require.Error(t, err)
		assert.Equal(t, "Unrated: Alice", err.Error())
	})

	t.Run("rejects when a faculty member was deleted", func(t *testing.T) {
		fx := newFlowFixture(t, 3)
		s := ratedToEnd(t, fx)

		require.NoError(t, fx.dept.RemoveFaculty(fx.facultyIDs()[0]))

		f, err := s.Submit(Live{Survey: fx.survey, Department: fx.dept})
		assert.Nil(t, f)
		require.Error(t, err)
		assert.True(t, shared.IsIntegrityError(err))
		assert.Contains(t, err.Error(), "Alice")
		assert.Equal(t, StateRatingQuestions, s.State)
	})

	t.Run("rejects when survey deleted", func(t *testing.T) {
		fx := newFlowFixture(t, 1)
		s := ratedToEnd(t, fx)
		_, err := s.Submit(Live{Survey: nil, Department: fx.dept})
		assert.True(t, shared.IsIntegrityError(err))
	})

	t.Run("rejects when department deleted", func(t *testing.T) {
		fx := newFlowFixture(t, 1)
		s := ratedToEnd(t, fx)
		_, err := s.Submit(Live{Survey: fx.survey, Department: nil})
		assert.True(t, shared.IsIntegrityError(err))
	})

	t.Run("rejects when survey questions no longer match", func(t *testing.T) {
		fx := newFlowFixture(t, 1)
		s := ratedToEnd(t, fx)
		replaced := *fx.survey
		replaced.Questions = []survey.QuestionSnapshot{{ID: uuid.New(), Text: "Other?"}}
		_, err := s.Submit(Live{Survey: &replaced, Department: fx.dept})
		assert.True(t, shared.IsIntegrityError(err))
	})
}
