package integration

import (
	"net/http"
	"strings"
	"testing"
	"time"

	feedbackapp "github.com/facultyfeedback/backend/internal/application/feedback"
	reportapp "github.com/facultyfeedback/backend/internal/application/report"
	surveyapp "github.com/facultyfeedback/backend/internal/application/survey"
	takingapp "github.com/facultyfeedback/backend/internal/application/surveytaking"
	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/facultyfeedback/backend/internal/domain/surveytaking"
	"github.com/facultyfeedback/backend/internal/interfaces/http/dto"
	"github.com/facultyfeedback/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// takeSurvey walks a session from entry to submission, rating every selected
// teacher with rating on every question
func takeSurvey(t *testing.T, ts *TestServer, token, surveyID, class string, rating int, pick func([]surveytaking.Candidate) []string) takingapp.SubmitResult {
	t.Helper()
	student := ts.As(token)

	view := testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"surveyId": surveyID}),
		http.StatusCreated)
	require.Equal(t, surveytaking.StateCollectingRespondentInfo, view.State)
	base := "/api/v1/sessions/" + view.ID.String()

	view = testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPut, base+"/respondent-info", map[string]any{
			"rollNo": view.Info.RollNo,
			"year":   2,
			"class":  class,
		}), http.StatusOK)
	require.Equal(t, surveytaking.StateSelectingRaters, view.State)

	view = testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPut, base+"/raters", map[string]any{"facultyIds": pick(view.Candidates)}),
		http.StatusOK)
	require.Equal(t, surveytaking.StateRatingQuestions, view.State)

	for {
		require.NotNil(t, view.Current)
		for _, teacher := range view.Selected {
			view = testutil.RequireData[takingapp.SessionView](t,
				student.Do(t, http.MethodPut, base+"/ratings", map[string]any{
					"questionId": view.Current.ID.String(),
					"facultyId":  teacher.ID.String(),
					"rating":     rating,
				}), http.StatusOK)
		}
		if view.IsLastQuestion {
			break
		}
		view = testutil.RequireData[takingapp.SessionView](t,
			student.Do(t, http.MethodPost, base+"/next", nil), http.StatusOK)
	}

	return testutil.RequireData[takingapp.SubmitResult](t,
		student.Do(t, http.MethodPost, base+"/submit", nil), http.StatusCreated)
}

func everyone(candidates []surveytaking.Candidate) []string {
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID.String()
	}
	return ids
}

func TestSurveyFlow_SubmitAndReport(t *testing.T) {
	ts := NewTestServer(t)
	admin := ts.BootstrapAdmin(t)

	cse := ts.CreateDepartment(t, admin, "CSE", "Dr. Rao", "Dr. Iyer")
	ts.CreateDepartment(t, admin, "ECE", "Dr. Menon")
	questions := ts.CreateQuestions(t, admin,
		"How clearly does the teacher explain concepts?",
		"How well does the teacher use class time?",
	)

	surveys := ts.CreateSurveys(t, admin, "ALL", questions)
	require.Len(t, surveys, 2)
	var cseSurvey surveyapp.SurveyResponse
	for _, s := range surveys {
		if s.Department == "CSE" {
			cseSurvey = s
		}
	}
	require.Len(t, cseSurvey.Faculties, 2)
	require.Len(t, cseSurvey.Questions, 2)

	student := ts.RegisterStudent(t, "ravi@college.edu", "CSE-001", "CSE", 2)

	t.Run("student dashboard lists the department survey", func(t *testing.T) {
		dash := testutil.RequireData[reportapp.StudentDashboardResponse](t,
			ts.As(student).Get(t, "/api/v1/dashboard/student"), http.StatusOK)
		assert.Equal(t, "CSE", dash.Department)
		assert.Equal(t, 1, dash.Available)
		assert.Equal(t, 1, dash.Pending)
	})

	result := takeSurvey(t, ts, student, cseSurvey.ID.String(), "CSE", 8, everyone)
	assert.Equal(t, cseSurvey.ID, result.SurveyID)
	assert.Equal(t, 4, result.Responses)

	t.Run("feedback is stored with every response", func(t *testing.T) {
		list := testutil.RequireData[feedbackapp.FeedbackList](t,
			ts.As(admin).Get(t, "/api/v1/feedbacks?surveyId="+cseSurvey.ID.String()), http.StatusOK)
		require.Equal(t, 1, list.Count)
		fb := list.Feedbacks[0]
		assert.Equal(t, "CSE", fb.StudentDepartment)
		assert.Equal(t, "CSE-001", fb.StudentRollNo)
		assert.Len(t, fb.SelectedTeachers, 2)
		for _, r := range fb.Responses {
			assert.Equal(t, 8, r.Rating)
		}

		mine := testutil.RequireData[feedbackapp.FeedbackList](t,
			ts.As(student).Get(t, "/api/v1/feedbacks/mine"), http.StatusOK)
		assert.Equal(t, 1, mine.Count)
	})

	t.Run("second attempt is rejected", func(t *testing.T) {
		w := ts.As(student).Do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"surveyId": cseSurvey.ID.String()})
		testutil.AssertErrorResponse(t, w, http.StatusConflict, dto.ErrCodeAlreadySubmitted)
	})

	t.Run("department year chart averages the ratings", func(t *testing.T) {
		chart := testutil.RequireData[reportapp.DepartmentYearChartResponse](t,
			ts.As(admin).Get(t, "/api/v1/reports/department-year?departments=CSE"), http.StatusOK)
		assert.Equal(t, []string{"CSE 2nd Year"}, chart.Chart.Labels)
		assert.Equal(t, []float64{8}, chart.Chart.Data)
		assert.InDelta(t, 8, chart.Summary.Avg, 0.001)
	})

	t.Run("faculty ratings cover every rated teacher", func(t *testing.T) {
		ratings := testutil.RequireData[[]reportapp.DepartmentFacultyRatings](t,
			ts.As(admin).Get(t, "/api/v1/reports/faculty-ratings"), http.StatusOK)
		var rows []reportapp.FacultyRatingRow
		for _, d := range ratings {
			if d.Department == "CSE" {
				rows = d.Faculty
			}
		}
		require.Len(t, rows, len(cse.Faculties))
		for _, row := range rows {
			assert.InDelta(t, 8, row.CombinedAvg, 0.001)
		}
	})

	t.Run("export produces a downloadable csv", func(t *testing.T) {
		export := testutil.RequireData[reportapp.ExportResult](t,
			ts.As(admin).Do(t, http.MethodPost, "/api/v1/reports/export", nil), http.StatusCreated)
		assert.Equal(t, 4, export.Rows)
		require.True(t, strings.HasPrefix(export.DownloadURL, "/api/v1/reports/files/"))

		w := ts.As(admin).Get(t, export.DownloadURL)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		body := w.Body.String()
		assert.Contains(t, body, "CSE-001")
		assert.Contains(t, body, "Dr. Rao")
	})

	t.Run("admin dashboard counts the response", func(t *testing.T) {
		dash := testutil.RequireData[reportapp.AdminDashboardResponse](t,
			ts.As(admin).Get(t, "/api/v1/dashboard/admin"), http.StatusOK)
		assert.Equal(t, 2, dash.Totals.Surveys)
		assert.Equal(t, 1, dash.Totals.Responses)
		assert.Equal(t, 2, dash.Totals.Departments)
	})

	t.Run("events are published for the whole flow", func(t *testing.T) {
		published := func(eventType string) func() bool {
			return func() bool { return ts.Events.Saw(eventType) }
		}
		testutil.RequireEventually(t, published(survey.EventTypeSurveyCreated), 2*time.Second, 20*time.Millisecond)
		testutil.RequireEventually(t, published(feedback.EventTypeFeedbackSubmitted), 2*time.Second, 20*time.Millisecond)
	})
}

func TestSurveyFlow_RosterChangeForcesRestart(t *testing.T) {
	ts := NewTestServer(t)
	admin := ts.BootstrapAdmin(t)

	dept := ts.CreateDepartment(t, admin, "MECH", "Dr. Kulkarni", "Dr. Shah")
	questions := ts.CreateQuestions(t, admin, "Is the teacher available after class?")
	sv := ts.CreateSurveys(t, admin, "MECH", questions)[0]
	token := ts.RegisterStudent(t, "anu@college.edu", "ME-007", "MECH", 1)
	student := ts.As(token)

	view := testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"surveyId": sv.ID.String()}),
		http.StatusCreated)
	base := "/api/v1/sessions/" + view.ID.String()

	view = testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPut, base+"/respondent-info", map[string]any{"rollNo": "ME-007", "year": 1, "class": "MECH"}),
		http.StatusOK)
	view = testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPut, base+"/raters", map[string]any{"facultyIds": everyone(view.Candidates)}),
		http.StatusOK)
	for _, teacher := range view.Selected {
		testutil.RequireData[takingapp.SessionView](t,
			student.Do(t, http.MethodPut, base+"/ratings", map[string]any{
				"questionId": view.Current.ID.String(),
				"facultyId":  teacher.ID.String(),
				"rating":     6,
			}), http.StatusOK)
	}

	// The teacher leaves the department before submission
	removed := dept.Faculties[0].ID.String()
	w := ts.As(admin).Do(t, http.MethodDelete,
		"/api/v1/departments/"+dept.ID.String()+"/faculties/"+removed+"?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = student.Do(t, http.MethodPost, base+"/submit", nil)
	testutil.AssertErrorResponse(t, w, http.StatusConflict, dto.ErrCodeIntegrity)
	env := testutil.DecodeEnvelope[any](t, w)
	assert.Equal(t, true, env.Error.Details["restart"])

	// The session was discarded
	testutil.AssertErrorResponse(t, student.Get(t, base), http.StatusNotFound, dto.ErrCodeNotFound)

	list := testutil.RequireData[feedbackapp.FeedbackList](t,
		ts.As(admin).Get(t, "/api/v1/feedbacks"), http.StatusOK)
	assert.Zero(t, list.Count)
}

func TestSurveyFlow_StepValidation(t *testing.T) {
	ts := NewTestServer(t)
	admin := ts.BootstrapAdmin(t)

	ts.CreateDepartment(t, admin, "CIVIL", "Dr. Nair")
	ts.CreateDepartment(t, admin, "EEE", "Dr. Bose")
	questions := ts.CreateQuestions(t, admin, "Does the teacher encourage questions?", "Are assignments returned on time?")
	sv := ts.CreateSurveys(t, admin, "CIVIL", questions)[0]
	token := ts.RegisterStudent(t, "kiran@college.edu", "CV-010", "CIVIL", 3)
	student := ts.As(token)

	view := testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"surveyId": sv.ID.String()}),
		http.StatusCreated)
	base := "/api/v1/sessions/" + view.ID.String()

	t.Run("class must match the student's department", func(t *testing.T) {
		w := student.Do(t, http.MethodPut, base+"/respondent-info", map[string]any{"rollNo": "CV-010", "year": 3, "class": "EEE"})
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidation)
	})

	view = testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPut, base+"/respondent-info", map[string]any{"rollNo": "CV-010", "year": 3, "class": "CIVIL"}),
		http.StatusOK)

	t.Run("at least one teacher must be selected", func(t *testing.T) {
		w := student.Do(t, http.MethodPut, base+"/raters", map[string]any{"facultyIds": []string{}})
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidation)
	})

	view = testutil.RequireData[takingapp.SessionView](t,
		student.Do(t, http.MethodPut, base+"/raters", map[string]any{"facultyIds": everyone(view.Candidates)}),
		http.StatusOK)

	t.Run("next needs every teacher rated", func(t *testing.T) {
		w := student.Do(t, http.MethodPost, base+"/next", nil)
		assert.GreaterOrEqual(t, w.Code, http.StatusBadRequest)
		assert.Less(t, w.Code, http.StatusInternalServerError)
	})

	t.Run("ratings outside the scale are rejected", func(t *testing.T) {
		w := student.Do(t, http.MethodPut, base+"/ratings", map[string]any{
			"questionId": view.Current.ID.String(),
			"facultyId":  view.Selected[0].ID.String(),
			"rating":     feedback.MaxRating + 1,
		})
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeValidation)
	})

	t.Run("back on the first question is refused", func(t *testing.T) {
		w := student.Do(t, http.MethodPost, base+"/back", nil)
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState)
	})

	t.Run("submit before the last question is refused", func(t *testing.T) {
		w := student.Do(t, http.MethodPost, base+"/submit", nil)
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState)
	})

	t.Run("abandon discards the session", func(t *testing.T) {
		w := student.Do(t, http.MethodDelete, base, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		testutil.AssertErrorResponse(t, student.Get(t, base), http.StatusNotFound, dto.ErrCodeNotFound)
	})

	t.Run("another student's session is refused", func(t *testing.T) {
		other := ts.RegisterStudent(t, "meera@college.edu", "CV-011", "CIVIL", 3)
		view := testutil.RequireData[takingapp.SessionView](t,
			student.Do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"surveyId": sv.ID.String()}),
			http.StatusCreated)
		w := ts.As(other).Get(t, "/api/v1/sessions/"+view.ID.String())
		testutil.AssertErrorResponse(t, w, http.StatusForbidden, dto.ErrCodeForbidden)
	})
}

func TestSurveyFlow_ClosedAndDeletedSurveys(t *testing.T) {
	ts := NewTestServer(t)
	admin := ts.BootstrapAdmin(t)

	ts.CreateDepartment(t, admin, "IT", "Dr. Das")
	questions := ts.CreateQuestions(t, admin, "Is the course material up to date?")
	sv := ts.CreateSurveys(t, admin, "IT", questions)[0]
	token := ts.RegisterStudent(t, "sam@college.edu", "IT-100", "IT", 1)
	path := "/api/v1/surveys/" + sv.ID.String()

	t.Run("closed survey cannot be started", func(t *testing.T) {
		closed := testutil.RequireData[surveyapp.SurveyResponse](t,
			ts.As(admin).Do(t, http.MethodPatch, path+"/status", map[string]any{"isActive": false}), http.StatusOK)
		assert.False(t, closed.IsActive)

		w := ts.As(token).Do(t, http.MethodPost, "/api/v1/sessions", map[string]string{"surveyId": sv.ID.String()})
		testutil.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState)
	})

	t.Run("delete asks for confirmation first", func(t *testing.T) {
		outcome := testutil.RequireData[shared.DeleteOutcome](t, ts.As(admin).Do(t, http.MethodDelete, path, nil), http.StatusOK)
		assert.True(t, outcome.RequiresConfirmation)
		assert.False(t, outcome.Deleted)
		testutil.RequireData[surveyapp.SurveyResponse](t, ts.As(admin).Get(t, path), http.StatusOK)

		outcome = testutil.RequireData[shared.DeleteOutcome](t, ts.As(admin).Do(t, http.MethodDelete, path+"?confirm=true", nil), http.StatusOK)
		assert.True(t, outcome.Deleted)
		testutil.AssertErrorResponse(t, ts.As(admin).Get(t, path), http.StatusNotFound, dto.ErrCodeNotFound)
	})
}
