// Package surveytaking holds the state of one respondent working through a
// survey: respondent info, rater selection, per-question ratings, submission.
//
// The session is an explicit value owned by the controller that loads and
// stores it. It never reads storage itself; callers hand it the live roster
// and the live survey/department at the points where those are needed.
package surveytaking

import (
	"fmt"
	"strings"
	"time"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/google/uuid"
)

// State is the position of a session in the survey-taking flow
type State string

const (
	StateCollectingRespondentInfo State = "collecting_respondent_info"
	StateSelectingRaters          State = "selecting_raters"
	StateRatingQuestions          State = "rating_questions"
	StateSubmitted                State = "submitted"
)

// Candidate is a faculty member on the live roster of the selected class
type Candidate struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
}

// RespondentInfo is what the respondent enters in the first step
type RespondentInfo struct {
	RollNo string `json:"rollNo"`
	Year   *int   `json:"year,omitempty"`
	Class  string `json:"class"`
}

// Respondent is the student taking the survey, as known at entry
type Respondent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	RollNo     string    `json:"rollNo"`
	Year       *int      `json:"year,omitempty"`
	Department string    `json:"department"`
}

// Session is one respondent's in-flight pass through a survey.
// Ratings maps question id to faculty id to a rating, 0 meaning unrated.
type Session struct {
	ID            uuid.UUID                       `json:"id"`
	State         State                           `json:"state"`
	SurveyID      uuid.UUID                       `json:"surveyId"`
	Department    string                          `json:"department"`
	Questions     []survey.QuestionSnapshot       `json:"questions"`
	Respondent    Respondent                      `json:"respondent"`
	Info          RespondentInfo                  `json:"info"`
	Candidates    []Candidate                     `json:"candidates"`
	Selected      []Candidate                     `json:"selected"`
	Ratings       map[uuid.UUID]map[uuid.UUID]int `json:"ratings"`
	QuestionIndex int                             `json:"questionIndex"`
	FeedbackID    uuid.UUID                       `json:"feedbackId,omitempty"`
	CreatedAt     time.Time                       `json:"createdAt"`
	UpdatedAt     time.Time                       `json:"updatedAt"`
}

// Begin runs the entry guard and opens a session in CollectingRespondentInfo.
// The survey must target the respondent's department (ignoring case) and the
// respondent must not have answered it already.
func Begin(s *survey.Survey, respondent Respondent, alreadySubmitted bool) (*Session, error) {
	if s == nil {
		return nil, shared.NewNotFoundError("Survey")
	}
	if !s.IsActive {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "This survey is closed")
	}
	if !s.TargetsDepartment(respondent.Department) {
		return nil, shared.NewValidationError("This survey is not available for your department")
	}
	if alreadySubmitted {
		return nil, shared.ErrAlreadySubmitted
	}

	snap := s.Snapshot()
	now := time.Now()
	return &Session{
		ID:         uuid.New(),
		State:      StateCollectingRespondentInfo,
		SurveyID:   snap.ID,
		Department: snap.Department,
		Questions:  snap.Questions,
		Respondent: respondent,
		Info:       RespondentInfo{RollNo: respondent.RollNo},
		Ratings:    make(map[uuid.UUID]map[uuid.UUID]int),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// CheckRespondentInfo validates step one without changing the session.
// The selected class must be the respondent's own department.
func (s *Session) CheckRespondentInfo(info RespondentInfo) error {
	if err := s.requireState(StateCollectingRespondentInfo); err != nil {
		return err
	}
	problems := make([]string, 0, 2)
	if strings.TrimSpace(info.RollNo) == "" {
		problems = append(problems, "Roll number is missing")
	}
	if strings.TrimSpace(info.Class) == "" {
		problems = append(problems, "Please select your class/department")
	}
	if len(problems) > 0 {
		return shared.NewValidationError(strings.Join(problems, "; "))
	}
	if info.Year != nil && (*info.Year < 1 || *info.Year > 3) {
		return shared.NewDomainError("INVALID_YEAR", "Year must be 1, 2 or 3")
	}
	if !shared.FoldEqual(info.Class, s.Respondent.Department) {
		return shared.NewValidationError("Selected class does not match your department")
	}
	return nil
}

// SubmitRespondentInfo moves to SelectingRaters with roster as the candidate
// list. roster must be the live roster of info.Class, not the survey snapshot.
func (s *Session) SubmitRespondentInfo(info RespondentInfo, roster []Candidate) error {
	if err := s.CheckRespondentInfo(info); err != nil {
		return err
	}
	if len(roster) == 0 {
		return shared.NewValidationError("No teachers available for " + strings.TrimSpace(info.Class) + " department")
	}

	info.RollNo = strings.TrimSpace(info.RollNo)
	info.Class = strings.TrimSpace(info.Class)
	s.Info = info
	s.Candidates = append([]Candidate(nil), roster...)
	s.State = StateSelectingRaters
	s.touch()
	return nil
}

// SelectRaters moves to RatingQuestions(0) and resets every rating to unrated.
// Ids must come from the candidate list; duplicates collapse.
func (s *Session) SelectRaters(facultyIDs []uuid.UUID) error {
	if err := s.requireState(StateSelectingRaters); err != nil {
		return err
	}
	if len(facultyIDs) == 0 {
		return shared.NewValidationError("Please select at least one teacher to provide feedback")
	}

	selected := make([]Candidate, 0, len(facultyIDs))
	seen := make(map[uuid.UUID]struct{}, len(facultyIDs))
	for _, id := range facultyIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		c, ok := s.candidate(id)
		if !ok {
			return shared.NewValidationError("Selected teacher is not available for " + s.Info.Class + " department")
		}
		seen[id] = struct{}{}
		selected = append(selected, c)
	}

	ratings := make(map[uuid.UUID]map[uuid.UUID]int, len(s.Questions))
	for _, q := range s.Questions {
		row := make(map[uuid.UUID]int, len(selected))
		for _, c := range selected {
			row[c.ID] = feedback.Unrated
		}
		ratings[q.ID] = row
	}

	s.Selected = selected
	s.Ratings = ratings
	s.QuestionIndex = 0
	s.State = StateRatingQuestions
	s.touch()
	return nil
}

// Rate records a rating for a selected faculty member on the current question
func (s *Session) Rate(questionID, facultyID uuid.UUID, rating int) error {
	if err := s.requireState(StateRatingQuestions); err != nil {
		return err
	}
	current := s.Questions[s.QuestionIndex]
	if questionID != current.ID {
		return shared.NewValidationError("Only the current question can be rated")
	}
	row := s.Ratings[questionID]
	if _, ok := row[facultyID]; !ok {
		return shared.NewValidationError("Teacher was not selected for this survey")
	}
	if !feedback.ValidRating(rating) {
		return shared.NewDomainError("INVALID_RATING",
			fmt.Sprintf("Rating must be between %d and %d", feedback.MinRating, feedback.MaxRating))
	}

	row[facultyID] = rating
	s.touch()
	return nil
}

// Next advances to the following question once every selected faculty
// member has a rating for the current one
func (s *Session) Next() error {
	if err := s.requireState(StateRatingQuestions); err != nil {
		return err
	}
	if s.IsLastQuestion() {
		return shared.NewDomainError(shared.CodeInvalidState, "This is the last question, submit the survey instead")
	}
	if err := s.checkQuestionComplete(s.QuestionIndex); err != nil {
		return err
	}
	s.QuestionIndex++
	s.touch()
	return nil
}

// Back returns to the previous question without validation
func (s *Session) Back() error {
	if err := s.requireState(StateRatingQuestions); err != nil {
		return err
	}
	if s.QuestionIndex == 0 {
		return shared.NewDomainError(shared.CodeInvalidState, "Already at the first question")
	}
	s.QuestionIndex--
	s.touch()
	return nil
}

// Live is the current state of the entities a submission references.
// A nil field means the entity no longer exists.
type Live struct {
	Survey     *survey.Survey
	Department *organization.Department
}

// Submit checks completeness, re-validates against live, and returns the
// feedback record to persist. The session is Submitted only after the caller
// confirms the write with MarkSubmitted.
func (s *Session) Submit(live Live) (*feedback.Feedback, error) {
	if err := s.requireState(StateRatingQuestions); err != nil {
		return nil, err
	}
	if !s.IsLastQuestion() {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Answer the remaining questions before submitting")
	}
	if err := s.checkQuestionComplete(s.QuestionIndex); err != nil {
		return nil, err
	}
	for i := range s.Questions {
		if err := s.checkQuestionComplete(i); err != nil {
			return nil, shared.NewValidationError(fmt.Sprintf("Question %d is incomplete. %s", i+1, err.Error()))
		}
	}

	validation, err := s.revalidate(live)
	if err != nil {
		return nil, err
	}

	teachers := make([]feedback.SelectedTeacher, len(s.Selected))
	for i, c := range s.Selected {
		teachers[i] = feedback.SelectedTeacher{ID: c.ID, Name: c.Name, Subject: c.Subject}
	}

	responses := make([]feedback.Response, 0, len(s.Questions)*len(s.Selected))
	for _, q := range s.Questions {
		for _, c := range s.Selected {
			responses = append(responses, feedback.Response{
				QuestionID:   q.ID,
				QuestionText: q.Text,
				TeacherID:    c.ID,
				TeacherName:  c.Name,
				Rating:       s.Ratings[q.ID][c.ID],
			})
		}
	}

	year := s.Respondent.Year
	if s.Info.Year != nil {
		year = s.Info.Year
	}

	return feedback.NewFeedback(s.SurveyID, feedback.Respondent{
		ID:         s.Respondent.ID,
		Name:       s.Respondent.Name,
		RollNo:     s.Info.RollNo,
		Year:       year,
		Department: s.Respondent.Department,
	}, teachers, responses, validation)
}

// MarkSubmitted moves the session to its terminal state
func (s *Session) MarkSubmitted(feedbackID uuid.UUID) {
	s.FeedbackID = feedbackID
	s.State = StateSubmitted
	s.touch()
}

func (s *Session) revalidate(live Live) (feedback.Validation, error) {
	if live.Survey == nil || live.Survey.ID != s.SurveyID {
		return feedback.Validation{}, shared.NewIntegrityError("This survey no longer exists. Please restart from the dashboard.")
	}
	if live.Department == nil {
		return feedback.Validation{}, shared.NewIntegrityError("Your department no longer exists. Please restart from the dashboard.")
	}
	missing := make([]string, 0)
	for _, c := range s.Selected {
		if !live.Department.HasFaculty(c.ID) {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		return feedback.Validation{}, shared.NewIntegrityError(
			"Some selected teachers are no longer available: " + strings.Join(missing, ", ") + ". Please restart the survey.")
	}
	for questionID := range s.Ratings {
		if !live.Survey.HasQuestion(questionID) {
			return feedback.Validation{}, shared.NewIntegrityError("Survey questions have changed. Please restart the survey.")
		}
	}
	return feedback.Validation{
		Validated:        true,
		SurveyExists:     true,
		DepartmentExists: true,
		FacultiesExist:   true,
	}, nil
}

// Unrated returns the names of selected faculty without a rating for question i, in selection order
func (s *Session) Unrated(i int) []string {
	if i < 0 || i >= len(s.Questions) {
		return nil
	}
	row := s.Ratings[s.Questions[i].ID]
	names := make([]string, 0)
	for _, c := range s.Selected {
		if row[c.ID] == feedback.Unrated {
			names = append(names, c.Name)
		}
	}
	return names
}

// CurrentQuestion returns the question being rated
func (s *Session) CurrentQuestion() (survey.QuestionSnapshot, bool) {
	if s.State != StateRatingQuestions || len(s.Questions) == 0 {
		return survey.QuestionSnapshot{}, false
	}
	return s.Questions[s.QuestionIndex], true
}

// IsLastQuestion reports whether the current question is the final one
func (s *Session) IsLastQuestion() bool {
	return s.QuestionIndex == len(s.Questions)-1
}

// OwnedBy reports whether the session belongs to the given respondent
func (s *Session) OwnedBy(respondentID uuid.UUID) bool {
	return s.Respondent.ID == respondentID
}

func (s *Session) checkQuestionComplete(i int) error {
	if names := s.Unrated(i); len(names) > 0 {
		return shared.NewValidationError("Unrated: " + strings.Join(names, ", ")).WithDetail("unrated", names)
	}
	return nil
}

func (s *Session) candidate(id uuid.UUID) (Candidate, bool) {
	for _, c := range s.Candidates {
		if c.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

func (s *Session) requireState(want State) error {
	if s.State != want {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Operation not allowed while session is %s", s.State))
	}
	return nil
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
