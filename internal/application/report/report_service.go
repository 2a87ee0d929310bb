package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/facultyfeedback/backend/internal/domain/feedback"
	"github.com/facultyfeedback/backend/internal/domain/identity"
	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/facultyfeedback/backend/internal/domain/stats"
	"github.com/facultyfeedback/backend/internal/domain/survey"
	"github.com/facultyfeedback/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	recentSurveyLimit      = 5
	defaultDownloadExpires = 15 * time.Minute
	csvContentType         = "text/csv"
)

// ReportServiceConfig configures report generation
type ReportServiceConfig struct {
	DownloadURLExpiration time.Duration
	KeyPrefix             string
}

// ReportService builds dashboards, charts and exports. Every call reads a
// fresh snapshot of the store; nothing is cached between requests.
type ReportService struct {
	surveyRepo     survey.SurveyRepository
	feedbackRepo   feedback.FeedbackRepository
	departmentRepo organization.DepartmentRepository
	userRepo       identity.UserRepository
	storage        ReportStorage
	config         ReportServiceConfig
	logger         *zap.Logger
	now            func() time.Time
}

// NewReportService creates a new ReportService. storage may be nil, in which
// case exports are refused.
func NewReportService(
	surveyRepo survey.SurveyRepository,
	feedbackRepo feedback.FeedbackRepository,
	departmentRepo organization.DepartmentRepository,
	userRepo identity.UserRepository,
	storage ReportStorage,
	config ReportServiceConfig,
	logger *zap.Logger,
) *ReportService {
	if config.DownloadURLExpiration <= 0 {
		config.DownloadURLExpiration = defaultDownloadExpires
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "exports"
	}
	return &ReportService{
		surveyRepo:     surveyRepo,
		feedbackRepo:   feedbackRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		storage:        storage,
		config:         config,
		logger:         logger,
		now:            time.Now,
	}
}

// ===================== Dashboards =====================

// AdminDashboard returns totals, response averages and the most recent surveys
func (s *ReportService) AdminDashboard(ctx context.Context) (*AdminDashboardResponse, error) {
	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.feedbackRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := AdminTotals{
		Surveys:     len(surveys),
		Responses:   len(all),
		Users:       len(users),
		Departments: len(departments),
	}
	for i := range surveys {
		if surveys[i].IsActive {
			totals.ActiveSurveys++
		} else {
			totals.InactiveSurveys++
		}
	}
	for i := range users {
		switch users[i].Role {
		case identity.RoleStudent:
			totals.Students++
		case identity.RoleAdmin:
			totals.Admins++
		}
	}

	counts := make(map[uuid.UUID]int64, len(surveys))
	for i := range all {
		counts[all[i].SurveyID]++
	}

	return &AdminDashboardResponse{
		Totals:                totals,
		AvgResponsesPerSurvey: ratio1(int64(totals.Responses), int64(totals.Surveys), 1),
		ResponseRate:          ratio1(int64(totals.Responses), int64(totals.Surveys)*int64(totals.Students), 100),
		RecentSurveys:         recentSurveys(surveys, counts, recentSurveyLimit),
	}, nil
}

// StudentDashboard lists the surveys for the student's department and which
// of them the student already answered
func (s *ReportService) StudentDashboard(ctx context.Context, studentID uuid.UUID) (*StudentDashboardResponse, error) {
	user, err := s.userRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("User")
		}
		return nil, err
	}
	if !user.IsStudent() {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only students have a student dashboard")
	}

	surveys, err := s.surveyRepo.FindByDepartment(ctx, user.Department)
	if err != nil {
		return nil, err
	}
	submitted, err := s.feedbackRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	done := make(map[uuid.UUID]struct{}, len(submitted))
	for i := range submitted {
		done[submitted[i].SurveyID] = struct{}{}
	}

	facultyCount := 0
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if shared.FoldEqual(departments[i].Name, user.Department) {
			facultyCount = departments[i].FacultyCount()
			break
		}
	}

	out := &StudentDashboardResponse{
		Department: user.Department,
		Surveys:    make([]StudentSurvey, len(surveys)),
		Available:  len(surveys),
	}
	for i := range surveys {
		_, completed := done[surveys[i].ID]
		if completed {
			out.Completed++
		}
		out.Surveys[i] = StudentSurvey{
			ID:            surveys[i].ID,
			Department:    surveys[i].Department,
			QuestionCount: surveys[i].QuestionCount(),
			FacultyCount:  facultyCount,
			IsActive:      surveys[i].IsActive,
			Completed:     completed,
			CreatedAt:     surveys[i].CreatedAt,
		}
	}
	out.Pending = out.Available - out.Completed
	return out, nil
}

// ===================== Charts =====================

// DepartmentYearChart averages ratings per department and year. An empty
// selection, or one containing "ALL", selects every department in store order.
func (s *ReportService) DepartmentYearChart(ctx context.Context, departments []string) (*DepartmentYearChartResponse, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(departments))
	for _, d := range departments {
		if d = strings.TrimSpace(d); d != "" {
			selected = append(selected, d)
		}
	}
	if len(selected) == 0 || containsFold(selected, "ALL") {
		selected = selected[:0]
		for i := range snap.departments {
			selected = append(selected, snap.departments[i].Name)
		}
	}

	chart := stats.ComputeDepartmentYearStats(selected, snap.feedback, snap.catalog)
	return &DepartmentYearChartResponse{
		Departments: selected,
		Chart:       chart,
		Summary:     stats.ComputeSummaryStatistics(chart.Data),
	}, nil
}

// FacultyRatings returns per-faculty averages by year, departments in
// alphabetical order and faculty by name
func (s *ReportService) FacultyRatings(ctx context.Context) ([]DepartmentFacultyRatings, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	ratings := stats.ComputeFacultyRatingsByYear(snap.feedback, snap.catalog)
	out := make([]DepartmentFacultyRatings, 0, len(ratings))
	for _, dept := range ratings.Departments() {
		rows := make([]FacultyRatingRow, 0, len(ratings[dept]))
		for _, id := range ratings.FacultyIDs(dept) {
			r := ratings[dept][id]
			years := make([]YearRating, 0, len(r.PerYear))
			for _, y := range stats.YearBuckets {
				avg, ok := r.PerYear[y]
				if !ok {
					continue
				}
				years = append(years, YearRating{Year: y, Label: y.Label(), Average: avg, Band: stats.RatingBand(avg)})
			}
			rows = append(rows, FacultyRatingRow{
				FacultyID:   id,
				Name:        r.Name,
				Years:       years,
				CombinedAvg: r.CombinedAvg,
				Band:        stats.RatingBand(r.CombinedAvg),
				Count:       r.Count,
			})
		}
		out = append(out, DepartmentFacultyRatings{Department: dept, Faculty: rows})
	}
	return out, nil
}

// ===================== Export =====================

// ExportFeedbackCSV writes every response, or those of one survey, as a CSV
// file to report storage and returns a time-limited download link
func (s *ReportService) ExportFeedbackCSV(ctx context.Context, surveyID *uuid.UUID) (result *ExportResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", "export_feedback_csv")
	defer func() { telemetry.EndSpan(span, err) }()

	if s.storage == nil {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Report storage is not configured")
	}

	var records []feedback.Feedback
	scope := "all"
	if surveyID != nil {
		if _, err := s.surveyRepo.FindByID(ctx, *surveyID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFoundError("Survey")
			}
			return nil, err
		}
		records, err = s.feedbackRepo.FindBySurveyID(ctx, *surveyID)
		scope = surveyID.String()
	} else {
		records, err = s.feedbackRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	data, rows, err := encodeFeedbackCSV(records)
	if err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	span.SetAttributes(attribute.Int("report.rows", rows), attribute.String("report.scope", scope))

	key := fmt.Sprintf("%s/feedback-%s-%s.csv", s.config.KeyPrefix, scope, s.now().UTC().Format("20060102T150405Z"))
	if err := s.storage.Upload(ctx, key, data, csvContentType); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}
	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, key, s.config.DownloadURLExpiration)
	if err != nil {
		return nil, fmt.Errorf("download url: %w", err)
	}

	s.logger.Info("Feedback export generated",
		zap.String("key", key),
		zap.Int("rows", rows),
		zap.Int("bytes", len(data)),
	)

	return &ExportResult{Key: key, DownloadURL: url, ExpiresAt: expiresAt, Rows: rows}, nil
}

var csvHeader = []string{
	"feedback_id", "survey_id", "submitted_at", "student_name", "roll_no", "department", "year",
	"question_id", "question", "faculty_id", "faculty", "rating",
}

// encodeFeedbackCSV flattens feedback into one row per response
func encodeFeedbackCSV(records []feedback.Feedback) ([]byte, int, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, 0, err
	}

	rows := 0
	for i := range records {
		f := &records[i]
		year := ""
		if f.StudentYear != nil {
			year = strconv.Itoa(*f.StudentYear)
		}
		for _, r := range f.Responses {
			if err := w.Write([]string{
				f.ID.String(),
				f.SurveyID.String(),
				f.SubmittedAt.UTC().Format(time.RFC3339),
				csvCell(f.StudentName),
				csvCell(f.StudentRollNo),
				csvCell(f.StudentDepartment),
				year,
				r.QuestionID.String(),
				csvCell(r.QuestionText),
				r.TeacherID.String(),
				csvCell(r.TeacherName),
				strconv.Itoa(r.Rating),
			}); err != nil {
				return nil, 0, err
			}
			rows++
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), rows, nil
}

// csvCell keeps spreadsheet applications from evaluating free text as a formula.
func csvCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

// ===================== Helpers =====================

type snapshot struct {
	departments []organization.Department
	feedback    []feedback.Feedback
	catalog     stats.Catalog
}

// loadSnapshot reads the current surveys, rosters and feedback
func (s *ReportService) loadSnapshot(ctx context.Context) (*snapshot, error) {
	surveys, err := s.surveyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.feedbackRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	surveyIDs := make([]uuid.UUID, len(surveys))
	for i := range surveys {
		surveyIDs[i] = surveys[i].ID
	}
	rosters := make([]stats.Roster, len(departments))
	for i := range departments {
		rosters[i] = stats.Roster{Department: departments[i].Name, FacultyIDs: departments[i].FacultyIDs()}
	}

	return &snapshot{
		departments: departments,
		feedback:    all,
		catalog:     stats.NewCatalog(surveyIDs, rosters),
	}, nil
}

func recentSurveys(surveys []survey.Survey, counts map[uuid.UUID]int64, limit int) []RecentSurvey {
	sorted := append([]survey.Survey(nil), surveys...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]RecentSurvey, len(sorted))
	for i := range sorted {
		out[i] = RecentSurvey{
			ID:            sorted[i].ID,
			Department:    sorted[i].Department,
			FacultyCount:  len(sorted[i].Faculties),
			QuestionCount: sorted[i].QuestionCount(),
			IsActive:      sorted[i].IsActive,
			CreatedAt:     sorted[i].CreatedAt,
			ResponseCount: counts[sorted[i].ID],
		}
	}
	return out
}

// ratio1 returns num/den*scale rounded to one decimal place, or 0 without a denominator
func ratio1(num, den int64, scale int64) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromInt(num).
		Mul(decimal.NewFromInt(scale)).
		Div(decimal.NewFromInt(den)).
		Round(1).
		InexactFloat64()
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if shared.FoldEqual(v, target) {
			return true
		}
	}
	return false
}
