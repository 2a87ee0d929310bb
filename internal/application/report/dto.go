package report

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/stats"
	"github.com/google/uuid"
)

// ===================== Dashboard DTOs =====================

// AdminTotals holds the headline counters of the admin dashboard
type AdminTotals struct {
	Surveys         int `json:"surveys"`
	ActiveSurveys   int `json:"activeSurveys"`
	InactiveSurveys int `json:"inactiveSurveys"`
	Responses       int `json:"responses"`
	Students        int `json:"students"`
	Admins          int `json:"admins"`
	Users           int `json:"users"`
	Departments     int `json:"departments"`
}

// RecentSurvey is a survey summary on the admin dashboard
type RecentSurvey struct {
	ID            uuid.UUID `json:"id"`
	Department    string    `json:"department"`
	FacultyCount  int       `json:"facultyCount"`
	QuestionCount int       `json:"questionCount"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	ResponseCount int64     `json:"responseCount"`
}

// AdminDashboardResponse is the admin overview
type AdminDashboardResponse struct {
	Totals                AdminTotals    `json:"totals"`
	AvgResponsesPerSurvey float64        `json:"avgResponsesPerSurvey"`
	ResponseRate          float64        `json:"responseRate"`
	RecentSurveys         []RecentSurvey `json:"recentSurveys"`
}

// StudentSurvey is one survey available to a student
type StudentSurvey struct {
	ID            uuid.UUID `json:"id"`
	Department    string    `json:"department"`
	QuestionCount int       `json:"questionCount"`
	FacultyCount  int       `json:"facultyCount"`
	IsActive      bool      `json:"isActive"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StudentDashboardResponse lists a student's surveys with completion state
type StudentDashboardResponse struct {
	Department string          `json:"department"`
	Surveys    []StudentSurvey `json:"surveys"`
	Available  int             `json:"available"`
	Completed  int             `json:"completed"`
	Pending    int             `json:"pending"`
}

// ===================== Chart DTOs =====================

// DepartmentYearChartResponse is the per-department, per-year chart with
// order statistics over the emitted averages
type DepartmentYearChartResponse struct {
	Departments []string        `json:"departments"`
	Chart       stats.ChartData `json:"chart"`
	Summary     stats.Summary   `json:"summary"`
}

// YearRating is one year's average for a faculty member
type YearRating struct {
	Year    stats.YearBucket `json:"year"`
	Label   string           `json:"label"`
	Average float64          `json:"average"`
	Band    stats.Band       `json:"band"`
}

// FacultyRatingRow is one row of the faculty ratings table
type FacultyRatingRow struct {
	FacultyID   uuid.UUID    `json:"facultyId"`
	Name        string       `json:"name"`
	Years       []YearRating `json:"years"`
	CombinedAvg float64      `json:"combinedAvg"`
	Band        stats.Band   `json:"band"`
	Count       int          `json:"count"`
}

// DepartmentFacultyRatings groups faculty rows by department
type DepartmentFacultyRatings struct {
	Department string             `json:"department"`
	Faculty    []FacultyRatingRow `json:"faculty"`
}

// ===================== Export DTOs =====================

// ExportResult points at a generated CSV file
type ExportResult struct {
	Key         string    `json:"key"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Rows        int       `json:"rows"`
}
