package handler

import (
	"context"
	"io"
	"net/http"
	"path"
	"strings"

	reportapp "github.com/facultyfeedback/backend/internal/application/report"
	"github.com/facultyfeedback/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportFileOpener reads back a stored export. Only local storage serves
// files through the API; S3 exports are fetched via presigned URLs.
type ReportFileOpener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// ReportHandler handles the charts and the CSV export
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
	files         ReportFileOpener
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// SetFileOpener enables GET /reports/files/*key
func (h *ReportHandler) SetFileOpener(files ReportFileOpener) {
	h.files = files
}

// ServesFiles reports whether exports can be downloaded through the API
func (h *ReportHandler) ServesFiles() bool {
	return h.files != nil
}

// DepartmentYearChart godoc
// @ID           getDepartmentYearChart
// @Summary      Average rating per department and year
// @Description  Comma separated department names, or ALL. Empty selects every department.
// @Tags         reports
// @Produce      json
// @Param        departments query string false "Departments" example(CSE,ECE)
// @Success      200 {object} APIResponse[reportapp.DepartmentYearChartResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/department-year [get]
func (h *ReportHandler) DepartmentYearChart(c *gin.Context) {
	var departments []string
	for _, raw := range c.QueryArray("departments") {
		departments = append(departments, strings.Split(raw, ",")...)
	}

	chart, err := h.reportService.DepartmentYearChart(c.Request.Context(), departments)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, chart)
}

// FacultyRatings godoc
// @ID           getFacultyRatings
// @Summary      Per-faculty averages by year
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse[[]reportapp.DepartmentFacultyRatings]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/faculty-ratings [get]
func (h *ReportHandler) FacultyRatings(c *gin.Context) {
	ratings, err := h.reportService.FacultyRatings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ratings)
}

// Export godoc
// @ID           exportFeedbackCsv
// @Summary      Export submitted feedback as CSV
// @Description  Writes the file to report storage and returns a download link
// @Tags         reports
// @Produce      json
// @Param        surveyId query string false "Only this survey" format(uuid)
// @Success      201 {object} APIResponse[reportapp.ExportResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/export [post]
func (h *ReportHandler) Export(c *gin.Context) {
	var surveyID *uuid.UUID
	if raw := c.Query("surveyId"); raw != "" {
		id, err := parseQueryID(raw, "surveyId")
		if err != nil {
			h.HandleError(c, err)
			return
		}
		surveyID = &id
	}

	result, err := h.reportService.ExportFeedbackCSV(c.Request.Context(), surveyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Download godoc
// @ID           downloadReportFile
// @Summary      Download an exported report
// @Tags         reports
// @Produce      text/csv
// @Param        key path string true "Storage key"
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/files/{key} [get]
func (h *ReportHandler) Download(c *gin.Context) {
	if h.files == nil {
		h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Report files are not served by this instance")
		return
	}
	key := strings.TrimPrefix(c.Param("key"), "/")

	rc, err := h.files.Open(c.Request.Context(), key)
	if err != nil {
		h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Report not found")
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+path.Base(key)+`"`)
	c.DataFromReader(http.StatusOK, -1, "text/csv; charset=utf-8", rc, nil)
}
