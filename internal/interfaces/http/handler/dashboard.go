package handler

import (
	reportapp "github.com/facultyfeedback/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin and student landing pages
type DashboardHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(reportService *reportapp.ReportService) *DashboardHandler {
	return &DashboardHandler{
		reportService: reportService,
	}
}

// Admin godoc
// @ID           getAdminDashboard
// @Summary      Admin overview
// @Description  Totals, response rate and the five most recent surveys
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[reportapp.AdminDashboardResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/admin [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	resp, err := h.reportService.AdminDashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Student godoc
// @ID           getStudentDashboard
// @Summary      Surveys available to the caller
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[reportapp.StudentDashboardResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/student [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	studentID, ok := h.callerID(c)
	if !ok {
		return
	}
	resp, err := h.reportService.StudentDashboard(c.Request.Context(), studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
