package handler

import (
	surveyapp "github.com/facultyfeedback/backend/internal/application/survey"
	"github.com/gin-gonic/gin"
)

// SurveyHandler handles survey authoring endpoints
type SurveyHandler struct {
	BaseHandler
	surveyService *surveyapp.SurveyService
}

// NewSurveyHandler creates a new SurveyHandler
func NewSurveyHandler(surveyService *surveyapp.SurveyService) *SurveyHandler {
	return &SurveyHandler{
		surveyService: surveyService,
	}
}

// Create godoc
// @ID           createSurveys
// @Summary      Create surveys
// @Description  Creates one survey for a department, or one per department when department is "ALL".
// @Description  The ALL form is all-or-nothing: a department with an empty roster fails the whole batch.
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        request body surveyapp.CreateSurveysRequest true "Target department and question ids"
// @Success      201 {object} APIResponse[surveyapp.CreateSurveysOutcome]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /surveys [post]
func (h *SurveyHandler) Create(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}
	var req surveyapp.CreateSurveysRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.CreatedBy = userID

	outcome, err := h.surveyService.CreateSurveys(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, outcome)
}

// List godoc
// @ID           listSurveys
// @Summary      List surveys
// @Description  Every survey with its response count, optionally narrowed to one department
// @Tags         surveys
// @Produce      json
// @Param        department query string false "Department name, case-insensitive"
// @Success      200 {object} APIResponse[[]surveyapp.SurveyResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /surveys [get]
func (h *SurveyHandler) List(c *gin.Context) {
	var (
		surveys []surveyapp.SurveyResponse
		err     error
	)
	if department := c.Query("department"); department != "" {
		surveys, err = h.surveyService.ListByDepartment(c.Request.Context(), department)
	} else {
		surveys, err = h.surveyService.List(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, surveys)
}

// GetByID godoc
// @ID           getSurvey
// @Summary      Get a survey
// @Tags         surveys
// @Produce      json
// @Param        id path string true "Survey ID" format(uuid)
// @Success      200 {object} APIResponse[surveyapp.SurveyResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /surveys/{id} [get]
func (h *SurveyHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	sv, err := h.surveyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sv)
}

// SetActive godoc
// @ID           setSurveyActive
// @Summary      Open or close a survey
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        id path string true "Survey ID" format(uuid)
// @Param        request body surveyapp.SetActiveRequest true "Status"
// @Success      200 {object} APIResponse[surveyapp.SurveyResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /surveys/{id}/status [patch]
func (h *SurveyHandler) SetActive(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req surveyapp.SetActiveRequest
	if !h.bindJSON(c, &req) {
		return
	}
	sv, err := h.surveyService.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sv)
}

// Delete godoc
// @ID           deleteSurvey
// @Summary      Delete a survey
// @Description  Submitted feedback stays stored and drops out of aggregates
// @Tags         surveys
// @Produce      json
// @Param        id path string true "Survey ID" format(uuid)
// @Param        confirm query bool false "Confirm the deletion"
// @Success      200 {object} APIResponse[shared.DeleteOutcome]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /surveys/{id} [delete]
func (h *SurveyHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	outcome, err := h.surveyService.Delete(c.Request.Context(), id, confirmed(c))
	h.respondDelete(c, outcome, err)
}
