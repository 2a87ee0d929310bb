package handler

import (
	feedbackapp "github.com/facultyfeedback/backend/internal/application/feedback"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler exposes submitted feedback
type FeedbackHandler struct {
	BaseHandler
	feedbackService *feedbackapp.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService *feedbackapp.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// List godoc
// @ID           listFeedbacks
// @Summary      List submitted feedback
// @Description  Every record, or only those for one survey
// @Tags         feedbacks
// @Produce      json
// @Param        surveyId query string false "Survey ID" format(uuid)
// @Success      200 {object} APIResponse[feedbackapp.FeedbackList]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /feedbacks [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	var (
		list *feedbackapp.FeedbackList
		err  error
	)
	if raw := c.Query("surveyId"); raw != "" {
		surveyID, perr := parseQueryID(raw, "surveyId")
		if perr != nil {
			h.HandleError(c, perr)
			return
		}
		list, err = h.feedbackService.ListBySurvey(c.Request.Context(), surveyID)
	} else {
		list, err = h.feedbackService.ListAll(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// ListMine godoc
// @ID           listMyFeedbacks
// @Summary      List the caller's submitted feedback
// @Tags         feedbacks
// @Produce      json
// @Success      200 {object} APIResponse[feedbackapp.FeedbackList]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /feedbacks/mine [get]
func (h *FeedbackHandler) ListMine(c *gin.Context) {
	studentID, ok := h.callerID(c)
	if !ok {
		return
	}
	list, err := h.feedbackService.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}
