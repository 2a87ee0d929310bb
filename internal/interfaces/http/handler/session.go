package handler

import (
	"net/http"

	takingapp "github.com/facultyfeedback/backend/internal/application/surveytaking"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler drives the survey-taking flow for students
type SessionHandler struct {
	BaseHandler
	controller *takingapp.Controller
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(controller *takingapp.Controller) *SessionHandler {
	return &SessionHandler{
		controller: controller,
	}
}

// Begin godoc
// @ID           beginSession
// @Summary      Start taking a survey
// @Description  Checks the survey is open, targets the caller's department and was not answered before
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body takingapp.BeginRequest true "Survey to take"
// @Success      201 {object} APIResponse[takingapp.SessionView]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions [post]
func (h *SessionHandler) Begin(c *gin.Context) {
	studentID, ok := h.callerID(c)
	if !ok {
		return
	}
	var req takingapp.BeginRequest
	if !h.bindJSON(c, &req) {
		return
	}
	surveyID, err := shared.ParseID("survey", req.SurveyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	view, err := h.controller.Begin(c.Request.Context(), studentID, surveyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, view)
}

// Get godoc
// @ID           getSession
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID" format(uuid)
// @Success      200 {object} APIResponse[takingapp.SessionView]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	h.step(c, func(studentID, sessionID uuid.UUID) (*takingapp.SessionView, error) {
		return h.controller.Get(c.Request.Context(), studentID, sessionID)
	})
}

// SubmitRespondentInfo godoc
// @ID           submitRespondentInfo
// @Summary      Enter roll number, year and class
// @Description  Loads the live roster of the class as the list of teachers to choose from
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID" format(uuid)
// @Param        request body takingapp.RespondentInfoRequest true "Respondent info"
// @Success      200 {object} APIResponse[takingapp.SessionView]
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions/{id}/respondent-info [put]
func (h *SessionHandler) SubmitRespondentInfo(c *gin.Context) {
	var req takingapp.RespondentInfoRequest
	h.stepWithBody(c, &req, func(studentID, sessionID uuid.UUID) (*takingapp.SessionView, error) {
		return h.controller.SubmitRespondentInfo(c.Request.Context(), studentID, sessionID, req)
	})
}

// SelectRaters godoc
// @ID           selectRaters
// @Summary      Choose the teachers to rate
// @Description  Resets every rating and moves to the first question
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID" format(uuid)
// @Param        request body takingapp.SelectRatersRequest true "Selected faculty ids"
// @Success      200 {object} APIResponse[takingapp.SessionView]
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions/{id}/raters [put]
func (h *SessionHandler) SelectRaters(c *gin.Context) {
	var req takingapp.SelectRatersRequest
	h.stepWithBody(c, &req, func(studentID, sessionID uuid.UUID) (*takingapp.SessionView, error) {
		return h.controller.SelectRaters(c.Request.Context(), studentID, sessionID, req)
	})
}

// Rate godoc
// @ID           rateFaculty
// @Summary      Rate a teacher on the current question
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID" format(uuid)
// @Param        request body takingapp.RateRequest true "Rating from 1 to 10"
// @Success      200 {object} APIResponse[takingapp.SessionView]
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions/{id}/ratings [put]
func (h *SessionHandler) Rate(c *gin.Context) {
	var req takingapp.RateRequest
	h.stepWithBody(c, &req, func(studentID, sessionID uuid.UUID) (*takingapp.SessionView, error) {
		return h.controller.Rate(c.Request.Context(), studentID, sessionID, req)
	})
}

// Next godoc
// @ID           nextQuestion
// @Summary      Move to the next question
// @Description  Refused while any selected teacher is unrated on the current question
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID" format(uuid)
// @Success      200 {object} APIResponse[takingapp.SessionView]
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions/{id}/next [post]
func (h *SessionHandler) Next(c *gin.Context) {
	h.step(c, func(studentID, sessionID uuid.UUID) (*takingapp.SessionView, error) {
		return h.controller.Next(c.Request.Context(), studentID, sessionID)
	})
}

// Back godoc
// @ID           previousQuestion
// @Summary      Move to the previous question
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID" format(uuid)
// @Success      200 {object} APIResponse[takingapp.SessionView]
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions/{id}/back [post]
func (h *SessionHandler) Back(c *gin.Context) {
	h.step(c, func(studentID, sessionID uuid.UUID) (*takingapp.SessionView, error) {
		return h.controller.Back(c.Request.Context(), studentID, sessionID)
	})
}

// Submit godoc
// @ID           submitSession
// @Summary      Submit the feedback
// @Description  Re-validates against live data. A 409 with details.restart=true means the session was discarded.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID" format(uuid)
// @Success      201 {object} APIResponse[takingapp.SubmitResult]
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions/{id}/submit [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	studentID, ok := h.callerID(c)
	if !ok {
		return
	}
	sessionID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.controller.Submit(c.Request.Context(), studentID, sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Abandon godoc
// @ID           abandonSession
// @Summary      Abandon a session
// @Tags         sessions
// @Param        id path string true "Session ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sessions/{id} [delete]
func (h *SessionHandler) Abandon(c *gin.Context) {
	studentID, ok := h.callerID(c)
	if !ok {
		return
	}
	sessionID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.controller.Abandon(c.Request.Context(), studentID, sessionID); err != nil {
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type sessionStep func(studentID, sessionID uuid.UUID) (*takingapp.SessionView, error)

func (h *SessionHandler) step(c *gin.Context, fn sessionStep) {
	studentID, ok := h.callerID(c)
	if !ok {
		return
	}
	sessionID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	view, err := fn(studentID, sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

func (h *SessionHandler) stepWithBody(c *gin.Context, req any, fn sessionStep) {
	if !h.bindJSON(c, req) {
		return
	}
	h.step(c, fn)
}
