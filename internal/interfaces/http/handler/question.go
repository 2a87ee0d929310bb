package handler

import (
	questionapp "github.com/facultyfeedback/backend/internal/application/question"
	"github.com/gin-gonic/gin"
)

// QuestionHandler handles question bank endpoints
type QuestionHandler struct {
	BaseHandler
	questionService *questionapp.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questionService *questionapp.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// List godoc
// @ID           listQuestions
// @Summary      List the question bank
// @Tags         questions
// @Produce      json
// @Success      200 {object} APIResponse[[]questionapp.QuestionResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, questions)
}

// GetByID godoc
// @ID           getQuestion
// @Summary      Get a question
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID" format(uuid)
// @Success      200 {object} APIResponse[questionapp.QuestionResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /questions/{id} [get]
func (h *QuestionHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	q, err := h.questionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, q)
}

// Create godoc
// @ID           createQuestion
// @Summary      Add a question to the bank
// @Description  The response carries non-blocking warnings about the wording
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body questionapp.CreateQuestionRequest true "Question"
// @Success      201 {object} APIResponse[questionapp.QuestionResult]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req questionapp.CreateQuestionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.questionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Update godoc
// @ID           updateQuestion
// @Summary      Edit a question
// @Description  Surveys already created keep the old wording
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path string true "Question ID" format(uuid)
// @Param        request body questionapp.UpdateQuestionRequest true "Question"
// @Success      200 {object} APIResponse[questionapp.QuestionResult]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /questions/{id} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req questionapp.UpdateQuestionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.questionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete godoc
// @ID           deleteQuestion
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID" format(uuid)
// @Param        confirm query bool false "Confirm the deletion"
// @Success      200 {object} APIResponse[shared.DeleteOutcome]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	outcome, err := h.questionService.Delete(c.Request.Context(), id, confirmed(c))
	h.respondDelete(c, outcome, err)
}
