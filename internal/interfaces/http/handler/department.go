package handler

import (
	orgapp "github.com/facultyfeedback/backend/internal/application/organization"
	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles department and roster endpoints
type DepartmentHandler struct {
	BaseHandler
	departmentService *orgapp.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService *orgapp.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// List godoc
// @ID           listDepartments
// @Summary      List departments
// @Description  Departments with their rosters, in creation order
// @Tags         departments
// @Produce      json
// @Success      200 {object} APIResponse[[]orgapp.DepartmentResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, departments)
}

// GetByID godoc
// @ID           getDepartment
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID" format(uuid)
// @Success      200 {object} APIResponse[orgapp.DepartmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments/{id} [get]
func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, department)
}

// Create godoc
// @ID           createDepartment
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        request body orgapp.CreateDepartmentRequest true "Department"
// @Success      201 {object} APIResponse[orgapp.DepartmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req orgapp.CreateDepartmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	department, err := h.departmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, department)
}

// Update godoc
// @ID           updateDepartment
// @Summary      Rename a department
// @Description  Existing surveys keep the department name they were created with
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id path string true "Department ID" format(uuid)
// @Param        request body orgapp.UpdateDepartmentRequest true "Department"
// @Success      200 {object} APIResponse[orgapp.DepartmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req orgapp.UpdateDepartmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	department, err := h.departmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, department)
}

// Delete godoc
// @ID           deleteDepartment
// @Summary      Delete a department and its roster
// @Description  Without confirm=true nothing is removed and the response asks for confirmation
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID" format(uuid)
// @Param        confirm query bool false "Confirm the deletion"
// @Success      200 {object} APIResponse[shared.DeleteOutcome]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	outcome, err := h.departmentService.Delete(c.Request.Context(), id, confirmed(c))
	h.respondDelete(c, outcome, err)
}

// AddFaculty godoc
// @ID           addFaculty
// @Summary      Add a faculty member to a roster
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id path string true "Department ID" format(uuid)
// @Param        request body orgapp.AddFacultyRequest true "Faculty member"
// @Success      201 {object} APIResponse[orgapp.FacultyResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments/{id}/faculties [post]
func (h *DepartmentHandler) AddFaculty(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req orgapp.AddFacultyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	faculty, err := h.departmentService.AddFaculty(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, faculty)
}

// RemoveFaculty godoc
// @ID           removeFaculty
// @Summary      Remove a faculty member from a roster
// @Description  Surveys keep their snapshot; in-flight sessions that selected the member fail at submit
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID" format(uuid)
// @Param        facultyId path string true "Faculty ID" format(uuid)
// @Param        confirm query bool false "Confirm the removal"
// @Success      200 {object} APIResponse[shared.DeleteOutcome]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments/{id}/faculties/{facultyId} [delete]
func (h *DepartmentHandler) RemoveFaculty(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	facultyID, ok := h.pathID(c, "facultyId")
	if !ok {
		return
	}
	outcome, err := h.departmentService.RemoveFaculty(c.Request.Context(), id, facultyID, confirmed(c))
	h.respondDelete(c, outcome, err)
}
