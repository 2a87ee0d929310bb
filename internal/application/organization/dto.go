package organization

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/google/uuid"
)

// CreateDepartmentRequest represents a request to create a department
type CreateDepartmentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	FullName string `json:"fullName" binding:"max=100"`
}

// UpdateDepartmentRequest represents a request to rename a department
type UpdateDepartmentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	FullName string `json:"fullName" binding:"max=100"`
}

// AddFacultyRequest represents a request to add a faculty member to a roster
type AddFacultyRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Subject string `json:"subject" binding:"max=100"`
}

// FacultyResponse is a roster entry
type FacultyResponse struct {
	ID           uuid.UUID `json:"id"`
	DepartmentID uuid.UUID `json:"departmentId"`
	Name         string    `json:"name"`
	Subject      string    `json:"subject"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DepartmentResponse is a department with its roster
type DepartmentResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	FullName     string            `json:"fullName"`
	Faculties    []FacultyResponse `json:"faculties"`
	FacultyCount int               `json:"facultyCount"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ToFacultyResponse converts a roster entry to its response
func ToFacultyResponse(f organization.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:           f.ID,
		DepartmentID: f.DepartmentID,
		Name:         f.Name,
		Subject:      f.Subject,
		CreatedAt:    f.CreatedAt,
	}
}

// ToDepartmentResponse converts a department to its response
func ToDepartmentResponse(d *organization.Department) DepartmentResponse {
	faculties := make([]FacultyResponse, len(d.Faculties))
	for i, f := range d.Faculties {
		faculties[i] = ToFacultyResponse(f)
	}
	return DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		FullName:     d.FullName,
		Faculties:    faculties,
		FacultyCount: len(faculties),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
