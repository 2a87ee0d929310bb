package models

import (
	"time"

	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/google/uuid"
)

// DepartmentModel is the persistence model for the Department aggregate
type DepartmentModel struct {
	BaseModel
	Name      string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	FullName  string         `gorm:"type:varchar(100);not null"`
	Faculties []FacultyModel `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// FacultyModel is one roster entry of a department
type FacultyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Subject      string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FacultyModel) TableName() string {
	return "faculties"
}

// DepartmentModelFromDomain converts a domain department. The roster is
// converted too but Save omits it; roster rows are written one at a time.
func DepartmentModelFromDomain(d *organization.Department) *DepartmentModel {
	m := &DepartmentModel{
		Name:      d.Name,
		FullName:  d.FullName,
		Faculties: make([]FacultyModel, 0, len(d.Faculties)),
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	for i := range d.Faculties {
		m.Faculties = append(m.Faculties, *FacultyModelFromDomain(&d.Faculties[i]))
	}
	return m
}

// ToDomain converts the model back to a domain department
func (m *DepartmentModel) ToDomain() *organization.Department {
	d := &organization.Department{
		BaseAggregateRoot: m.AggregateRoot(),
		Name:              m.Name,
		FullName:          m.FullName,
		Faculties:         make([]organization.Faculty, 0, len(m.Faculties)),
	}
	for _, f := range m.Faculties {
		d.Faculties = append(d.Faculties, f.ToDomain())
	}
	return d
}

// FacultyModelFromDomain converts a roster entry
func FacultyModelFromDomain(f *organization.Faculty) *FacultyModel {
	return &FacultyModel{
		ID:           f.ID,
		DepartmentID: f.DepartmentID,
		Name:         f.Name,
		Subject:      f.Subject,
		CreatedAt:    f.CreatedAt,
	}
}

// ToDomain converts the model back to a roster entry
func (m FacultyModel) ToDomain() organization.Faculty {
	return organization.Faculty{
		ID:           m.ID,
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
		Subject:      m.Subject,
		CreatedAt:    m.CreatedAt,
	}
}
