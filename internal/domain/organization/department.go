package organization

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var (
	departmentNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-]+$`)
	facultyNamePattern    = regexp.MustCompile(`^[a-zA-Z\s.\-']+$`)
)

// Faculty is an instructor owned by exactly one department
type Faculty struct {
	ID           uuid.UUID
	DepartmentID uuid.UUID
	Name         string
	Subject      string
	CreatedAt    time.Time
}

// Department is an organizational unit owning a faculty roster.
// It is the survey target granularity.
type Department struct {
	shared.BaseAggregateRoot
	Name      string
	FullName  string
	Faculties []Faculty
}

// NewDepartment creates a department. An empty full name defaults to the name.
func NewDepartment(name, fullName string) (*Department, error) {
	name = strings.TrimSpace(name)
	fullName = strings.TrimSpace(fullName)
	if err := validateDepartmentName(name); err != nil {
		return nil, err
	}
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}
	if fullName == "" {
		fullName = name
	}

	dept := &Department{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		FullName:          fullName,
		Faculties:         make([]Faculty, 0),
	}

	dept.AddDomainEvent(NewDepartmentCreatedEvent(dept))

	return dept, nil
}

// Update changes the department name and full name
func (d *Department) Update(name, fullName string) error {
	name = strings.TrimSpace(name)
	fullName = strings.TrimSpace(fullName)
	if err := validateDepartmentName(name); err != nil {
		return err
	}
	if err := validateFullName(fullName); err != nil {
		return err
	}
	if fullName == "" {
		fullName = name
	}

	d.Name = name
	d.FullName = fullName
	d.Touch()

	d.AddDomainEvent(NewDepartmentUpdatedEvent(d))

	return nil
}

// AddFaculty appends a faculty member to the roster.
// Names are unique within the department, compared case-insensitively.
func (d *Department) AddFaculty(name, subject string) (*Faculty, error) {
	name = strings.TrimSpace(name)
	subject = strings.TrimSpace(subject)
	if err := validateFacultyName(name); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(subject) > 100 {
		return nil, shared.NewDomainError("INVALID_FACULTY_SUBJECT", "Subject cannot exceed 100 characters")
	}
	for _, f := range d.Faculties {
		if shared.FoldEqual(f.Name, name) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists,
				"Faculty \""+name+"\" already exists in "+d.Name+" department")
		}
	}

	faculty := Faculty{
		ID:           uuid.New(),
		DepartmentID: d.ID,
		Name:         name,
		Subject:      subject,
		CreatedAt:    time.Now(),
	}
	d.Faculties = append(d.Faculties, faculty)
	d.Touch()

	d.AddDomainEvent(NewFacultyAddedEvent(d, faculty))

	return &d.Faculties[len(d.Faculties)-1], nil
}

// RemoveFaculty drops a faculty member from the roster
func (d *Department) RemoveFaculty(facultyID uuid.UUID) error {
	for i, f := range d.Faculties {
		if f.ID == facultyID {
			d.Faculties = append(d.Faculties[:i], d.Faculties[i+1:]...)
			d.Touch()
			d.AddDomainEvent(NewFacultyRemovedEvent(d, f))
			return nil
		}
	}
	return shared.NewNotFoundError("Faculty")
}

// MarkDeleted records the cascading removal of the department and its roster
func (d *Department) MarkDeleted() {
	d.AddDomainEvent(NewDepartmentDeletedEvent(d))
}

// FindFaculty returns the roster entry with the given id
func (d *Department) FindFaculty(id uuid.UUID) (Faculty, bool) {
	for _, f := range d.Faculties {
		if f.ID == id {
			return f, true
		}
	}
	return Faculty{}, false
}

// HasFaculty reports whether id is on the current roster
func (d *Department) HasFaculty(id uuid.UUID) bool {
	_, ok := d.FindFaculty(id)
	return ok
}

// FacultyIDs returns the roster ids in roster order
func (d *Department) FacultyIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(d.Faculties))
	for i, f := range d.Faculties {
		ids[i] = f.ID
	}
	return ids
}

// FacultyCount returns the roster size
func (d *Department) FacultyCount() int {
	return len(d.Faculties)
}

func validateDepartmentName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_DEPARTMENT_NAME", "Department name cannot be empty")
	}
	n := utf8.RuneCountInString(name)
	if n < 2 {
		return shared.NewDomainError("INVALID_DEPARTMENT_NAME", "Department name must be at least 2 characters")
	}
	if n > 50 {
		return shared.NewDomainError("INVALID_DEPARTMENT_NAME", "Department name cannot exceed 50 characters")
	}
	if !departmentNamePattern.MatchString(name) {
		return shared.NewDomainError("INVALID_DEPARTMENT_NAME",
			"Department name can only contain letters, numbers, spaces, and hyphens")
	}
	return nil
}

func validateFullName(fullName string) error {
	if utf8.RuneCountInString(fullName) > 100 {
		return shared.NewDomainError("INVALID_DEPARTMENT_FULL_NAME", "Full name cannot exceed 100 characters")
	}
	return nil
}

func validateFacultyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_FACULTY_NAME", "Faculty name cannot be empty")
	}
	n := utf8.RuneCountInString(name)
	if n < 2 {
		return shared.NewDomainError("INVALID_FACULTY_NAME", "Faculty name must be at least 2 characters")
	}
	if n > 100 {
		return shared.NewDomainError("INVALID_FACULTY_NAME", "Faculty name cannot exceed 100 characters")
	}
	if !facultyNamePattern.MatchString(name) {
		return shared.NewDomainError("INVALID_FACULTY_NAME",
			"Faculty name can only contain letters, spaces, dots, hyphens, and apostrophes")
	}
	return nil
}
