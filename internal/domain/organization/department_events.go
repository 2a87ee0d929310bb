package organization

import (
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Department
const AggregateTypeDepartment = "Department"

// Department domain event types
const (
	EventTypeDepartmentCreated = "DepartmentCreated"
	EventTypeDepartmentUpdated = "DepartmentUpdated"
	EventTypeDepartmentDeleted = "DepartmentDeleted"
	EventTypeFacultyAdded      = "FacultyAdded"
	EventTypeFacultyRemoved    = "FacultyRemoved"
)

// DepartmentCreatedEvent is published when a department is created
type DepartmentCreatedEvent struct {
	shared.BaseDomainEvent
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// NewDepartmentCreatedEvent creates a new DepartmentCreatedEvent
func NewDepartmentCreatedEvent(dept *Department) *DepartmentCreatedEvent {
	return &DepartmentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDepartmentCreated, AggregateTypeDepartment, dept.ID),
		Name:            dept.Name,
		FullName:        dept.FullName,
	}
}

// DepartmentUpdatedEvent is published when a department is renamed
type DepartmentUpdatedEvent struct {
	shared.BaseDomainEvent
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// NewDepartmentUpdatedEvent creates a new DepartmentUpdatedEvent
func NewDepartmentUpdatedEvent(dept *Department) *DepartmentUpdatedEvent {
	return &DepartmentUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDepartmentUpdated, AggregateTypeDepartment, dept.ID),
		Name:            dept.Name,
		FullName:        dept.FullName,
	}
}

// DepartmentDeletedEvent is published when a department and its roster are removed
type DepartmentDeletedEvent struct {
	shared.BaseDomainEvent
	Name         string `json:"name"`
	FacultyCount int    `json:"faculty_count"`
}

// NewDepartmentDeletedEvent creates a new DepartmentDeletedEvent
func NewDepartmentDeletedEvent(dept *Department) *DepartmentDeletedEvent {
	return &DepartmentDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDepartmentDeleted, AggregateTypeDepartment, dept.ID),
		Name:            dept.Name,
		FacultyCount:    len(dept.Faculties),
	}
}

// FacultyAddedEvent is published when a faculty member joins a roster
type FacultyAddedEvent struct {
	shared.BaseDomainEvent
	FacultyID   uuid.UUID `json:"faculty_id"`
	FacultyName string    `json:"faculty_name"`
}

// NewFacultyAddedEvent creates a new FacultyAddedEvent
func NewFacultyAddedEvent(dept *Department, f Faculty) *FacultyAddedEvent {
	return &FacultyAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFacultyAdded, AggregateTypeDepartment, dept.ID),
		FacultyID:       f.ID,
		FacultyName:     f.Name,
	}
}

// FacultyRemovedEvent is published when a faculty member leaves a roster
type FacultyRemovedEvent struct {
	shared.BaseDomainEvent
	FacultyID   uuid.UUID `json:"faculty_id"`
	FacultyName string    `json:"faculty_name"`
}

// NewFacultyRemovedEvent creates a new FacultyRemovedEvent
func NewFacultyRemovedEvent(dept *Department, f Faculty) *FacultyRemovedEvent {
	return &FacultyRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFacultyRemoved, AggregateTypeDepartment, dept.ID),
		FacultyID:       f.ID,
		FacultyName:     f.Name,
	}
}
