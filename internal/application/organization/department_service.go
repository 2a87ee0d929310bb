package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/facultyfeedback/backend/internal/domain/organization"
	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DepartmentService handles department and faculty roster administration
type DepartmentService struct {
	departmentRepo organization.DepartmentRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(
	departmentRepo organization.DepartmentRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Create creates a new department with an empty roster
func (s *DepartmentService) Create(ctx context.Context, req CreateDepartmentRequest) (*DepartmentResponse, error) {
	dept, err := organization.NewDepartment(req.Name, req.FullName)
	if err != nil {
		return nil, err
	}

	exists, err := s.departmentRepo.ExistsByName(ctx, dept.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Department already exists")
	}

	if err := s.departmentRepo.Save(ctx, dept); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Department already exists")
		}
		return nil, fmt.Errorf("save department: %w", err)
	}
	s.publish(ctx, dept)

	s.logger.Info("Department created",
		zap.String("department_id", dept.ID.String()),
		zap.String("name", dept.Name),
	)

	response := ToDepartmentResponse(dept)
	return &response, nil
}

// Update renames a department. Existing surveys keep the name they were created with.
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, req UpdateDepartmentRequest) (*DepartmentResponse, error) {
	dept, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Department")
	}

	previous := dept.Name
	if err := dept.Update(req.Name, req.FullName); err != nil {
		return nil, err
	}
	if dept.Name != previous {
		exists, err := s.departmentRepo.ExistsByName(ctx, dept.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Department already exists")
		}
	}

	if err := s.departmentRepo.Save(ctx, dept); err != nil {
		return nil, fmt.Errorf("save department: %w", err)
	}
	s.publish(ctx, dept)

	response := ToDepartmentResponse(dept)
	return &response, nil
}

// Delete removes a department and its whole roster. Without confirm nothing
// is removed and the outcome asks for confirmation.
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID, confirm bool) (*shared.DeleteOutcome, error) {
	dept, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Department")
	}

	if !confirm {
		return shared.ConfirmationRequired(fmt.Sprintf(
			"Are you sure you want to delete the %q department? All faculties in this department will also be deleted.",
			dept.Name)), nil
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return nil, notFoundAs(err, "Department")
	}
	dept.MarkDeleted()
	s.publish(ctx, dept)

	s.logger.Info("Department deleted",
		zap.String("department_id", id.String()),
		zap.String("name", dept.Name),
		zap.Int("faculties_removed", dept.FacultyCount()),
	)
	return shared.Deleted("Department deleted successfully"), nil
}

// GetByID returns a department with its roster
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error) {
	dept, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Department")
	}
	response := ToDepartmentResponse(dept)
	return &response, nil
}

// List returns every department in creation order
func (s *DepartmentService) List(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DepartmentResponse, len(depts))
	for i := range depts {
		out[i] = ToDepartmentResponse(&depts[i])
	}
	return out, nil
}

// AddFaculty adds a faculty member to a department roster
func (s *DepartmentService) AddFaculty(ctx context.Context, departmentID uuid.UUID, req AddFacultyRequest) (*FacultyResponse, error) {
	dept, err := s.departmentRepo.FindByID(ctx, departmentID)
	if err != nil {
		return nil, notFoundAs(err, "Department")
	}

	faculty, err := dept.AddFaculty(req.Name, req.Subject)
	if err != nil {
		return nil, err
	}
	if err := s.departmentRepo.AddFaculty(ctx, dept.ID, faculty); err != nil {
		return nil, fmt.Errorf("add faculty: %w", err)
	}
	s.publish(ctx, dept)

	response := ToFacultyResponse(*faculty)
	return &response, nil
}

// RemoveFaculty removes a faculty member. Without confirm nothing is removed.
// Surveys keep their snapshot of the faculty, but in-flight sessions that
// selected them will fail re-validation.
func (s *DepartmentService) RemoveFaculty(ctx context.Context, departmentID, facultyID uuid.UUID, confirm bool) (*shared.DeleteOutcome, error) {
	dept, err := s.departmentRepo.FindByID(ctx, departmentID)
	if err != nil {
		return nil, notFoundAs(err, "Department")
	}
	if !dept.HasFaculty(facultyID) {
		return nil, shared.NewNotFoundError("Faculty")
	}

	if !confirm {
		return shared.ConfirmationRequired("Are you sure you want to remove this faculty?"), nil
	}

	if err := dept.RemoveFaculty(facultyID); err != nil {
		return nil, err
	}
	if err := s.departmentRepo.RemoveFaculty(ctx, departmentID, facultyID); err != nil {
		return nil, notFoundAs(err, "Faculty")
	}
	s.publish(ctx, dept)

	return shared.Deleted("Faculty removed successfully"), nil
}

// LiveDepartment returns the current department and roster for a name.
// An exact match is preferred; otherwise names are compared ignoring case.
func (s *DepartmentService) LiveDepartment(ctx context.Context, name string) (*organization.Department, error) {
	dept, err := s.departmentRepo.FindByName(ctx, name)
	if err == nil {
		return dept, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	all, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if shared.FoldEqual(all[i].Name, name) {
			return &all[i], nil
		}
	}
	return nil, shared.NewNotFoundError("Department")
}

func (s *DepartmentService) publish(ctx context.Context, dept *organization.Department) {
	if err := shared.PublishAndClear(ctx, s.eventPublisher, dept); err != nil {
		s.logger.Warn("Failed to publish department events",
			zap.String("department_id", dept.ID.String()),
			zap.Error(err),
		)
	}
}

// notFoundAs names the resource on a not-found error and passes anything else through
func notFoundAs(err error, resource string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewNotFoundError(resource)
	}
	return err
}
