package hr

import (
	"fmt"

	"ecotech/internal/apperror"
	"ecotech/internal/model"
	"ecotech/internal/validate"
)

// CreateDepartment creates a department with a unique name.
func (s *HRService) CreateDepartment(name string) (*model.Department, error) {
	if !validate.NonEmpty(name) {
		return nil, apperror.New(apperror.CodeValidation, "department name must not be empty")
	}

	existing, err := s.store.FindDepartmentByName(name)
	if err != nil {
		return nil, fmt.Errorf("checking for existing department: %w", err)
	}
	if existing != nil {
		return nil, apperror.Newf(apperror.CodeConflict, "department %q already exists", name)
	}

	dept, err := s.store.InsertDepartment(name, nil)
	if err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}

	s.logger.Info("department created", "id", dept.ID, "name", dept.Name)
	return dept, nil
}

// GetDepartment returns the department with the given ID.
func (s *HRService) GetDepartment(id int64) (*model.Department, error) {
	dept, err := s.store.FindDepartmentByID(id)
	if err != nil {
		return nil, fmt.Errorf("finding department: %w", err)
	}
	if dept == nil {
		return nil, apperror.Newf(apperror.CodeNotFound, "department %d not found", id)
	}
	return dept, nil
}

// ListDepartments returns all departments.
func (s *HRService) ListDepartments() ([]*model.Department, error) {
	return s.store.ListDepartments()
}

// RenameDepartment changes a department's name, keeping names unique.
func (s *HRService) RenameDepartment(id int64, name string) error {
	if !validate.NonEmpty(name) {
		return apperror.New(apperror.CodeValidation, "department name must not be empty")
	}

	if _, err := s.GetDepartment(id); err != nil {
		return err
	}

	existing, err := s.store.FindDepartmentByName(name)
	if err != nil {
		return fmt.Errorf("checking for existing department: %w", err)
	}
	if existing != nil && existing.ID != id {
		return apperror.Newf(apperror.CodeConflict, "department %q already exists", name)
	}

	if err := s.store.UpdateDepartmentName(id, name); err != nil {
		return fmt.Errorf("renaming department: %w", err)
	}
	return nil
}

// SetDepartmentManager assigns (or clears, when managerID is nil) the
// department's manager. The manager must be an existing employee.
func (s *HRService) SetDepartmentManager(id int64, managerID *int64) error {
	if _, err := s.GetDepartment(id); err != nil {
		return err
	}

	if managerID != nil {
		if _, err := s.GetEmployee(*managerID); err != nil {
			return err
		}
	}

	if err := s.store.UpdateDepartmentManager(id, managerID); err != nil {
		return fmt.Errorf("setting department manager: %w", err)
	}
	return nil
}

// DeleteDepartment removes a department. Employees assigned to it are
// kept, with their department reference nulled out first. The two steps
// commit independently, so a crash in between leaves orphaned employees
// but never a dangling department reference.
func (s *HRService) DeleteDepartment(id int64) error {
	if _, err := s.GetDepartment(id); err != nil {
		return err
	}

	if err := s.store.ClearEmployeeDepartment(id); err != nil {
		return fmt.Errorf("detaching employees: %w", err)
	}
	if err := s.store.DeleteDepartment(id); err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}

	s.logger.Info("department deleted", "id", id)
	return nil
}
