package hr

import (
	"fmt"

	"ecotech/internal/apperror"
	"ecotech/internal/model"
	"ecotech/internal/validate"
)

// NewEmployee carries the caller-supplied fields for employee creation.
// Password is the plaintext secret; it is digested before any store
// access and never persisted as-is.
type NewEmployee struct {
	Name         string
	Address      string
	Phone        string
	Email        string
	Salary       float64
	Password     string
	DepartmentID *int64
}

// CreateEmployee validates the input, enforces email uniqueness and
// inserts the employee with a freshly digested password.
func (s *HRService) CreateEmployee(in NewEmployee) (*model.Employee, error) {
	if !validate.NonEmpty(in.Name) {
		return nil, apperror.New(apperror.CodeValidation, "employee name must not be empty")
	}
	if !validate.Email(in.Email) {
		return nil, apperror.Newf(apperror.CodeValidation, "invalid email: %q", in.Email)
	}

	existing, err := s.store.FindEmployeeByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("checking for existing employee: %w", err)
	}
	if existing != nil {
		return nil, apperror.Newf(apperror.CodeConflict, "employee with email %q already exists", in.Email)
	}

	if in.DepartmentID != nil {
		if _, err := s.GetDepartment(*in.DepartmentID); err != nil {
			return nil, err
		}
	}

	digest, err := s.employeeHasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	emp, err := s.store.InsertEmployee(in.Name, in.Address, in.Phone, in.Email, in.Salary, digest, in.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	s.logger.Info("employee created", "id", emp.ID, "email", emp.Email)
	return emp, nil
}

// GetEmployee returns the employee with the given ID.
func (s *HRService) GetEmployee(id int64) (*model.Employee, error) {
	emp, err := s.store.FindEmployeeByID(id)
	if err != nil {
		return nil, fmt.Errorf("finding employee: %w", err)
	}
	if emp == nil {
		return nil, apperror.Newf(apperror.CodeNotFound, "employee %d not found", id)
	}
	return emp, nil
}

// GetEmployeeByEmail returns the employee with the given unique email.
func (s *HRService) GetEmployeeByEmail(email string) (*model.Employee, error) {
	emp, err := s.store.FindEmployeeByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("finding employee: %w", err)
	}
	if emp == nil {
		return nil, apperror.Newf(apperror.CodeNotFound, "employee with email %q not found", email)
	}
	return emp, nil
}

// ListEmployees returns all employees.
func (s *HRService) ListEmployees() ([]*model.Employee, error) {
	return s.store.ListEmployees()
}

// UpdateEmployee rewrites an employee's profile fields. The password is
// untouched; use ChangeEmployeePassword for that.
func (s *HRService) UpdateEmployee(id int64, name, address, phone, email string, salary float64, departmentID *int64) error {
	if !validate.NonEmpty(name) {
		return apperror.New(apperror.CodeValidation, "employee name must not be empty")
	}
	if !validate.Email(email) {
		return apperror.Newf(apperror.CodeValidation, "invalid email: %q", email)
	}

	if _, err := s.GetEmployee(id); err != nil {
		return err
	}

	existing, err := s.store.FindEmployeeByEmail(email)
	if err != nil {
		return fmt.Errorf("checking for existing employee: %w", err)
	}
	if existing != nil && existing.ID != id {
		return apperror.Newf(apperror.CodeConflict, "employee with email %q already exists", email)
	}

	if departmentID != nil {
		if _, err := s.GetDepartment(*departmentID); err != nil {
			return err
		}
	}

	if err := s.store.UpdateEmployee(id, name, address, phone, email, salary, departmentID); err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	return nil
}

// ChangeEmployeePassword re-digests and stores a new password.
func (s *HRService) ChangeEmployeePassword(id int64, password string) error {
	if _, err := s.GetEmployee(id); err != nil {
		return err
	}

	digest, err := s.employeeHasher.Hash(password)
	if err != nil {
		return err
	}

	if err := s.store.UpdateEmployeePassword(id, digest); err != nil {
		return fmt.Errorf("updating employee password: %w", err)
	}

	s.logger.Info("employee password changed", "id", id)
	return nil
}

// DeleteEmployee removes an employee and everything hanging off the
// record: project memberships first, then time entries, then the row
// itself. The steps commit independently (best-effort cascade).
func (s *HRService) DeleteEmployee(id int64) error {
	if _, err := s.GetEmployee(id); err != nil {
		return err
	}

	if err := s.store.DeleteMembershipsByEmployee(id); err != nil {
		return fmt.Errorf("deleting employee memberships: %w", err)
	}
	if err := s.store.DeleteTimeEntriesByEmployee(id); err != nil {
		return fmt.Errorf("deleting employee time entries: %w", err)
	}
	if err := s.store.DeleteEmployee(id); err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	s.logger.Info("employee deleted", "id", id)
	return nil
}

// EmployeeProjects returns the projects the employee is assigned to.
func (s *HRService) EmployeeProjects(employeeID int64) ([]*model.Project, error) {
	if _, err := s.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	return s.store.ListProjectsForEmployee(employeeID)
}
