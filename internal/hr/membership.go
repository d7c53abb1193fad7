package hr

import (
	"fmt"

	"ecotech/internal/model"
)

// AssignEmployeeToProject links an employee to a project. Assigning an
// already linked pair is a no-op, so re-assignment is idempotent.
func (s *HRService) AssignEmployeeToProject(employeeID, projectID int64) error {
	if _, err := s.GetEmployee(employeeID); err != nil {
		return err
	}
	if _, err := s.GetProject(projectID); err != nil {
		return err
	}

	if err := s.store.InsertMembership(employeeID, projectID); err != nil {
		return fmt.Errorf("assigning employee to project: %w", err)
	}

	s.logger.Info("employee assigned to project", "employee_id", employeeID, "project_id", projectID)
	return nil
}

// UnassignEmployeeFromProject removes the link between an employee and a
// project. Removing a link that does not exist is a no-op.
func (s *HRService) UnassignEmployeeFromProject(employeeID, projectID int64) error {
	if err := s.store.DeleteMembership(employeeID, projectID); err != nil {
		return fmt.Errorf("unassigning employee from project: %w", err)
	}
	return nil
}

// EmployeeMemberships returns the membership rows for an employee.
func (s *HRService) EmployeeMemberships(employeeID int64) ([]*model.ProjectMembership, error) {
	return s.store.ListMembershipsByEmployee(employeeID)
}
