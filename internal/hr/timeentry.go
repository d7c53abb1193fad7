package hr

import (
	"fmt"

	"ecotech/internal/apperror"
	"ecotech/internal/model"
	"ecotech/internal/validate"
)

// LogTime records hours worked by an employee on a project for one
// calendar day. Date and hours are validated before any store access.
func (s *HRService) LogTime(employeeID, projectID int64, date string, hours float64) (*model.TimeEntry, error) {
	if !validate.ISODate(date) {
		return nil, apperror.Newf(apperror.CodeValidation, "invalid date (want YYYY-MM-DD): %q", date)
	}
	if !validate.Hours(hours) {
		return nil, apperror.Newf(apperror.CodeValidation, "hours out of range (0 < h <= 24): %v", hours)
	}

	if _, err := s.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	if _, err := s.GetProject(projectID); err != nil {
		return nil, err
	}

	entry, err := s.store.InsertTimeEntry(employeeID, projectID, date, hours)
	if err != nil {
		return nil, fmt.Errorf("logging time: %w", err)
	}

	s.logger.Info("time logged", "employee_id", employeeID, "project_id", projectID, "date", date, "hours", hours)
	return entry, nil
}

// ListTimeEntries returns every time entry.
func (s *HRService) ListTimeEntries() ([]*model.TimeEntry, error) {
	return s.store.ListTimeEntries()
}

// EmployeeTimeEntries returns the time entries for one employee.
func (s *HRService) EmployeeTimeEntries(employeeID int64) ([]*model.TimeEntry, error) {
	if _, err := s.GetEmployee(employeeID); err != nil {
		return nil, err
	}
	return s.store.ListTimeEntriesByEmployee(employeeID)
}
