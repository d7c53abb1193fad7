package hr

import "ecotech/internal/model"

// Store is the relational persistence contract for the service layer.
// Finders return (nil, nil) when no row matches; every failure carries
// the apperror store code. Implementations live in internal/store.
type Store interface {
	// Departments
	InsertDepartment(name string, managerID *int64) (*model.Department, error)
	FindDepartmentByID(id int64) (*model.Department, error)
	FindDepartmentByName(name string) (*model.Department, error)
	ListDepartments() ([]*model.Department, error)
	UpdateDepartmentName(id int64, name string) error
	UpdateDepartmentManager(id int64, managerID *int64) error
	DeleteDepartment(id int64) error
	// ClearEmployeeDepartment nulls out department_id on every employee
	// referencing the department.
	ClearEmployeeDepartment(departmentID int64) error

	// Projects
	InsertProject(name, description string) (*model.Project, error)
	FindProjectByID(id int64) (*model.Project, error)
	ListProjects() ([]*model.Project, error)
	UpdateProject(id int64, name, description string) error
	DeleteProject(id int64) error

	// Employees
	InsertEmployee(name, address, phone, email string, salary float64, passwordDigest string, departmentID *int64) (*model.Employee, error)
	FindEmployeeByID(id int64) (*model.Employee, error)
	FindEmployeeByEmail(email string) (*model.Employee, error)
	ListEmployees() ([]*model.Employee, error)
	UpdateEmployee(id int64, name, address, phone, email string, salary float64, departmentID *int64) error
	UpdateEmployeePassword(id int64, passwordDigest string) error
	DeleteEmployee(id int64) error

	// Project memberships
	// InsertMembership is idempotent on the (employee, project) pair.
	InsertMembership(employeeID, projectID int64) error
	DeleteMembership(employeeID, projectID int64) error
	ListMembershipsByEmployee(employeeID int64) ([]*model.ProjectMembership, error)
	DeleteMembershipsByEmployee(employeeID int64) error
	DeleteMembershipsByProject(projectID int64) error
	ListProjectsForEmployee(employeeID int64) ([]*model.Project, error)

	// Time entries
	InsertTimeEntry(employeeID, projectID int64, date string, hours float64) (*model.TimeEntry, error)
	ListTimeEntries() ([]*model.TimeEntry, error)
	ListTimeEntriesByEmployee(employeeID int64) ([]*model.TimeEntry, error)
	DeleteTimeEntriesByEmployee(employeeID int64) error
	DeleteTimeEntriesByProject(projectID int64) error

	// Accounts
	InsertAccount(username, email, role, passwordDigest string) (*model.Account, error)
	FindAccountByID(id int64) (*model.Account, error)
	FindAccountByUsername(username string) (*model.Account, error)
	FindAccountByEmail(email string) (*model.Account, error)
	ListAccounts() ([]*model.Account, error)
	// UpdateAccount rewrites only the non-nil fields.
	UpdateAccount(id int64, email, role, passwordDigest *string) error
	DeleteAccount(id int64) error

	Close() error
}
