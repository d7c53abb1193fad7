// Package store implements the hr.Store contract over database/sql.
// One SQLStore serves both backends: statements use $1 placeholders and
// INSERT ... RETURNING, which SQLite and PostgreSQL both accept, so only
// connection setup and migrations differ per driver.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ecotech/internal/apperror"
	"ecotech/internal/hr"
	"ecotech/internal/model"
)

// SQLStore implements hr.Store on top of a *sql.DB handle.
// Every mutating call auto-commits individually; there is no cross-call
// transaction spanning multiple logical operations.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite3" or "postgres"
}

// New wraps an open, migrated database handle.
// Use OpenSQLite / OpenPostgres for a fully configured store.
func New(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// DB exposes the underlying handle for tests and tools.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

// storeErr tags a database failure with the store error code.
func storeErr(err error, message string) error {
	return apperror.Wrap(apperror.CodeStore, err, message)
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// Department operations

func (s *SQLStore) InsertDepartment(name string, managerID *int64) (*model.Department, error) {
	dept := &model.Department{Name: name, ManagerID: managerID}
	err := s.db.QueryRow(
		`INSERT INTO departments (name, manager_id) VALUES ($1, $2) RETURNING id`,
		name, nullInt64(managerID),
	).Scan(&dept.ID)
	if err != nil {
		return nil, storeErr(err, "inserting department")
	}
	return dept, nil
}

func (s *SQLStore) FindDepartmentByID(id int64) (*model.Department, error) {
	return s.scanDepartment(s.db.QueryRow(
		`SELECT id, name, manager_id FROM departments WHERE id = $1`, id))
}

func (s *SQLStore) FindDepartmentByName(name string) (*model.Department, error) {
	return s.scanDepartment(s.db.QueryRow(
		`SELECT id, name, manager_id FROM departments WHERE name = $1`, name))
}

func (s *SQLStore) scanDepartment(row *sql.Row) (*model.Department, error) {
	var dept model.Department
	var managerID sql.NullInt64
	err := row.Scan(&dept.ID, &dept.Name, &managerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, storeErr(err, "finding department")
	}
	dept.ManagerID = int64Ptr(managerID)
	return &dept, nil
}

func (s *SQLStore) ListDepartments() ([]*model.Department, error) {
	rows, err := s.db.Query(`SELECT id, name, manager_id FROM departments ORDER BY id`)
	if err != nil {
		return nil, storeErr(err, "listing departments")
	}
	defer rows.Close()

	var depts []*model.Department
	for rows.Next() {
		var dept model.Department
		var managerID sql.NullInt64
		if err := rows.Scan(&dept.ID, &dept.Name, &managerID); err != nil {
			return nil, storeErr(err, "scanning department")
		}
		dept.ManagerID = int64Ptr(managerID)
		depts = append(depts, &dept)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "listing departments")
	}
	return depts, nil
}

func (s *SQLStore) UpdateDepartmentName(id int64, name string) error {
	_, err := s.db.Exec(`UPDATE departments SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return storeErr(err, "updating department name")
	}
	return nil
}

func (s *SQLStore) UpdateDepartmentManager(id int64, managerID *int64) error {
	_, err := s.db.Exec(`UPDATE departments SET manager_id = $1 WHERE id = $2`, nullInt64(managerID), id)
	if err != nil {
		return storeErr(err, "updating department manager")
	}
	return nil
}

func (s *SQLStore) DeleteDepartment(id int64) error {
	_, err := s.db.Exec(`DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return storeErr(err, "deleting department")
	}
	return nil
}

func (s *SQLStore) ClearEmployeeDepartment(departmentID int64) error {
	_, err := s.db.Exec(`UPDATE employees SET department_id = NULL WHERE department_id = $1`, departmentID)
	if err != nil {
		return storeErr(err, "clearing employee department")
	}
	return nil
}

// Project operations

func (s *SQLStore) InsertProject(name, description string) (*model.Project, error) {
	project := &model.Project{Name: name, Description: description}
	err := s.db.QueryRow(
		`INSERT INTO projects (name, description) VALUES ($1, $2) RETURNING id`,
		name, description,
	).Scan(&project.ID)
	if err != nil {
		return nil, storeErr(err, "inserting project")
	}
	return project, nil
}

func (s *SQLStore) FindProjectByID(id int64) (*model.Project, error) {
	var project model.Project
	err := s.db.QueryRow(
		`SELECT id, name, description FROM projects WHERE id = $1`, id,
	).Scan(&project.ID, &project.Name, &project.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, storeErr(err, "finding project")
	}
	return &project, nil
}

func (s *SQLStore) ListProjects() ([]*model.Project, error) {
	rows, err := s.db.Query(`SELECT id, name, description FROM projects ORDER BY id`)
	if err != nil {
		return nil, storeErr(err, "listing projects")
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var project model.Project
		if err := rows.Scan(&project.ID, &project.Name, &project.Description); err != nil {
			return nil, storeErr(err, "scanning project")
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "listing projects")
	}
	return projects, nil
}

func (s *SQLStore) UpdateProject(id int64, name, description string) error {
	_, err := s.db.Exec(`UPDATE projects SET name = $1, description = $2 WHERE id = $3`, name, description, id)
	if err != nil {
		return storeErr(err, "updating project")
	}
	return nil
}

func (s *SQLStore) DeleteProject(id int64) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return storeErr(err, "deleting project")
	}
	return nil
}

// Employee operations

func (s *SQLStore) InsertEmployee(name, address, phone, email string, salary float64, passwordDigest string, departmentID *int64) (*model.Employee, error) {
	emp := &model.Employee{
		Name:           name,
		Address:        address,
		Phone:          phone,
		Email:          email,
		Salary:         salary,
		PasswordDigest: passwordDigest,
		DepartmentID:   departmentID,
	}
	err := s.db.QueryRow(
		`INSERT INTO employees (name, address, phone, email, salary, password_digest, department_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		name, address, phone, email, salary, passwordDigest, nullInt64(departmentID),
	).Scan(&emp.ID)
	if err != nil {
		return nil, storeErr(err, "inserting employee")
	}
	return emp, nil
}

func (s *SQLStore) FindEmployeeByID(id int64) (*model.Employee, error) {
	return s.scanEmployee(s.db.QueryRow(
		`SELECT id, name, address, phone, email, salary, password_digest, department_id
		 FROM employees WHERE id = $1`, id))
}

func (s *SQLStore) FindEmployeeByEmail(email string) (*model.Employee, error) {
	return s.scanEmployee(s.db.QueryRow(
		`SELECT id, name, address, phone, email, salary, password_digest, department_id
		 FROM employees WHERE email = $1`, email))
}

func (s *SQLStore) scanEmployee(row *sql.Row) (*model.Employee, error) {
	var emp model.Employee
	var departmentID sql.NullInt64
	err := row.Scan(&emp.ID, &emp.Name, &emp.Address, &emp.Phone, &emp.Email, &emp.Salary, &emp.PasswordDigest, &departmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, storeErr(err, "finding employee")
	}
	emp.DepartmentID = int64Ptr(departmentID)
	return &emp, nil
}

func (s *SQLStore) ListEmployees() ([]*model.Employee, error) {
	rows, err := s.db.Query(
		`SELECT id, name, address, phone, email, salary, password_digest, department_id
		 FROM employees ORDER BY id`)
	if err != nil {
		return nil, storeErr(err, "listing employees")
	}
	defer rows.Close()

	var emps []*model.Employee
	for rows.Next() {
		var emp model.Employee
		var departmentID sql.NullInt64
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Address, &emp.Phone, &emp.Email, &emp.Salary, &emp.PasswordDigest, &departmentID); err != nil {
			return nil, storeErr(err, "scanning employee")
		}
		emp.DepartmentID = int64Ptr(departmentID)
		emps = append(emps, &emp)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "listing employees")
	}
	return emps, nil
}

func (s *SQLStore) UpdateEmployee(id int64, name, address, phone, email string, salary float64, departmentID *int64) error {
	_, err := s.db.Exec(
		`UPDATE employees SET name = $1, address = $2, phone = $3, email = $4, salary = $5, department_id = $6
		 WHERE id = $7`,
		name, address, phone, email, salary, nullInt64(departmentID), id)
	if err != nil {
		return storeErr(err, "updating employee")
	}
	return nil
}

func (s *SQLStore) UpdateEmployeePassword(id int64, passwordDigest string) error {
	_, err := s.db.Exec(`UPDATE employees SET password_digest = $1 WHERE id = $2`, passwordDigest, id)
	if err != nil {
		return storeErr(err, "updating employee password")
	}
	return nil
}

func (s *SQLStore) DeleteEmployee(id int64) error {
	_, err := s.db.Exec(`DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return storeErr(err, "deleting employee")
	}
	return nil
}

// Membership operations

func (s *SQLStore) InsertMembership(employeeID, projectID int64) error {
	// ON CONFLICT DO NOTHING makes re-assignment idempotent.
	_, err := s.db.Exec(
		`INSERT INTO project_members (employee_id, project_id) VALUES ($1, $2)
		 ON CONFLICT (employee_id, project_id) DO NOTHING`,
		employeeID, projectID)
	if err != nil {
		return storeErr(err, "inserting membership")
	}
	return nil
}

func (s *SQLStore) DeleteMembership(employeeID, projectID int64) error {
	_, err := s.db.Exec(
		`DELETE FROM project_members WHERE employee_id = $1 AND project_id = $2`,
		employeeID, projectID)
	if err != nil {
		return storeErr(err, "deleting membership")
	}
	return nil
}

func (s *SQLStore) ListMembershipsByEmployee(employeeID int64) ([]*model.ProjectMembership, error) {
	rows, err := s.db.Query(
		`SELECT id, employee_id, project_id FROM project_members WHERE employee_id = $1 ORDER BY id`,
		employeeID)
	if err != nil {
		return nil, storeErr(err, "listing memberships")
	}
	defer rows.Close()

	var members []*model.ProjectMembership
	for rows.Next() {
		var m model.ProjectMembership
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.ProjectID); err != nil {
			return nil, storeErr(err, "scanning membership")
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "listing memberships")
	}
	return members, nil
}

func (s *SQLStore) DeleteMembershipsByEmployee(employeeID int64) error {
	_, err := s.db.Exec(`DELETE FROM project_members WHERE employee_id = $1`, employeeID)
	if err != nil {
		return storeErr(err, "deleting employee memberships")
	}
	return nil
}

func (s *SQLStore) DeleteMembershipsByProject(projectID int64) error {
	_, err := s.db.Exec(`DELETE FROM project_members WHERE project_id = $1`, projectID)
	if err != nil {
		return storeErr(err, "deleting project memberships")
	}
	return nil
}

func (s *SQLStore) ListProjectsForEmployee(employeeID int64) ([]*model.Project, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.name, p.description FROM projects p
		 JOIN project_members pm ON p.id = pm.project_id
		 WHERE pm.employee_id = $1 ORDER BY p.id`,
		employeeID)
	if err != nil {
		return nil, storeErr(err, "listing employee projects")
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var project model.Project
		if err := rows.Scan(&project.ID, &project.Name, &project.Description); err != nil {
			return nil, storeErr(err, "scanning project")
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "listing employee projects")
	}
	return projects, nil
}

// Time entry operations

func (s *SQLStore) InsertTimeEntry(employeeID, projectID int64, date string, hours float64) (*model.TimeEntry, error) {
	entry := &model.TimeEntry{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		Date:       date,
		Hours:      hours,
	}
	err := s.db.QueryRow(
		`INSERT INTO time_entries (employee_id, project_id, entry_date, hours)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		employeeID, projectID, date, hours,
	).Scan(&entry.ID)
	if err != nil {
		return nil, storeErr(err, "inserting time entry")
	}
	return entry, nil
}

func (s *SQLStore) ListTimeEntries() ([]*model.TimeEntry, error) {
	return s.queryTimeEntries(
		`SELECT id, employee_id, project_id, entry_date, hours FROM time_entries ORDER BY id`)
}

func (s *SQLStore) ListTimeEntriesByEmployee(employeeID int64) ([]*model.TimeEntry, error) {
	return s.queryTimeEntries(
		`SELECT id, employee_id, project_id, entry_date, hours FROM time_entries
		 WHERE employee_id = $1 ORDER BY id`, employeeID)
}

func (s *SQLStore) queryTimeEntries(query string, args ...any) ([]*model.TimeEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storeErr(err, "listing time entries")
	}
	defer rows.Close()

	var entries []*model.TimeEntry
	for rows.Next() {
		var entry model.TimeEntry
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.ProjectID, &entry.Date, &entry.Hours); err != nil {
			return nil, storeErr(err, "scanning time entry")
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "listing time entries")
	}
	return entries, nil
}

func (s *SQLStore) DeleteTimeEntriesByEmployee(employeeID int64) error {
	_, err := s.db.Exec(`DELETE FROM time_entries WHERE employee_id = $1`, employeeID)
	if err != nil {
		return storeErr(err, "deleting employee time entries")
	}
	return nil
}

func (s *SQLStore) DeleteTimeEntriesByProject(projectID int64) error {
	_, err := s.db.Exec(`DELETE FROM time_entries WHERE project_id = $1`, projectID)
	if err != nil {
		return storeErr(err, "deleting project time entries")
	}
	return nil
}

// Account operations

func (s *SQLStore) InsertAccount(username, email, role, passwordDigest string) (*model.Account, error) {
	account := &model.Account{
		Username:       username,
		Email:          email,
		Role:           role,
		PasswordDigest: passwordDigest,
	}
	err := s.db.QueryRow(
		`INSERT INTO accounts (username, email, role, password_digest)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		username, email, role, passwordDigest,
	).Scan(&account.ID)
	if err != nil {
		return nil, storeErr(err, "inserting account")
	}
	return account, nil
}

func (s *SQLStore) FindAccountByID(id int64) (*model.Account, error) {
	return s.scanAccount(s.db.QueryRow(
		`SELECT id, username, email, role, password_digest FROM accounts WHERE id = $1`, id))
}

func (s *SQLStore) FindAccountByUsername(username string) (*model.Account, error) {
	return s.scanAccount(s.db.QueryRow(
		`SELECT id, username, email, role, password_digest FROM accounts WHERE username = $1`, username))
}

func (s *SQLStore) FindAccountByEmail(email string) (*model.Account, error) {
	return s.scanAccount(s.db.QueryRow(
		`SELECT id, username, email, role, password_digest FROM accounts WHERE email = $1`, email))
}

func (s *SQLStore) scanAccount(row *sql.Row) (*model.Account, error) {
	var account model.Account
	err := row.Scan(&account.ID, &account.Username, &account.Email, &account.Role, &account.PasswordDigest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, storeErr(err, "finding account")
	}
	return &account, nil
}

func (s *SQLStore) ListAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query(
		`SELECT id, username, email, role, password_digest FROM accounts ORDER BY id`)
	if err != nil {
		return nil, storeErr(err, "listing accounts")
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var account model.Account
		if err := rows.Scan(&account.ID, &account.Username, &account.Email, &account.Role, &account.PasswordDigest); err != nil {
			return nil, storeErr(err, "scanning account")
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "listing accounts")
	}
	return accounts, nil
}

func (s *SQLStore) UpdateAccount(id int64, email, role, passwordDigest *string) error {
	// Build the SET clause from the supplied fields only.
	var (
		assignments []string
		args        []any
	)
	add := func(column string, value any) {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}
	if email != nil {
		add("email", *email)
	}
	if role != nil {
		add("role", *role)
	}
	if passwordDigest != nil {
		add("password_digest", *passwordDigest)
	}
	if len(assignments) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE accounts SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args))
	if _, err := s.db.Exec(query, args...); err != nil {
		return storeErr(err, "updating account")
	}
	return nil
}

func (s *SQLStore) DeleteAccount(id int64) error {
	_, err := s.db.Exec(`DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return storeErr(err, "deleting account")
	}
	return nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Compile-time check that SQLStore implements the hr.Store interface
var _ hr.Store = (*SQLStore)(nil)
