package model

import "fmt"

// Department groups employees under an optional manager.
type Department struct {
	ID        int64
	Name      string // Unique
	ManagerID *int64 // Employee ID, nil when unassigned
}

// Project is a unit of work employees can be assigned to.
type Project struct {
	ID          int64
	Name        string
	Description string
}

// Employee is a staff record. PasswordDigest is always set at creation
// and holds a digest, never the plaintext.
type Employee struct {
	ID             int64
	Name           string
	Address        string
	Phone          string
	Email          string // Unique
	Salary         float64
	PasswordDigest string
	DepartmentID   *int64 // nil when the department was deleted or never set
}

// ProjectMembership links an employee to a project.
// The (EmployeeID, ProjectID) pair is unique.
type ProjectMembership struct {
	ID         int64
	EmployeeID int64
	ProjectID  int64
}

// TimeEntry records hours worked by an employee on a project for one day.
type TimeEntry struct {
	ID         int64
	EmployeeID int64
	ProjectID  int64
	Date       string // ISO calendar day, YYYY-MM-DD
	Hours      float64
}

// Account is a login identity for the interactive tool.
// Username and Email are each unique.
type Account struct {
	ID             int64
	Username       string
	Email          string
	Role           string
	PasswordDigest string
}

// DescribeEmployee renders the descriptive label for an employee record.
func DescribeEmployee(e *Employee) string {
	id := "N/A"
	if e.ID != 0 {
		id = fmt.Sprintf("%d", e.ID)
	}
	return fmt.Sprintf("Empleado #%s: %s - %s", id, e.Name, e.Email)
}

// DescribeDepartment renders the descriptive label for a department.
func DescribeDepartment(d *Department) string {
	return fmt.Sprintf("Departamento #%d: %s", d.ID, d.Name)
}

// DescribeProject renders the descriptive label for a project.
func DescribeProject(p *Project) string {
	return fmt.Sprintf("Proyecto #%d: %s", p.ID, p.Name)
}
