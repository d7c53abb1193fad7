package app

import (
	"fmt"
	"io"

	"ecotech/internal/hr"
)

// Seed populates example data for quick manual testing. When the store
// already holds departments it only reports the current row counts and
// leaves the data untouched.
func (a *App) Seed(out io.Writer) error {
	svc := a.service

	existing, err := svc.ListDepartments()
	if err != nil {
		return fmt.Errorf("checking for existing data: %w", err)
	}
	if len(existing) > 0 {
		projects, _ := svc.ListProjects()
		employees, _ := svc.ListEmployees()
		entries, _ := svc.ListTimeEntries()
		fmt.Fprintln(out, "La base de datos ya contiene datos:")
		fmt.Fprintf(out, "  - %d departamentos\n", len(existing))
		fmt.Fprintf(out, "  - %d proyectos\n", len(projects))
		fmt.Fprintf(out, "  - %d empleados\n", len(employees))
		fmt.Fprintf(out, "  - %d registros\n", len(entries))
		return nil
	}

	dev, err := svc.CreateDepartment("Desarrollo")
	if err != nil {
		return err
	}
	rrhh, err := svc.CreateDepartment("Recursos Humanos")
	if err != nil {
		return err
	}

	portal, err := svc.CreateProject("Portal Web", "Desarrollo del portal cliente")
	if err != nil {
		return err
	}
	infra, err := svc.CreateProject("Infraestructura", "Migracion a la nube")
	if err != nil {
		return err
	}

	ana, err := svc.CreateEmployee(hr.NewEmployee{
		Name:         "Ana Garcia",
		Address:      "Calle Falsa 123",
		Phone:        "+56912345678",
		Email:        "ana@ecotech.com",
		Salary:       1800,
		Password:     "secreto1",
		DepartmentID: &dev.ID,
	})
	if err != nil {
		return err
	}

	juan, err := svc.CreateEmployee(hr.NewEmployee{
		Name:         "Juan Administrador",
		Address:      "Av. Principal 456",
		Phone:        "+56987654321",
		Email:        "admin@ecotech.com",
		Salary:       2500,
		Password:     "admin2025",
		DepartmentID: &rrhh.ID,
	})
	if err != nil {
		return err
	}

	if err := svc.SetDepartmentManager(dev.ID, &juan.ID); err != nil {
		return err
	}

	if err := svc.AssignEmployeeToProject(ana.ID, portal.ID); err != nil {
		return err
	}
	if err := svc.AssignEmployeeToProject(juan.ID, infra.ID); err != nil {
		return err
	}

	if _, err := svc.LogTime(ana.ID, portal.ID, "2025-12-01", 7.5); err != nil {
		return err
	}
	if _, err := svc.LogTime(juan.ID, infra.ID, "2025-12-02", 8); err != nil {
		return err
	}

	if _, err := svc.CreateAccount("admin", "admin@ecotech.com", "admin", "admin2025"); err != nil {
		return err
	}

	fmt.Fprintln(out, "Datos de ejemplo creados:")
	fmt.Fprintln(out, "  Usuario: admin")
	fmt.Fprintln(out, "  Password: admin2025")
	return nil
}
