package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"ecotech/internal/airquality"
	"ecotech/internal/hr"
	"ecotech/internal/model"
)

// Shell runs the interactive menu loop: banner, bounded login, then the
// main menu. All errors from the service layer are printed here and the
// loop resumes; nothing below this layer prints to the user.
type Shell struct {
	app     *App
	in      *bufio.Scanner
	out     io.Writer
	session *hr.Session
}

// NewShell creates a Shell reading from in and writing to out.
func NewShell(a *App, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		app: a,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run executes the banner, login and main menu. It returns an error only
// when login fails terminally; menu-level errors are printed and the
// loop continues.
func (s *Shell) Run() error {
	s.banner()

	if err := s.login(); err != nil {
		return err
	}

	s.mainLoop()
	return nil
}

func (s *Shell) banner() {
	line := strings.Repeat("=", 70)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "   ECOTECH SOLUTIONS - Sistema de Gestion Ambiental")
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out)
}

// login runs the bounded retry loop. The retry count is a presentation
// policy; the auth flow itself has no attempt state.
func (s *Shell) login() error {
	max := s.app.MaxLoginAttempts()
	fmt.Fprintln(s.out, "LOGIN")
	fmt.Fprintln(s.out)

	for attempt := 1; attempt <= max; attempt++ {
		fmt.Fprintf(s.out, "Intento %d de %d\n", attempt, max)

		identifier := s.prompt("Usuario")
		secret := s.promptSecret("Password")

		if identifier == "" || secret == "" {
			fmt.Fprintln(s.out, "Usuario y password son obligatorios")
			fmt.Fprintln(s.out)
			continue
		}

		session, err := s.app.Service().Login(identifier, secret)
		if err == nil && session.Authenticated() {
			s.session = session
			fmt.Fprintf(s.out, "\nBienvenido %s!\n", session.Username)
			fmt.Fprintf(s.out, "Rol: %s\n\n", session.Role)
			return nil
		}

		if session != nil && session.State == hr.StateRejected {
			fmt.Fprintf(s.out, "\nError: %s\n", session.Reason)
		} else if err != nil {
			fmt.Fprintf(s.out, "\nError: %v\n", err)
		}

		if remaining := max - attempt; remaining > 0 {
			fmt.Fprintf(s.out, "Te quedan %d intentos\n\n", remaining)
		}
	}

	fmt.Fprintln(s.out, "\nACCESO DENEGADO: Maximo de intentos alcanzado")
	return fmt.Errorf("login failed after %d attempts", max)
}

func (s *Shell) mainLoop() {
	for {
		line := strings.Repeat("=", 70)
		fmt.Fprintln(s.out, line)
		fmt.Fprintln(s.out, "   MENU PRINCIPAL")
		fmt.Fprintln(s.out, line)
		fmt.Fprintln(s.out, "   1. Gestionar Usuarios")
		fmt.Fprintln(s.out, "   2. Gestionar Personal")
		fmt.Fprintln(s.out, "   3. Ver Datos Ambientales")
		fmt.Fprintln(s.out, "   4. Exportar Reporte")
		fmt.Fprintln(s.out, "   5. Salir")
		fmt.Fprintln(s.out, line)

		switch s.prompt("Opcion") {
		case "1":
			s.accountsLoop()
		case "2":
			s.personnelLoop()
		case "3":
			s.showAirQuality()
		case "4":
			s.exportReport()
		case "5":
			fmt.Fprintln(s.out, "Hasta luego!")
			return
		default:
			fmt.Fprintln(s.out, "Opcion no valida")
		}
	}
}

// Account management

func (s *Shell) accountsLoop() {
	for {
		sep := strings.Repeat("-", 70)
		fmt.Fprintln(s.out, sep)
		fmt.Fprintln(s.out, "   GESTION DE USUARIOS")
		fmt.Fprintln(s.out, sep)
		fmt.Fprintln(s.out, "   1. Crear nuevo usuario")
		fmt.Fprintln(s.out, "   2. Buscar usuario")
		fmt.Fprintln(s.out, "   3. Listar todos")
		fmt.Fprintln(s.out, "   4. Modificar usuario")
		fmt.Fprintln(s.out, "   5. Eliminar usuario")
		fmt.Fprintln(s.out, "   6. Volver")
		fmt.Fprintln(s.out, sep)

		switch s.prompt("Opcion") {
		case "1":
			s.createAccount()
		case "2":
			s.findAccount()
		case "3":
			s.listAccounts()
		case "4":
			s.modifyAccount()
		case "5":
			s.deleteAccount()
		case "6":
			return
		default:
			fmt.Fprintln(s.out, "Opcion no valida")
		}
	}
}

func (s *Shell) createAccount() {
	username := s.prompt("Nombre de usuario")
	email := s.prompt("Correo")
	role := s.prompt("Rol (enter = usuario)")
	password := s.promptSecret("Password")

	account, err := s.app.Service().CreateAccount(username, email, role, password)
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Usuario '%s' creado (ID: %d)\n", account.Username, account.ID)
}

func (s *Shell) findAccount() {
	username := s.prompt("Nombre de usuario")
	account, err := s.app.Service().GetAccountByUsername(username)
	if err != nil {
		s.printErr(err)
		return
	}
	s.printAccount(account)
}

func (s *Shell) listAccounts() {
	accounts, err := s.app.Service().ListAccounts()
	if err != nil {
		s.printErr(err)
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(s.out, "No hay usuarios registrados")
		return
	}
	for _, account := range accounts {
		s.printAccount(account)
	}
}

func (s *Shell) modifyAccount() {
	id, ok := s.promptID("ID de usuario")
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "Deja en blanco los campos que no quieras cambiar")
	changes := hr.AccountChanges{
		Email:    optional(s.prompt("Nuevo correo")),
		Role:     optional(s.prompt("Nuevo rol")),
		Password: optional(s.promptSecret("Nuevo password")),
	}

	if err := s.app.Service().ModifyAccount(id, changes); err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Usuario ID %d modificado\n", id)
}

func (s *Shell) deleteAccount() {
	id, ok := s.promptID("ID de usuario")
	if !ok {
		return
	}
	if err := s.app.Service().DeleteAccount(id); err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Usuario ID %d eliminado\n", id)
}

func (s *Shell) printAccount(a *model.Account) {
	fmt.Fprintf(s.out, "  #%d  %s  %s  (%s)\n", a.ID, a.Username, a.Email, a.Role)
}

// Personnel management

func (s *Shell) personnelLoop() {
	for {
		sep := strings.Repeat("-", 70)
		fmt.Fprintln(s.out, sep)
		fmt.Fprintln(s.out, "   GESTION DE PERSONAL")
		fmt.Fprintln(s.out, sep)
		fmt.Fprintln(s.out, "   1. Listar departamentos")
		fmt.Fprintln(s.out, "   2. Crear departamento")
		fmt.Fprintln(s.out, "   3. Eliminar departamento")
		fmt.Fprintln(s.out, "   4. Listar proyectos")
		fmt.Fprintln(s.out, "   5. Crear proyecto")
		fmt.Fprintln(s.out, "   6. Listar empleados")
		fmt.Fprintln(s.out, "   7. Crear empleado")
		fmt.Fprintln(s.out, "   8. Eliminar empleado")
		fmt.Fprintln(s.out, "   9. Asignar empleado a proyecto")
		fmt.Fprintln(s.out, "  10. Registrar horas")
		fmt.Fprintln(s.out, "  11. Listar registros de tiempo")
		fmt.Fprintln(s.out, "  12. Volver")
		fmt.Fprintln(s.out, sep)

		switch s.prompt("Opcion") {
		case "1":
			s.listDepartments()
		case "2":
			s.createDepartment()
		case "3":
			s.deleteDepartment()
		case "4":
			s.listProjects()
		case "5":
			s.createProject()
		case "6":
			s.listEmployees()
		case "7":
			s.createEmployee()
		case "8":
			s.deleteEmployee()
		case "9":
			s.assignEmployee()
		case "10":
			s.logTime()
		case "11":
			s.listTimeEntries()
		case "12":
			return
		default:
			fmt.Fprintln(s.out, "Opcion no valida")
		}
	}
}

func (s *Shell) listDepartments() {
	depts, err := s.app.Service().ListDepartments()
	if err != nil {
		s.printErr(err)
		return
	}
	if len(depts) == 0 {
		fmt.Fprintln(s.out, "No hay departamentos")
		return
	}
	for _, d := range depts {
		fmt.Fprintf(s.out, "  %s\n", model.DescribeDepartment(d))
	}
}

func (s *Shell) createDepartment() {
	name := s.prompt("Nombre")
	dept, err := s.app.Service().CreateDepartment(name)
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Departamento '%s' creado (ID: %d)\n", dept.Name, dept.ID)
}

func (s *Shell) deleteDepartment() {
	id, ok := s.promptID("ID de departamento")
	if !ok {
		return
	}
	if err := s.app.Service().DeleteDepartment(id); err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Departamento ID %d eliminado (empleados conservados)\n", id)
}

func (s *Shell) listProjects() {
	projects, err := s.app.Service().ListProjects()
	if err != nil {
		s.printErr(err)
		return
	}
	if len(projects) == 0 {
		fmt.Fprintln(s.out, "No hay proyectos")
		return
	}
	for _, p := range projects {
		fmt.Fprintf(s.out, "  %s\n", model.DescribeProject(p))
	}
}

func (s *Shell) createProject() {
	name := s.prompt("Nombre")
	description := s.prompt("Descripcion")
	project, err := s.app.Service().CreateProject(name, description)
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Proyecto '%s' creado (ID: %d)\n", project.Name, project.ID)
}

func (s *Shell) listEmployees() {
	emps, err := s.app.Service().ListEmployees()
	if err != nil {
		s.printErr(err)
		return
	}
	if len(emps) == 0 {
		fmt.Fprintln(s.out, "No hay empleados")
		return
	}
	for _, e := range emps {
		fmt.Fprintf(s.out, "  %s\n", model.DescribeEmployee(e))
	}
}

func (s *Shell) createEmployee() {
	in := hr.NewEmployee{
		Name:    s.prompt("Nombre"),
		Address: s.prompt("Direccion"),
		Phone:   s.prompt("Telefono"),
		Email:   s.prompt("Correo"),
	}

	if raw := s.prompt("Salario"); raw != "" {
		salary, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Salario no valido")
			return
		}
		in.Salary = salary
	}

	if raw := s.prompt("ID de departamento (enter = ninguno)"); raw != "" {
		deptID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, "ID de departamento no valido")
			return
		}
		in.DepartmentID = &deptID
	}

	in.Password = s.promptSecret("Password")

	emp, err := s.app.Service().CreateEmployee(in)
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "%s creado\n", model.DescribeEmployee(emp))
}

func (s *Shell) deleteEmployee() {
	id, ok := s.promptID("ID de empleado")
	if !ok {
		return
	}
	if err := s.app.Service().DeleteEmployee(id); err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Empleado ID %d eliminado (con asignaciones y registros)\n", id)
}

func (s *Shell) assignEmployee() {
	employeeID, ok := s.promptID("ID de empleado")
	if !ok {
		return
	}
	projectID, ok := s.promptID("ID de proyecto")
	if !ok {
		return
	}
	if err := s.app.Service().AssignEmployeeToProject(employeeID, projectID); err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Empleado %d asignado al proyecto %d\n", employeeID, projectID)
}

func (s *Shell) logTime() {
	employeeID, ok := s.promptID("ID de empleado")
	if !ok {
		return
	}
	projectID, ok := s.promptID("ID de proyecto")
	if !ok {
		return
	}
	date := s.prompt("Fecha (YYYY-MM-DD)")

	hours, err := strconv.ParseFloat(s.prompt("Horas"), 64)
	if err != nil {
		fmt.Fprintln(s.out, "Horas no validas")
		return
	}

	entry, err := s.app.Service().LogTime(employeeID, projectID, date, hours)
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Registro creado (ID: %d)\n", entry.ID)
}

func (s *Shell) listTimeEntries() {
	entries, err := s.app.Service().ListTimeEntries()
	if err != nil {
		s.printErr(err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No hay registros de tiempo")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "  #%d  empleado=%d  proyecto=%d  %s  %.2fh\n",
			e.ID, e.EmployeeID, e.ProjectID, e.Date, e.Hours)
	}
}

// Air quality and report export

func (s *Shell) showAirQuality() {
	city := s.prompt(fmt.Sprintf("Ciudad (enter = %s)", s.app.DefaultCity()))

	reading, err := s.app.FetchAirQuality(city)
	if err != nil {
		fmt.Fprintf(s.out, "Error obteniendo datos: %v\n", err)
		return
	}
	airquality.Render(s.out, reading)
}

func (s *Shell) exportReport() {
	path, err := s.app.ExportTimesheet(s.prompt("Archivo destino (enter = por defecto)"))
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Reporte exportado a %s\n", path)
}

// Prompt helpers

func (s *Shell) prompt(label string) string {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// promptSecret reads without echo when stdin is a terminal, falling back
// to a plain line read otherwise (tests, piped input).
func (s *Shell) promptSecret(label string) string {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprintf(s.out, "%s: ", label)
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(s.out)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(secret))
	}
	return s.prompt(label)
}

func (s *Shell) promptID(label string) (int64, bool) {
	raw := s.prompt(label)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "ID no valido")
		return 0, false
	}
	return id, true
}

func (s *Shell) printErr(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
