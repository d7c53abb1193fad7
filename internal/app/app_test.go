package app

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"ecotech/internal/config"
)

// newTestApp wires an App on the in-memory backend. Employee digests
// use sha256 to keep the seed fast; account digests stay bcrypt as in
// production.
func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := config.NewConfig(t.TempDir())
	cfg.Storage = config.StorageConfig{Type: "memory"}
	cfg.Auth.EmployeeHash = "sha256"

	a, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	t.Cleanup(func() {
		a.Close()
	})
	return a
}

func TestApp_Seed(t *testing.T) {
	a := newTestApp(t)

	if err := a.Seed(io.Discard); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	depts, err := a.Service().ListDepartments()
	if err != nil {
		t.Fatalf("ListDepartments() error = %v", err)
	}
	if len(depts) != 2 {
		t.Errorf("department count = %d, want 2", len(depts))
	}

	employees, err := a.Service().ListEmployees()
	if err != nil {
		t.Fatalf("ListEmployees() error = %v", err)
	}
	if len(employees) != 2 {
		t.Errorf("employee count = %d, want 2", len(employees))
	}

	session, err := a.Service().Login("admin", "admin2025")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !session.Authenticated() {
		t.Errorf("seeded admin cannot log in: state = %v", session.State)
	}

	// Seeding twice must not duplicate data
	if err := a.Seed(io.Discard); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	depts, err = a.Service().ListDepartments()
	if err != nil {
		t.Fatalf("ListDepartments() error = %v", err)
	}
	if len(depts) != 2 {
		t.Errorf("department count after reseed = %d, want 2", len(depts))
	}
}

func TestApp_ExportTimesheet(t *testing.T) {
	a := newTestApp(t)

	if err := a.Seed(io.Discard); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	path, err := a.ExportTimesheet("")
	if err != nil {
		t.Fatalf("ExportTimesheet() error = %v", err)
	}
	if filepath.Base(path) != "reporte_timesheets.csv" {
		t.Errorf("default report name = %q, want reporte_timesheets.csv", filepath.Base(path))
	}
}

func TestShell_Login(t *testing.T) {
	t.Run("authenticates and exits", func(t *testing.T) {
		a := newTestApp(t)
		if err := a.Seed(io.Discard); err != nil {
			t.Fatalf("Seed() error = %v", err)
		}

		in := strings.NewReader("admin\nadmin2025\n5\n")
		var out bytes.Buffer

		if err := NewShell(a, in, &out).Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if !strings.Contains(out.String(), "Bienvenido admin!") {
			t.Errorf("output missing welcome line:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "Hasta luego!") {
			t.Errorf("output missing exit line:\n%s", out.String())
		}
	})

	t.Run("denies access after max attempts", func(t *testing.T) {
		a := newTestApp(t)
		if err := a.Seed(io.Discard); err != nil {
			t.Fatalf("Seed() error = %v", err)
		}

		in := strings.NewReader("admin\nwrong\nadmin\nwrong\nadmin\nwrong\n")
		var out bytes.Buffer

		err := NewShell(a, in, &out).Run()
		if err == nil {
			t.Fatal("Run() expected error after exhausted attempts")
		}

		if !strings.Contains(out.String(), "ACCESO DENEGADO") {
			t.Errorf("output missing denial line:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "Te quedan 2 intentos") {
			t.Errorf("output missing remaining-attempts line:\n%s", out.String())
		}
	})
}
