package hr_test

import (
	"testing"

	"ecotech/internal/apperror"
	"ecotech/internal/hr"
	"ecotech/internal/testutil"
)

func TestHRService_LogTime(t *testing.T) {
	setup := func(t *testing.T) (*hr.HRService, int64, int64) {
		svc := testutil.NewTestService(t)
		emp, err := svc.CreateEmployee(hr.NewEmployee{
			Name: "Ana", Email: "ana@ecotech.com", Password: "secreto1",
		})
		if err != nil {
			t.Fatalf("CreateEmployee() error = %v", err)
		}
		proj, err := svc.CreateProject("Portal Web", "")
		if err != nil {
			t.Fatalf("CreateProject() error = %v", err)
		}
		return svc, emp.ID, proj.ID
	}

	t.Run("logs a valid entry", func(t *testing.T) {
		svc, empID, projID := setup(t)

		entry, err := svc.LogTime(empID, projID, "2025-12-01", 7.5)
		if err != nil {
			t.Fatalf("LogTime() error = %v", err)
		}
		if entry.ID == 0 {
			t.Error("ID is zero")
		}
		if entry.Date != "2025-12-01" || entry.Hours != 7.5 {
			t.Errorf("got Date=%q Hours=%v, want 2025-12-01 7.5", entry.Date, entry.Hours)
		}
	})

	t.Run("rejects bad dates and hours before touching the store", func(t *testing.T) {
		svc, empID, projID := setup(t)

		cases := []struct {
			name  string
			date  string
			hours float64
		}{
			{"wrong date order", "02-12-2025", 8},
			{"slash separators", "2025/12/02", 8},
			{"zero hours", "2025-12-02", 0},
			{"negative hours", "2025-12-02", -1},
			{"too many hours", "2025-12-02", 25},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.LogTime(empID, projID, tc.date, tc.hours)
				if code := apperror.GetCode(err); code != apperror.CodeValidation {
					t.Errorf("error code = %v, want %v", code, apperror.CodeValidation)
				}
			})
		}

		entries, err := svc.ListTimeEntries()
		if err != nil {
			t.Fatalf("ListTimeEntries() error = %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("entry count = %d, want 0", len(entries))
		}
	})

	t.Run("rejects unknown employee or project", func(t *testing.T) {
		svc, empID, projID := setup(t)

		_, err := svc.LogTime(999, projID, "2025-12-01", 8)
		if code := apperror.GetCode(err); code != apperror.CodeNotFound {
			t.Errorf("unknown employee code = %v, want %v", code, apperror.CodeNotFound)
		}
		_, err = svc.LogTime(empID, 999, "2025-12-01", 8)
		if code := apperror.GetCode(err); code != apperror.CodeNotFound {
			t.Errorf("unknown project code = %v, want %v", code, apperror.CodeNotFound)
		}
	})
}

func TestHRService_EmployeeTimeEntries(t *testing.T) {
	svc := testutil.NewTestService(t)

	ana, err := svc.CreateEmployee(hr.NewEmployee{
		Name: "Ana", Email: "ana@ecotech.com", Password: "secreto1",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}
	juan, err := svc.CreateEmployee(hr.NewEmployee{
		Name: "Juan", Email: "juan@ecotech.com", Password: "secreto2",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}
	proj, err := svc.CreateProject("Portal Web", "")
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	if _, err := svc.LogTime(ana.ID, proj.ID, "2025-12-01", 7.5); err != nil {
		t.Fatalf("LogTime() error = %v", err)
	}
	if _, err := svc.LogTime(ana.ID, proj.ID, "2025-12-02", 8); err != nil {
		t.Fatalf("LogTime() error = %v", err)
	}
	if _, err := svc.LogTime(juan.ID, proj.ID, "2025-12-02", 6); err != nil {
		t.Fatalf("LogTime() error = %v", err)
	}

	entries, err := svc.EmployeeTimeEntries(ana.ID)
	if err != nil {
		t.Fatalf("EmployeeTimeEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.EmployeeID != ana.ID {
			t.Errorf("entry %d belongs to %d, want %d", e.ID, e.EmployeeID, ana.ID)
		}
	}
}
