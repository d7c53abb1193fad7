package hr_test

import (
	"testing"

	"ecotech/internal/apperror"
	"ecotech/internal/hr"
	"ecotech/internal/testutil"
)

func TestHRService_CreateDepartment(t *testing.T) {
	t.Run("creates department", func(t *testing.T) {
		svc := testutil.NewTestService(t)

		dept, err := svc.CreateDepartment("Desarrollo")
		if err != nil {
			t.Fatalf("CreateDepartment() error = %v", err)
		}
		if dept.ID == 0 {
			t.Error("ID is zero")
		}
		if dept.Name != "Desarrollo" {
			t.Errorf("Name = %q, want Desarrollo", dept.Name)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		svc := testutil.NewTestService(t)

		_, err := svc.CreateDepartment("   ")
		if code := apperror.GetCode(err); code != apperror.CodeValidation {
			t.Errorf("error code = %v, want %v", code, apperror.CodeValidation)
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		svc := testutil.NewTestService(t)

		if _, err := svc.CreateDepartment("Ops"); err != nil {
			t.Fatalf("first CreateDepartment() error = %v", err)
		}

		_, err := svc.CreateDepartment("Ops")
		if code := apperror.GetCode(err); code != apperror.CodeConflict {
			t.Errorf("error code = %v, want %v", code, apperror.CodeConflict)
		}

		depts, err := svc.ListDepartments()
		if err != nil {
			t.Fatalf("ListDepartments() error = %v", err)
		}
		if len(depts) != 1 {
			t.Errorf("department count = %d, want 1", len(depts))
		}
	})
}

func TestHRService_DeleteDepartment(t *testing.T) {
	t.Run("keeps employees and nulls their reference", func(t *testing.T) {
		svc := testutil.NewTestService(t)

		dept, err := svc.CreateDepartment("Ops")
		if err != nil {
			t.Fatalf("CreateDepartment() error = %v", err)
		}

		emp, err := svc.CreateEmployee(hr.NewEmployee{
			Name:         "Ana",
			Email:        "ana@example.com",
			Password:     "secret1",
			DepartmentID: &dept.ID,
		})
		if err != nil {
			t.Fatalf("CreateEmployee() error = %v", err)
		}

		if err := svc.DeleteDepartment(dept.ID); err != nil {
			t.Fatalf("DeleteDepartment() error = %v", err)
		}

		// Department is gone
		_, err = svc.GetDepartment(dept.ID)
		if code := apperror.GetCode(err); code != apperror.CodeNotFound {
			t.Errorf("GetDepartment() code = %v, want %v", code, apperror.CodeNotFound)
		}

		// Employee survives with department_id nulled out
		got, err := svc.GetEmployee(emp.ID)
		if err != nil {
			t.Fatalf("GetEmployee() error = %v", err)
		}
		if got.DepartmentID != nil {
			t.Errorf("DepartmentID = %v, want nil", *got.DepartmentID)
		}
	})

	t.Run("unknown department is not found", func(t *testing.T) {
		svc := testutil.NewTestService(t)

		err := svc.DeleteDepartment(999)
		if code := apperror.GetCode(err); code != apperror.CodeNotFound {
			t.Errorf("error code = %v, want %v", code, apperror.CodeNotFound)
		}
	})
}

func TestHRService_SetDepartmentManager(t *testing.T) {
	svc := testutil.NewTestService(t)

	dept, err := svc.CreateDepartment("Ops")
	if err != nil {
		t.Fatalf("CreateDepartment() error = %v", err)
	}

	emp, err := svc.CreateEmployee(hr.NewEmployee{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}

	if err := svc.SetDepartmentManager(dept.ID, &emp.ID); err != nil {
		t.Fatalf("SetDepartmentManager() error = %v", err)
	}

	got, err := svc.GetDepartment(dept.ID)
	if err != nil {
		t.Fatalf("GetDepartment() error = %v", err)
	}
	if got.ManagerID == nil || *got.ManagerID != emp.ID {
		t.Errorf("ManagerID = %v, want %d", got.ManagerID, emp.ID)
	}

	// Clearing the manager
	if err := svc.SetDepartmentManager(dept.ID, nil); err != nil {
		t.Fatalf("SetDepartmentManager(nil) error = %v", err)
	}
	got, err = svc.GetDepartment(dept.ID)
	if err != nil {
		t.Fatalf("GetDepartment() error = %v", err)
	}
	if got.ManagerID != nil {
		t.Errorf("ManagerID = %v, want nil", *got.ManagerID)
	}
}

func TestHRService_RenameDepartment(t *testing.T) {
	svc := testutil.NewTestService(t)

	dept, err := svc.CreateDepartment("Ops")
	if err != nil {
		t.Fatalf("CreateDepartment() error = %v", err)
	}
	other, err := svc.CreateDepartment("Dev")
	if err != nil {
		t.Fatalf("CreateDepartment() error = %v", err)
	}

	if err := svc.RenameDepartment(dept.ID, "Operations"); err != nil {
		t.Fatalf("RenameDepartment() error = %v", err)
	}

	got, err := svc.GetDepartment(dept.ID)
	if err != nil {
		t.Fatalf("GetDepartment() error = %v", err)
	}
	if got.Name != "Operations" {
		t.Errorf("Name = %q, want Operations", got.Name)
	}

	// Renaming onto an existing name conflicts
	err = svc.RenameDepartment(other.ID, "Operations")
	if code := apperror.GetCode(err); code != apperror.CodeConflict {
		t.Errorf("error code = %v, want %v", code, apperror.CodeConflict)
	}
}
