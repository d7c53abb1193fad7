package hr_test

import (
	"testing"

	"ecotech/internal/apperror"
	"ecotech/internal/hr"
	"ecotech/internal/testutil"
)

func TestHRService_Login(t *testing.T) {
	setup := func(t *testing.T) *hr.HRService {
		svc := testutil.NewTestService(t)
		_, err := svc.CreateAccount("admin", "admin@ecotech.com", "administrador", "admin2025")
		if err != nil {
			t.Fatalf("CreateAccount() error = %v", err)
		}
		return svc
	}

	t.Run("authenticates by username", func(t *testing.T) {
		svc := setup(t)

		session, err := svc.Login("admin", "admin2025")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if !session.Authenticated() {
			t.Fatalf("State = %v, want %v", session.State, hr.StateAuthenticated)
		}
		if session.Username != "admin" {
			t.Errorf("Username = %q, want admin", session.Username)
		}
		if session.Role != "administrador" {
			t.Errorf("Role = %q, want administrador", session.Role)
		}
		if session.ID == "" {
			t.Error("session ID is empty")
		}
	})

	t.Run("authenticates by email", func(t *testing.T) {
		svc := setup(t)

		session, err := svc.Login("admin@ecotech.com", "admin2025")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if !session.Authenticated() {
			t.Fatalf("State = %v, want %v", session.State, hr.StateAuthenticated)
		}
	})

	t.Run("rejects bad credential", func(t *testing.T) {
		svc := setup(t)

		session, err := svc.Login("admin", "wrong")
		if code := apperror.GetCode(err); code != apperror.CodeUnauthorized {
			t.Errorf("error code = %v, want %v", code, apperror.CodeUnauthorized)
		}
		if session.State != hr.StateRejected {
			t.Errorf("State = %v, want %v", session.State, hr.StateRejected)
		}
		if session.Reason != hr.ReasonBadCredential {
			t.Errorf("Reason = %v, want %v", session.Reason, hr.ReasonBadCredential)
		}
	})

	t.Run("rejects unknown identifier", func(t *testing.T) {
		svc := setup(t)

		session, err := svc.Login("nobody", "admin2025")
		if code := apperror.GetCode(err); code != apperror.CodeUnauthorized {
			t.Errorf("error code = %v, want %v", code, apperror.CodeUnauthorized)
		}
		if session.Reason != hr.ReasonUnknownIdentifier {
			t.Errorf("Reason = %v, want %v", session.Reason, hr.ReasonUnknownIdentifier)
		}
	})

	t.Run("falls back to employee credentials", func(t *testing.T) {
		svc := testutil.NewTestService(t)

		dept, err := svc.CreateDepartment("Ops")
		if err != nil {
			t.Fatalf("CreateDepartment() error = %v", err)
		}
		if _, err := svc.CreateEmployee(hr.NewEmployee{
			Name:         "Ana",
			Email:        "ana@ecotech.com",
			Password:     "secret1",
			DepartmentID: &dept.ID,
		}); err != nil {
			t.Fatalf("CreateEmployee() error = %v", err)
		}

		session, err := svc.Login("ana@ecotech.com", "secret1")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if !session.Authenticated() {
			t.Fatalf("State = %v, want %v", session.State, hr.StateAuthenticated)
		}
		if session.Role != "empleado" {
			t.Errorf("Role = %q, want empleado", session.Role)
		}

		session, err = svc.Login("ana@ecotech.com", "wrong")
		if apperror.GetCode(err) != apperror.CodeUnauthorized {
			t.Errorf("error code = %v, want %v", apperror.GetCode(err), apperror.CodeUnauthorized)
		}
		if session.Reason != hr.ReasonBadCredential {
			t.Errorf("Reason = %v, want %v", session.Reason, hr.ReasonBadCredential)
		}
	})

	t.Run("stamps session from clock and id generator", func(t *testing.T) {
		svc := setup(t)

		session, err := svc.Login("admin", "admin2025")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if session.IssuedAt != testutil.FixedTime {
			t.Errorf("IssuedAt = %v, want %v", session.IssuedAt, testutil.FixedTime)
		}
	})
}
