package hr

import (
	"fmt"
	"time"

	"ecotech/internal/apperror"
)

// SessionState is the auth flow state:
// Unauthenticated -> Authenticating -> {Authenticated, Rejected}.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticating  SessionState = "authenticating"
	StateAuthenticated   SessionState = "authenticated"
	StateRejected        SessionState = "rejected"
)

// RejectReason explains a rejected login. The reason distinguishes
// unknown identifier from bad credential, but never reveals whether the
// identifier matched a username or an email.
type RejectReason string

const (
	ReasonUnknownIdentifier RejectReason = "unknown identifier"
	ReasonBadCredential     RejectReason = "bad credential"
)

// Session is the principal produced by the auth flow. It lives only in
// process memory; there is no token or expiry model.
type Session struct {
	ID        string // UUID, for log correlation
	State     SessionState
	Reason    RejectReason // set only when State is StateRejected
	AccountID int64
	Username  string
	Role      string
	IssuedAt  time.Time
}

// Authenticated reports whether the session holds a verified principal.
func (s *Session) Authenticated() bool {
	return s.State == StateAuthenticated
}

// Login resolves the identifier and verifies the secret against the
// stored digest, yielding the session. Resolution order: account by
// username, account by email, employee by email. Each table is verified
// with its own digest strategy. A rejected session is returned alongside
// an unauthorized error so the caller can branch on the state or the
// error code interchangeably.
func (s *HRService) Login(identifier, secret string) (*Session, error) {
	session := &Session{
		ID:       s.idgen.New(),
		State:    StateAuthenticating,
		IssuedAt: s.clock.Now(),
	}

	account, err := s.store.FindAccountByUsername(identifier)
	if err != nil {
		return nil, fmt.Errorf("resolving account: %w", err)
	}
	if account == nil {
		account, err = s.store.FindAccountByEmail(identifier)
		if err != nil {
			return nil, fmt.Errorf("resolving account: %w", err)
		}
	}

	if account == nil {
		emp, err := s.store.FindEmployeeByEmail(identifier)
		if err != nil {
			return nil, fmt.Errorf("resolving employee: %w", err)
		}
		if emp == nil {
			return s.reject(session, ReasonUnknownIdentifier)
		}
		if !s.employeeHasher.Verify(secret, emp.PasswordDigest) {
			return s.reject(session, ReasonBadCredential)
		}

		session.State = StateAuthenticated
		session.AccountID = emp.ID
		session.Username = emp.Name
		session.Role = "empleado"

		s.logger.Info("login successful", "session_id", session.ID, "employee_id", emp.ID)
		return session, nil
	}

	if !s.accountHasher.Verify(secret, account.PasswordDigest) {
		return s.reject(session, ReasonBadCredential)
	}

	session.State = StateAuthenticated
	session.AccountID = account.ID
	session.Username = account.Username
	session.Role = account.Role

	s.logger.Info("login successful", "session_id", session.ID, "account_id", account.ID, "username", account.Username)
	return session, nil
}

func (s *HRService) reject(session *Session, reason RejectReason) (*Session, error) {
	session.State = StateRejected
	session.Reason = reason
	s.logger.Warn("login rejected", "session_id", session.ID, "reason", reason)
	return session, apperror.New(apperror.CodeUnauthorized, string(reason))
}
