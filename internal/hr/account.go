package hr

import (
	"fmt"

	"ecotech/internal/apperror"
	"ecotech/internal/model"
	"ecotech/internal/validate"
)

// CreateAccount creates a login account. Username and email must each be
// unused; the password is digested with the account strategy.
func (s *HRService) CreateAccount(username, email, role, password string) (*model.Account, error) {
	if !validate.NonEmpty(username) {
		return nil, apperror.New(apperror.CodeValidation, "username must not be empty")
	}
	if !validate.Email(email) {
		return nil, apperror.Newf(apperror.CodeValidation, "invalid email: %q", email)
	}
	if role == "" {
		role = "usuario"
	}

	taken, err := s.accountIdentifierTaken(username, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Newf(apperror.CodeConflict, "username %q or email %q already in use", username, email)
	}

	digest, err := s.accountHasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account, err := s.store.InsertAccount(username, email, role, digest)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	s.logger.Info("account created", "id", account.ID, "username", account.Username, "role", account.Role)
	return account, nil
}

// GetAccount returns the account with the given ID.
func (s *HRService) GetAccount(id int64) (*model.Account, error) {
	account, err := s.store.FindAccountByID(id)
	if err != nil {
		return nil, fmt.Errorf("finding account: %w", err)
	}
	if account == nil {
		return nil, apperror.Newf(apperror.CodeNotFound, "account %d not found", id)
	}
	return account, nil
}

// GetAccountByUsername returns the account with the given username.
func (s *HRService) GetAccountByUsername(username string) (*model.Account, error) {
	account, err := s.store.FindAccountByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("finding account: %w", err)
	}
	if account == nil {
		return nil, apperror.Newf(apperror.CodeNotFound, "account %q not found", username)
	}
	return account, nil
}

// ListAccounts returns all accounts.
func (s *HRService) ListAccounts() ([]*model.Account, error) {
	return s.store.ListAccounts()
}

// AccountChanges carries the optional fields for ModifyAccount.
// Nil fields keep their stored values.
type AccountChanges struct {
	Email    *string
	Role     *string
	Password *string
}

// ModifyAccount rewrites only the fields supplied in changes. A new
// password is re-digested before storage; plaintext is never persisted.
func (s *HRService) ModifyAccount(id int64, changes AccountChanges) error {
	if _, err := s.GetAccount(id); err != nil {
		return err
	}

	if changes.Email == nil && changes.Role == nil && changes.Password == nil {
		return apperror.New(apperror.CodeValidation, "nothing to modify")
	}

	if changes.Email != nil {
		if !validate.Email(*changes.Email) {
			return apperror.Newf(apperror.CodeValidation, "invalid email: %q", *changes.Email)
		}
		other, err := s.store.FindAccountByEmail(*changes.Email)
		if err != nil {
			return fmt.Errorf("checking for existing account: %w", err)
		}
		if other != nil && other.ID != id {
			return apperror.Newf(apperror.CodeConflict, "email %q already in use", *changes.Email)
		}
	}

	var digest *string
	if changes.Password != nil {
		d, err := s.accountHasher.Hash(*changes.Password)
		if err != nil {
			return err
		}
		digest = &d
	}

	if err := s.store.UpdateAccount(id, changes.Email, changes.Role, digest); err != nil {
		return fmt.Errorf("modifying account: %w", err)
	}

	s.logger.Info("account modified", "id", id)
	return nil
}

// DeleteAccount removes a login account.
func (s *HRService) DeleteAccount(id int64) error {
	if _, err := s.GetAccount(id); err != nil {
		return err
	}

	if err := s.store.DeleteAccount(id); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	s.logger.Info("account deleted", "id", id)
	return nil
}

// accountIdentifierTaken reports whether username or email belongs to an
// account other than excludeID.
func (s *HRService) accountIdentifierTaken(username, email string, excludeID int64) (bool, error) {
	byName, err := s.store.FindAccountByUsername(username)
	if err != nil {
		return false, fmt.Errorf("checking username: %w", err)
	}
	if byName != nil && byName.ID != excludeID {
		return true, nil
	}

	byEmail, err := s.store.FindAccountByEmail(email)
	if err != nil {
		return false, fmt.Errorf("checking email: %w", err)
	}
	if byEmail != nil && byEmail.ID != excludeID {
		return true, nil
	}

	return false, nil
}
