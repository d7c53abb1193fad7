// Package hr holds the entity lifecycle operations and the session/auth
// flow for the personnel tool. It owns the Store contract and layers
// validation, uniqueness checks and cascade cleanup on top of it.
package hr

// HRService is the orchestration layer between the CLI and the store.
// Uniqueness is enforced by a pre-insert existence check so the caller
// gets an accurate conflict message; the schema's UNIQUE constraints
// remain as a backstop for concurrent writers.
type HRService struct {
	store          Store
	accountHasher  Hasher
	employeeHasher Hasher
	logger         Logger
	clock          Clock
	idgen          IDGenerator
}

// Hasher mirrors the contract of internal/hash without importing it,
// keeping the service layer free of strategy choices.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// NewHRService creates an HRService with the provided dependencies.
// accountHasher gates interactive login; employeeHasher digests employee
// passwords and may be the legacy deterministic strategy.
func NewHRService(store Store, accountHasher, employeeHasher Hasher, logger Logger, clock Clock, idgen IDGenerator) *HRService {
	return &HRService{
		store:          store,
		accountHasher:  accountHasher,
		employeeHasher: employeeHasher,
		logger:         logger,
		clock:          clock,
		idgen:          idgen,
	}
}
