package testutil

import (
	"testing"

	"ecotech/internal/hash"
	"ecotech/internal/hr"
)

// NewTestService creates an HRService on an in-memory store with the
// SHA-256 hasher for both tables (fast and deterministic; bcrypt's work
// factor would dominate test runtime).
func NewTestService(t *testing.T) *hr.HRService {
	t.Helper()
	return NewTestServiceWithStore(t, NewTestStore(t))
}

// NewTestServiceWithStore wires an HRService around an existing store.
func NewTestServiceWithStore(t *testing.T, st hr.Store) *hr.HRService {
	t.Helper()

	hasher := hash.NewSHA256Hasher()
	return hr.NewHRService(st, hasher, hasher, hr.NewNopLogger(), FixedClock(), NewStubIDGenerator())
}
