package testutil

import (
	"testing"

	"ecotech/internal/hr"
	"ecotech/internal/store"
)

// NewTestStore creates an in-memory SQLite store with schema applied.
// The store is automatically closed when the test completes.
func NewTestStore(t *testing.T) hr.Store {
	t.Helper()

	st, err := store.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	t.Cleanup(func() {
		st.Close()
	})

	return st
}
