package testutil

import (
	"testing"

	"github.com/nhle/todo-app/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with both tables created.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T, opts ...store.Option) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:", opts...)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
