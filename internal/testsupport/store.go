package testsupport

import (
	"testing"

	"marquee/internal/config"
	"marquee/internal/users"
)

// MustOpenStore opens the user store for the supplied config and registers
// cleanup with the test.
func MustOpenStore(t testing.TB, cfg *config.Config) *users.Store {
	t.Helper()

	store, err := users.Open(cfg)
	if err != nil {
		t.Fatalf("open user store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close user store: %v", err)
		}
	})
	return store
}
