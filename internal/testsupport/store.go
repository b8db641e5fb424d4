package testsupport

import (
	"context"
	"testing"

	"discparams/internal/config"
	"discparams/internal/execution"
	"discparams/internal/presets"
)

// MustOpenStore opens a presets.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *presets.Store {
	t.Helper()

	store, err := presets.Open(cfg)
	if err != nil {
		t.Fatalf("presets.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SavePreset stores a preset for tests using the provided store.
func SavePreset(t testing.TB, store *presets.Store, name string, tool execution.Tool, parameters string) *presets.Preset {
	t.Helper()

	preset, err := store.Save(context.Background(), name, tool, parameters)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return preset
}
