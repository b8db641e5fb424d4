package presets_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"discparams/internal/execution"
	"discparams/internal/presets"
	"discparams/internal/services"
	"discparams/internal/testsupport"
)

func TestSaveStoresCanonicalParameters(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	if store.Path() != filepath.Join(cfg.Paths.StateDir, "presets.db") {
		t.Fatalf("unexpected database path %q", store.Path())
	}

	preset := testsupport.SavePreset(t, store, "psx", execution.ToolDIC, `cd D: "game.bin" 24   /c2 20 /am`)
	if preset.Parameters != `cd D: "game.bin" 24 /c2 20 /am` {
		t.Fatalf("expected canonical parameters, got %q", preset.Parameters)
	}
	if preset.Tool != execution.ToolDIC {
		t.Fatalf("unexpected tool %q", preset.Tool)
	}
	if preset.CreatedAt.IsZero() || preset.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps, got %+v", preset)
	}

	again := testsupport.SavePreset(t, store, "psx", execution.ToolDIC, `cd D: "game.bin" 8`)
	if again.ID != preset.ID {
		t.Fatalf("replacing a preset should keep its id: %s != %s", again.ID, preset.ID)
	}
	if again.Parameters != `cd D: "game.bin" 8` {
		t.Fatalf("expected replaced parameters, got %q", again.Parameters)
	}
}

func TestSaveRejectsInvalidParameters(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	tests := []struct {
		name       string
		tool       execution.Tool
		parameters string
	}{
		{"bad arity", execution.ToolDIC, "cd D:"},
		{"unknown flag", execution.ToolDIC, `cd D: "a.bin" 8 /zz`},
		{"missing mode", execution.ToolRedumper, "--drive=E:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Save(ctx, tt.name, tt.tool, tt.parameters)
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if _, err := store.Save(ctx, "  ", execution.ToolDIC, "close D:"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	if _, err := store.Save(ctx, "x", execution.Tool("cdrdao"), "close D:"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for unknown tool, got %v", err)
	}

	presetsList, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(presetsList) != 0 {
		t.Fatalf("invalid saves must not persist rows, got %d", len(presetsList))
	}
}

func TestListGetDelete(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	testsupport.SavePreset(t, store, "b-redumper", execution.ToolRedumper, "cd --drive=E: --retries=20")
	testsupport.SavePreset(t, store, "a-close", execution.ToolDIC, "close D:")

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].Name != "a-close" || all[1].Name != "b-redumper" {
		t.Fatalf("unexpected list order %+v", all)
	}

	onlyRedumper, err := store.List(ctx, execution.ToolRedumper)
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(onlyRedumper) != 1 || onlyRedumper[0].Tool != execution.ToolRedumper {
		t.Fatalf("unexpected filtered list %+v", onlyRedumper)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	deleted, err := store.Delete(ctx, "a-close")
	if err != nil || !deleted {
		t.Fatalf("Delete = %v, %v", deleted, err)
	}
	deleted, err = store.Delete(ctx, "a-close")
	if err != nil || deleted {
		t.Fatalf("second Delete = %v, %v", deleted, err)
	}
}

func TestHydrateRoundTrips(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	saved := testsupport.SavePreset(t, store, "dvd", execution.ToolDIC, `dvd E: "movie.iso" 8 /c /rr 10`)

	ec, err := store.Hydrate(ctx, "dvd")
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if ec.Tool() != execution.ToolDIC || ec.Command() != "dvd" {
		t.Fatalf("unexpected context %s %s", ec.Tool(), ec.Command())
	}
	got, ok := ec.GenerateParameters()
	if !ok || got != saved.Parameters {
		t.Fatalf("hydrated context generated %q, want %q", got, saved.Parameters)
	}

	if _, err := store.Hydrate(ctx, "nope"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.db")
	store, err := presets.OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	testsupport.SavePreset(t, store, "keep", execution.ToolDIC, "eject D:")
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := presets.OpenPath(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.Get(context.Background(), "keep"); err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
}
