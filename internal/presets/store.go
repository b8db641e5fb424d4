package presets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"discparams/internal/config"
	"discparams/internal/execution"
	"discparams/internal/services"
	"discparams/internal/tools"
)

const stagePresets = "presets"

// Preset is a named, validated parameter string for one tool.
type Preset struct {
	ID         uuid.UUID
	Name       string
	Tool       execution.Tool
	Parameters string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store manages preset persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open initializes or connects to the preset database under the configured
// state directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.PresetDatabasePath())
}

// OpenPath opens the preset database at dbPath.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, now: time.Now}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save validates parameters against tool and stores them under name in
// canonical form. An existing preset with the same name is replaced but keeps
// its ID and creation time.
func (s *Store) Save(ctx context.Context, name string, tool execution.Tool, parameters string) (*Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, services.Wrap(services.ErrValidation, stagePresets, "save", "preset name is required", nil)
	}
	ec, err := tools.Parse(tool, parameters)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, stagePresets, "save", fmt.Sprintf("parameters for %q", name), err)
	}
	canonical, err := ec.Generate()
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, stagePresets, "save", fmt.Sprintf("parameters for %q", name), err)
	}

	timestamp := s.now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO presets (id, name, tool, parameters, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET
            tool = excluded.tool,
            parameters = excluded.parameters,
            updated_at = excluded.updated_at`,
		uuid.NewString(),
		name,
		string(ec.Tool()),
		canonical,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("save preset: %w", err)
	}
	return s.Get(ctx, name)
}

// Get fetches a preset by name.
func (s *Store) Get(ctx context.Context, name string) (*Preset, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, tool, parameters, created_at, updated_at FROM presets WHERE name = ?`,
		strings.TrimSpace(name),
	)
	preset, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, stagePresets, "get", fmt.Sprintf("preset %q", name), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get preset: %w", err)
	}
	return preset, nil
}

// List returns presets ordered by name, optionally filtered to the given tools.
func (s *Store) List(ctx context.Context, filter ...execution.Tool) ([]*Preset, error) {
	query := `SELECT id, name, tool, parameters, created_at, updated_at FROM presets`
	args := make([]any, 0, len(filter))
	if len(filter) > 0 {
		placeholders := make([]string, len(filter))
		for i, tool := range filter {
			placeholders[i] = "?"
			args = append(args, string(tool))
		}
		query += " WHERE tool IN (" + strings.Join(placeholders, ",") + ")"
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var presets []*Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}
	return presets, nil
}

// Delete removes a preset by name and reports whether it existed.
func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return false, fmt.Errorf("delete preset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Hydrate loads a preset and parses it back into a parameter context.
func (s *Store) Hydrate(ctx context.Context, name string) (execution.Context, error) {
	preset, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	ec, err := tools.Parse(preset.Tool, preset.Parameters)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, stagePresets, "hydrate", fmt.Sprintf("preset %q", name), err)
	}
	return ec, nil
}

func scanPreset(scanner interface{ Scan(dest ...any) error }) (*Preset, error) {
	var (
		id         string
		name       string
		tool       string
		parameters string
		createdAt  string
		updatedAt  string
	)
	if err := scanner.Scan(&id, &name, &tool, &parameters, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("preset %q id: %w", name, err)
	}
	preset := &Preset{
		ID:         parsedID,
		Name:       name,
		Tool:       execution.Tool(tool),
		Parameters: parameters,
	}
	if preset.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("preset %q created_at: %w", name, err)
	}
	if preset.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("preset %q updated_at: %w", name, err)
	}
	return preset, nil
}
