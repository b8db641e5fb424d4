package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"discparams/internal/execution"
	"discparams/internal/media"
	"discparams/internal/options"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	StateDir  string `toml:"state_dir"`
	LogDir    string `toml:"log_dir"`
}

// Tools contains external dumper binaries and run limits.
type Tools struct {
	DICBinary      string `toml:"dic_binary"`
	RedumperBinary string `toml:"redumper_binary"`
	DefaultTool    string `toml:"default_tool"`
	RunTimeout     int    `toml:"run_timeout"`
}

// Drive contains the default drive and disc hints used to seed parameters.
// Device is the udev node watched for disc changes and handed to redumper;
// Letter is the drive token DiscImageCreator expects.
type Drive struct {
	Device string `toml:"device"`
	Letter string `toml:"letter"`
	Speed  int    `toml:"speed"`
	System string `toml:"system"`
}

// DIC contains DiscImageCreator dumping preferences.
type DIC struct {
	QuietMode            bool `toml:"quiet_mode"`
	ParanoidMode         bool `toml:"paranoid_mode"`
	UseCMIFlag           bool `toml:"use_cmi_flag"`
	MultiSectorRead      bool `toml:"multi_sector_read"`
	MultiSectorReadValue int  `toml:"multi_sector_read_value"`
	RereadCount          int  `toml:"reread_count"`
	DVDRereadCount       int  `toml:"dvd_reread_count"`
	BDRereadCount        int  `toml:"bd_reread_count"`
}

// Redumper contains redumper dumping preferences.
type Redumper struct {
	EnableVerbose    bool   `toml:"enable_verbose"`
	EnableDebug      bool   `toml:"enable_debug"`
	EnableSkeleton   bool   `toml:"enable_skeleton"`
	RefineSubchannel bool   `toml:"refine_subchannel"`
	DriveType        string `toml:"drive_type"`
	ReadMethod       string `toml:"read_method"`
	SectorOrder      string `toml:"sector_order"`
	RereadCount      int    `toml:"reread_count"`
	LeadinRetryCount int    `toml:"leadin_retry_count"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	RetentionDays int    `toml:"retention_days"`
}

// Config encapsulates all configuration values for discparams.
//
// Configuration sections by subsystem:
//   - Paths: dump output, state database, and log directories
//   - Tools: dumper executables, the default tool, and the run timeout
//   - Drive: default device, speed, and system used for generated defaults
//   - DIC / Redumper: per-tool dumping preferences
//   - Logging: log format, level, and retention
type Config struct {
	Paths    Paths    `toml:"paths"`
	Tools    Tools    `toml:"tools"`
	Drive    Drive    `toml:"drive"`
	DIC      DIC      `toml:"dic"`
	Redumper Redumper `toml:"redumper"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPathLiteral)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPathLiteral)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigFilename)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output, state, and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.StateDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// PresetDatabasePath returns the SQLite file holding saved presets.
func (c *Config) PresetDatabasePath() string {
	return filepath.Join(c.Paths.StateDir, presetDatabaseFilename)
}

// ToolBinary returns the executable configured for tool.
func (c *Config) ToolBinary(tool execution.Tool) string {
	switch tool {
	case execution.ToolDIC:
		return c.Tools.DICBinary
	case execution.ToolRedumper:
		return c.Tools.RedumperBinary
	default:
		return ""
	}
}

// ToolBinaries returns every configured executable keyed by tool.
func (c *Config) ToolBinaries() map[execution.Tool]string {
	return map[execution.Tool]string{
		execution.ToolDIC:      c.Tools.DICBinary,
		execution.ToolRedumper: c.Tools.RedumperBinary,
	}
}

// RunTimeout returns the dump timeout as a duration.
func (c *Config) RunTimeout() time.Duration {
	return time.Duration(c.Tools.RunTimeout) * time.Second
}

// DumpOptions converts the per-tool sections into dumping preferences.
func (c *Config) DumpOptions() options.Options {
	return options.Options{
		DIC: options.DICOptions{
			QuietMode:            c.DIC.QuietMode,
			ParanoidMode:         c.DIC.ParanoidMode,
			UseCMIFlag:           c.DIC.UseCMIFlag,
			MultiSectorRead:      c.DIC.MultiSectorRead,
			MultiSectorReadValue: int32(c.DIC.MultiSectorReadValue),
			RereadCount:          int32(c.DIC.RereadCount),
			DVDRereadCount:       int32(c.DIC.DVDRereadCount),
			BDRereadCount:        int32(c.DIC.BDRereadCount),
		},
		Redumper: options.RedumperOptions{
			EnableVerbose:    c.Redumper.EnableVerbose,
			EnableDebug:      c.Redumper.EnableDebug,
			EnableSkeleton:   c.Redumper.EnableSkeleton,
			RefineSubchannel: c.Redumper.RefineSubchannel,
			DriveType:        c.Redumper.DriveType,
			ReadMethod:       c.Redumper.ReadMethod,
			SectorOrder:      c.Redumper.SectorOrder,
			RereadCount:      int32(c.Redumper.RereadCount),
			LeadinRetryCount: int32(c.Redumper.LeadinRetryCount),
		},
	}
}

// DriveSystem resolves the configured default system. An empty value means
// no system.
func (c *Config) DriveSystem() media.System {
	system, ok := media.ParseSystem(c.Drive.System)
	if !ok {
		return media.NoSystem
	}
	return system
}

// DriveFor returns the drive token tool addresses the configured drive by.
func (c *Config) DriveFor(tool execution.Tool) string {
	if tool == execution.ToolDIC {
		return c.Drive.Letter
	}
	return c.Drive.Device
}

// ExecutionDefaults seeds default parameters for tool and a disc of the given
// media type written to filename. A zero system falls back to the configured
// one.
func (c *Config) ExecutionDefaults(tool execution.Tool, system media.System, mediaType media.Type, filename string) execution.Defaults {
	if system == media.NoSystem {
		system = c.DriveSystem()
	}
	if filename != "" && !filepath.IsAbs(filename) && c.Paths.OutputDir != "" {
		filename = filepath.Join(c.Paths.OutputDir, filename)
	}
	return execution.Defaults{
		System:    system,
		MediaType: mediaType,
		Drive:     c.DriveFor(tool),
		Filename:  filename,
		Speed:     c.Drive.Speed,
		Options:   c.DumpOptions(),
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
