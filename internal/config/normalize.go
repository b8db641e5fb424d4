package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTools()
	c.normalizeDrive()
	c.normalizeRedumper()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTools() {
	if value, ok := os.LookupEnv(envDICBinary); ok && strings.TrimSpace(value) != "" {
		c.Tools.DICBinary = value
	}
	if value, ok := os.LookupEnv(envRedumperBinary); ok && strings.TrimSpace(value) != "" {
		c.Tools.RedumperBinary = value
	}
	c.Tools.DICBinary = strings.TrimSpace(c.Tools.DICBinary)
	if c.Tools.DICBinary == "" {
		c.Tools.DICBinary = defaultDICBinary
	}
	c.Tools.RedumperBinary = strings.TrimSpace(c.Tools.RedumperBinary)
	if c.Tools.RedumperBinary == "" {
		c.Tools.RedumperBinary = defaultRedumperBinary
	}
	c.Tools.DefaultTool = strings.ToLower(strings.TrimSpace(c.Tools.DefaultTool))
	if c.Tools.DefaultTool == "" {
		c.Tools.DefaultTool = defaultTool
	}
}

func (c *Config) normalizeDrive() {
	c.Drive.Device = strings.TrimSpace(c.Drive.Device)
	c.Drive.Letter = strings.ToUpper(strings.TrimSpace(c.Drive.Letter))
	c.Drive.System = strings.TrimSpace(c.Drive.System)
}

func (c *Config) normalizeRedumper() {
	c.Redumper.DriveType = strings.ToUpper(strings.TrimSpace(c.Redumper.DriveType))
	c.Redumper.ReadMethod = strings.ToUpper(strings.TrimSpace(c.Redumper.ReadMethod))
	c.Redumper.SectorOrder = strings.ToUpper(strings.TrimSpace(c.Redumper.SectorOrder))
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
