package config

import (
	"errors"
	"fmt"
	"strings"

	"discparams/internal/execution"
	"discparams/internal/media"
	"discparams/internal/tools"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateDrive(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.DumpOptions().Validate()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateTools() error {
	if _, err := tools.Lookup(c.Tools.DefaultTool); err != nil {
		return fmt.Errorf("tools.default_tool: %w", err)
	}
	return ensurePositiveMap(map[string]int{
		"tools.run_timeout": c.Tools.RunTimeout,
	})
}

func (c *Config) validateDrive() error {
	if c.Drive.Speed < 0 || c.Drive.Speed > maxDriveSpeed {
		return fmt.Errorf("drive.speed must be between 0 and %d", maxDriveSpeed)
	}
	if c.Drive.Letter != "" && !execution.IsValidDriveLetter(c.Drive.Letter) {
		return fmt.Errorf("drive.letter: %q is not a drive letter such as D:", c.Drive.Letter)
	}
	if c.Drive.Letter == "" && c.Tools.DefaultTool == string(execution.ToolDIC) {
		return fmt.Errorf("drive.letter is required when tools.default_tool is %s", execution.ToolDIC)
	}
	if c.Drive.System != "" {
		if _, ok := media.ParseSystem(c.Drive.System); !ok {
			return fmt.Errorf("drive.system: unknown system %q", c.Drive.System)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
