package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"discparams/internal/config"
	"discparams/internal/execution"
	"discparams/internal/logging"
	"discparams/internal/services"
	"discparams/internal/services/dumper"
	"discparams/internal/tools"
)

type commandContext struct {
	configPath string
	jsonOutput bool

	// executor replaces the process runner; nil runs real binaries.
	executor dumper.Executor

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.configPath))
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "ensure directories", "", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) dumperOptions(logger *slog.Logger, sessionID string) []dumper.Option {
	opts := []dumper.Option{
		dumper.WithLogger(logger),
		dumper.WithSessionIDs(func() string { return sessionID }),
	}
	if c.executor != nil {
		opts = append(opts, dumper.WithExecutor(c.executor))
	}
	return opts
}

// resolveTool looks up name, falling back to the configured default tool.
func resolveTool(cfg *config.Config, name string) (execution.Tool, error) {
	if strings.TrimSpace(name) == "" {
		name = cfg.Tools.DefaultTool
	}
	tool, err := tools.Lookup(name)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "", "resolve tool", "", err)
	}
	return tool, nil
}

// joinParameters rebuilds a parameter string split across shell arguments.
func joinParameters(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
