package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"discparams/internal/config"
	"discparams/internal/execution"
	"discparams/internal/logging"
	"discparams/internal/media"
	"discparams/internal/preflight"
	"discparams/internal/presets"
	"discparams/internal/services"
	"discparams/internal/services/dumper"
	"discparams/internal/tools"
)

type runView struct {
	SessionID  string   `json:"session_id"`
	Tool       string   `json:"tool"`
	Binary     string   `json:"binary"`
	Parameters string   `json:"parameters"`
	Args       []string `json:"args"`
	OutputDir  string   `json:"output_dir,omitempty"`
	Duration   string   `json:"duration"`
	SessionLog string   `json:"session_log,omitempty"`
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var target targetFlags
	var presetName string
	var parameters string
	var skipPreflight bool

	cmd := &cobra.Command{
		Use:   "run [tool]",
		Short: "Run a dump with generated, preset, or explicit parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if presetName != "" && parameters != "" {
				return services.Wrap(services.ErrValidation, "", "run", "--preset and --parameters are mutually exclusive", nil)
			}
			if !skipPreflight {
				if err := requirePreflight(cfg); err != nil {
					return err
				}
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var ec execution.Context
			switch {
			case presetName != "":
				ec, err = hydratePreset(runCtx, cfg, presetName)
			case parameters != "":
				var tool execution.Tool
				if tool, err = resolveTool(cfg, firstArg(args)); err == nil {
					ec, err = tools.Parse(tool, parameters)
					if err != nil {
						err = services.Wrap(services.ErrValidation, "", "parse", "", err)
					}
				}
			default:
				var tool execution.Tool
				if tool, err = resolveTool(cfg, firstArg(args)); err == nil {
					ec, err = target.defaults(cmd, cfg, tool, media.Unknown, defaultImageName)
				}
			}
			if err != nil {
				return err
			}

			result, logPath, err := ctx.dump(runCtx, cmd.ErrOrStderr(), cfg, ec)
			if err != nil {
				return err
			}
			return printRunResult(cmd, ctx, result, logPath)
		},
	}
	target.register(cmd, true)
	cmd.Flags().StringVar(&presetName, "preset", "", "Run a saved preset")
	cmd.Flags().StringVarP(&parameters, "parameters", "p", "", "Run an explicit parameter string")
	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Do not check binaries and directories first")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func hydratePreset(ctx context.Context, cfg *config.Config, name string) (execution.Context, error) {
	store, err := presets.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Hydrate(ctx, name)
}

func requirePreflight(cfg *config.Config) error {
	var failed []string
	for _, result := range preflight.RunAll(cfg) {
		if !result.Passed {
			failed = append(failed, fmt.Sprintf("%s: %s", result.Name, result.Detail))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return services.Wrap(services.ErrConfiguration, "preflight", "", strings.Join(failed, "; "), nil)
}

// dump runs ec with a per-session log file in the log directory and
// reports progress lines to progressOut.
func (c *commandContext) dump(ctx context.Context, progressOut io.Writer, cfg *config.Config, ec execution.Context) (dumper.Result, string, error) {
	base, err := c.ensureLogger()
	if err != nil {
		return dumper.Result{}, "", err
	}

	sessionID := uuid.NewString()
	logger := base
	logPath := ""
	session, err := logging.OpenSessionLog(cfg.Paths.LogDir, string(ec.Tool()), sessionID, logging.Options{
		Format: "json",
		Level:  cfg.Logging.Level,
	})
	if err != nil {
		logging.WarnWithContext(base, "session log unavailable", "session_log_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "dump output is only logged to the console"),
		)
	} else {
		defer session.Close()
		logPath = session.Path
		logger = logging.TeeLogger(base, session.Handler)
		logging.CleanupOldLogs(logger, cfg.Paths.LogDir, cfg.Logging.RetentionDays, session.Path)
	}

	client := dumper.New(cfg.ToolBinaries(), cfg.RunTimeout(), c.dumperOptions(logger, sessionID)...)
	result, err := client.Dump(ctx, ec, progressPrinter(progressOut))
	return result, logPath, err
}

func progressPrinter(out io.Writer) func(dumper.ProgressUpdate) {
	sampler := logging.NewProgressSampler(5)
	return func(update dumper.ProgressUpdate) {
		if !sampler.ShouldLog(update.Percent, update.Stage) {
			return
		}
		if update.Percent < 0 {
			fmt.Fprintf(out, "%s\n", update.Stage)
			return
		}
		fmt.Fprintf(out, "%s %5.1f%%\n", update.Stage, update.Percent)
	}
}

func printRunResult(cmd *cobra.Command, ctx *commandContext, result dumper.Result, logPath string) error {
	view := runView{
		SessionID:  result.SessionID,
		Tool:       string(result.Tool),
		Binary:     result.Binary,
		Parameters: result.Parameters,
		Args:       result.Args,
		OutputDir:  result.OutputDir,
		Duration:   result.Duration().Round(time.Second).String(),
		SessionLog: logPath,
	}
	if ctx.jsonOutput {
		return writeJSON(cmd, view)
	}
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"Session", view.SessionID},
		{"Tool", view.Tool},
		{"Binary", view.Binary},
		{"Parameters", view.Parameters},
		{"Output", view.OutputDir},
		{"Duration", view.Duration},
		{"Log", view.SessionLog},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Field", "Value"}, rows, nil))
	return nil
}

