package dumper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"discparams/internal/execution"
	"discparams/internal/logging"
	"discparams/internal/services"
)

// LockFilename is created in the output directory while a dump runs.
const LockFilename = ".discparams.lock"

const stageDump = "dump"

// Result describes a finished tool invocation.
type Result struct {
	SessionID  string
	Tool       execution.Tool
	Binary     string
	Parameters string
	Args       []string
	OutputDir  string
	Started    time.Time
	Finished   time.Time
}

// Duration reports how long the tool ran.
func (r Result) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSessionIDs overrides session ID generation.
func WithSessionIDs(next func() string) Option {
	return func(c *Client) {
		if next != nil {
			c.newID = next
		}
	}
}

// Client runs dumping tools for generated contexts.
type Client struct {
	binaries map[execution.Tool]string
	timeout  time.Duration
	exec     Executor
	logger   *slog.Logger
	newID    func() string
}

// New constructs a client. binaries maps each tool to its executable; a
// non-positive timeout disables the deadline.
func New(binaries map[execution.Tool]string, timeout time.Duration, opts ...Option) *Client {
	resolved := make(map[execution.Tool]string, len(binaries))
	for tool, binary := range binaries {
		if binary = strings.TrimSpace(binary); binary != "" {
			resolved[tool] = binary
		}
	}
	client := &Client{
		binaries: resolved,
		timeout:  timeout,
		exec:     commandExecutor{},
		logger:   logging.NewNop(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "dumper")
	return client
}

// Binary returns the executable configured for tool.
func (c *Client) Binary(tool execution.Tool) (string, bool) {
	binary, ok := c.binaries[tool]
	return binary, ok
}

// Dump generates the parameters for ec and runs the matching tool. progress
// may be nil. Dumping commands hold an exclusive lock on their output
// directory for the whole run.
func (c *Client) Dump(ctx context.Context, ec execution.Context, progress func(ProgressUpdate)) (Result, error) {
	if ec == nil {
		return Result{}, services.Wrap(services.ErrValidation, stageDump, "generate", "no parameter context", nil)
	}
	tool := ec.Tool()
	binary, ok := c.Binary(tool)
	if !ok {
		return Result{}, services.Wrap(services.ErrConfiguration, stageDump, "resolve binary", fmt.Sprintf("no executable configured for %s", tool), nil)
	}

	parameters, err := ec.Generate()
	if err != nil {
		return Result{}, services.Wrap(services.ErrValidation, stageDump, "generate", "parameters are not valid", err)
	}

	result := Result{
		SessionID:  c.newID(),
		Tool:       tool,
		Binary:     binary,
		Parameters: parameters,
		Args:       execution.Split(parameters),
	}

	ctx = services.WithSessionID(ctx, result.SessionID)
	ctx = services.WithTool(ctx, string(tool))
	ctx = services.WithStage(ctx, stageDump)
	logger := logging.WithContext(ctx, c.logger)

	if ec.IsDumpingCommand() {
		result.OutputDir = outputDir(ec.OutputPath())
		unlock, err := lockOutputDir(result.OutputDir)
		if err != nil {
			return result, err
		}
		defer unlock()
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	logger.Info("dump started",
		logging.String(logging.FieldCommand, ec.Command()),
		logging.String("binary", binary),
		logging.String("parameters", parameters),
		logging.String("output_dir", result.OutputDir),
	)

	sampler := logging.NewProgressSampler(10)
	result.Started = time.Now()
	runErr := c.exec.Run(runCtx, binary, result.Args, func(line string) {
		logger.Debug("tool output", logging.String("line", line))
		update, ok := parseProgress(line)
		if !ok {
			return
		}
		if sampler.ShouldLog(update.Percent, update.Stage) {
			logger.Info("dump progress",
				logging.String("progress_stage", update.Stage),
				logging.Float64("percent", update.Percent),
			)
		}
		if progress != nil {
			progress(update)
		}
	})
	result.Finished = time.Now()

	if runErr != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			logging.ErrorWithContext(logger, "dump timed out", "dump_timeout",
				logging.Duration("timeout", c.timeout),
				logging.String(logging.FieldErrorHint, "raise tools.run_timeout or check the drive"),
			)
			return result, services.Wrap(services.ErrTimeout, stageDump, "run", fmt.Sprintf("%s exceeded %s", tool, c.timeout), runErr)
		}
		logging.ErrorWithContext(logger, "dump failed", "dump_failed",
			logging.Error(runErr),
			logging.String(logging.FieldErrorHint, "inspect the tool output in the session log"),
		)
		return result, services.Wrap(services.ErrExternalTool, stageDump, "run", string(tool), runErr)
	}

	logger.Info("dump finished", logging.Duration("duration", result.Duration()))
	return result, nil
}

func outputDir(outputPath string) string {
	outputPath = strings.TrimSpace(outputPath)
	if outputPath == "" {
		return "."
	}
	return filepath.Dir(outputPath)
}

// lockOutputDir creates dir and takes the dump lock in it. The returned
// function releases the lock.
func lockOutputDir(dir string) (func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, stageDump, "prepare output", dir, err)
	}
	lock := flock.New(filepath.Join(dir, LockFilename))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, stageDump, "lock output", dir, err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrBusy, stageDump, "lock output", fmt.Sprintf("another dump is writing to %s", dir), nil)
	}
	return func() {
		_ = lock.Unlock()
	}, nil
}
