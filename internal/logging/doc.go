// Package logging assembles structured slog loggers and formatting helpers used
// across discparams.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so dump sessions automatically
// tag log lines with the session ID, tool, and stage. Per-session log files are
// teed alongside console output and pruned by age. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
