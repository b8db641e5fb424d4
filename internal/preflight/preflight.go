package preflight

import (
	"discparams/internal/config"
	"discparams/internal/deps"
)

// Result reports the outcome of a single preflight check. Warn marks a check
// that passed with a degraded outcome, such as a missing optional binary.
type Result struct {
	Name   string
	Passed bool
	Warn   bool
	Detail string
}

// RunAll executes the binary and directory checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, status := range CheckSystemDeps(cfg) {
		results = append(results, resultFromStatus(status))
	}

	results = append(results, CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir))
	results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))
	if cfg.Paths.LogDir != "" && cfg.Paths.LogDir != cfg.Paths.StateDir {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

func resultFromStatus(status deps.Status) Result {
	result := Result{Name: status.Name, Passed: status.Satisfied()}
	switch {
	case status.Available:
		result.Detail = status.Path
	case status.Optional:
		result.Warn = true
		result.Detail = status.Detail + " (optional)"
	default:
		result.Detail = status.Detail
	}
	return result
}
