package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"discparams/internal/config"
	"discparams/internal/deps"
	"discparams/internal/execution"
)

var toolNames = map[execution.Tool]string{
	execution.ToolDIC:      "DiscImageCreator",
	execution.ToolRedumper: "Redumper",
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSystemDeps evaluates the dumping programs for the given config. The
// default tool is required; the other is optional.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	defaultTool := execution.Tool(cfg.Tools.DefaultTool)
	requirements := make([]deps.Requirement, 0, len(toolNames))
	for _, tool := range []execution.Tool{execution.ToolDIC, execution.ToolRedumper} {
		requirements = append(requirements, deps.Requirement{
			Name:        toolNames[tool],
			Command:     cfg.ToolBinary(tool),
			Description: fmt.Sprintf("Runs %s dumps", tool),
			Optional:    tool != defaultTool,
		})
	}
	return deps.CheckBinaries(requirements)
}
