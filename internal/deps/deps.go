// Package deps reports whether the external dumping programs are installed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external program discparams can drive.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Path        string
	Detail      string
}

// Satisfied reports whether the dependency is available or not required.
func (s Status) Satisfied() bool {
	return s.Available || s.Optional
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// AllSatisfied reports whether every required dependency is available.
func AllSatisfied(statuses []Status) bool {
	for _, status := range statuses {
		if !status.Satisfied() {
			return false
		}
	}
	return true
}
