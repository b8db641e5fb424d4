package execution

import (
	"discparams/internal/media"
	"discparams/internal/options"
)

// Tool names an external dumping program.
type Tool string

const (
	ToolDIC      Tool = "dic"
	ToolRedumper Tool = "redumper"
)

// Defaults is the input to default population.
type Defaults struct {
	System    media.System
	MediaType media.Type
	Drive     string
	Filename  string
	Speed     int
	Options   options.Options
}

// FlagView is a read-only snapshot of one supported flag.
type FlagView struct {
	Name        string
	Description string
	State       FlagState
	Value       string
}

// Context is the surface collaborators use to build, inspect, and re-parse a
// tool invocation.
type Context interface {
	Tool() Tool
	// Command returns the base command token, or "" when none validated.
	Command() string
	InputPath() string
	OutputPath() string
	Speed() (int, bool)
	SetSpeed(speed int)
	IsDumpingCommand() bool
	MediaType() (media.Type, bool)
	DefaultExtension(mediaType media.Type) (string, bool)

	// Generate renders the argument string or reports why it cannot.
	Generate() (string, error)
	// GenerateParameters is Generate without the error detail.
	GenerateParameters() (string, bool)
	// Parse replaces the state with the one described by parameters. On
	// failure the context is left empty.
	Parse(parameters string) error
	// ValidateAndSetParameters is Parse without the error detail.
	ValidateAndSetParameters(parameters string) bool
	// SetDefaults replaces the state with defaults for the given target.
	SetDefaults(defaults Defaults) error

	Flags() []FlagView
}
