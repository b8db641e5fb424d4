// Package tools maps tool names to their parameter contexts.
package tools

import (
	"errors"
	"fmt"
	"strings"

	"discparams/internal/execution"
	"discparams/internal/execution/dic"
	"discparams/internal/execution/redumper"
)

// ErrUnknownTool is returned for tool names with no context.
var ErrUnknownTool = errors.New("unknown tool")

// Names lists the supported tools.
func Names() []execution.Tool {
	return []execution.Tool{execution.ToolDIC, execution.ToolRedumper}
}

// Lookup resolves a tool name case-insensitively. DiscImageCreator is also
// accepted under its long name.
func Lookup(name string) (execution.Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dic", "discimagecreator":
		return execution.ToolDIC, nil
	case "redumper":
		return execution.ToolRedumper, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}

// New returns an empty context for tool.
func New(tool execution.Tool) (execution.Context, error) {
	switch tool {
	case execution.ToolDIC:
		return dic.New(), nil
	case execution.ToolRedumper:
		return redumper.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
}

// Parse re-hydrates a context for tool from parameters.
func Parse(tool execution.Tool, parameters string) (execution.Context, error) {
	ctx, err := New(tool)
	if err != nil {
		return nil, err
	}
	if err := ctx.Parse(parameters); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Defaults builds a fresh context for tool populated with defaults.
func Defaults(tool execution.Tool, defaults execution.Defaults) (execution.Context, error) {
	ctx, err := New(tool)
	if err != nil {
		return nil, err
	}
	if err := ctx.SetDefaults(defaults); err != nil {
		return nil, err
	}
	return ctx, nil
}
