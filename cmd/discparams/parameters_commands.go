package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"discparams/internal/execution"
	"discparams/internal/media"
	"discparams/internal/services"
	"discparams/internal/tools"
)

// contextView is the JSON and table shape of a parameter context.
type contextView struct {
	Tool       string `json:"tool"`
	Command    string `json:"command"`
	Parameters string `json:"parameters"`
	Input      string `json:"input,omitempty"`
	Output     string `json:"output,omitempty"`
	Speed      *int   `json:"speed,omitempty"`
	Media      string `json:"media,omitempty"`
	Dumping    bool   `json:"dumping"`
}

type flagView struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description"`
}

func newContextView(ec execution.Context, parameters string) contextView {
	view := contextView{
		Tool:       string(ec.Tool()),
		Command:    ec.Command(),
		Parameters: parameters,
		Input:      ec.InputPath(),
		Output:     ec.OutputPath(),
		Dumping:    ec.IsDumpingCommand(),
	}
	if speed, ok := ec.Speed(); ok {
		view.Speed = &speed
	}
	if mediaType, ok := ec.MediaType(); ok && mediaType != media.Unknown {
		view.Media = mediaType.String()
	}
	return view
}

func (v contextView) rows() [][]string {
	speed := ""
	if v.Speed != nil {
		speed = strconv.Itoa(*v.Speed)
	}
	return [][]string{
		{"Tool", v.Tool},
		{"Command", v.Command},
		{"Input", v.Input},
		{"Output", v.Output},
		{"Speed", speed},
		{"Media", v.Media},
		{"Dumping", yesNo(v.Dumping)},
		{"Parameters", v.Parameters},
	}
}

func printContext(cmd *cobra.Command, ctx *commandContext, view contextView) error {
	if ctx.jsonOutput {
		return writeJSON(cmd, view)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(out, []string{"Field", "Value"}, view.rows(), nil))
	return nil
}

func generateOrFail(ec execution.Context) (string, error) {
	parameters, err := ec.Generate()
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "", "generate", "", err)
	}
	return parameters, nil
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:   "generate [tool]",
		Short: "Generate default parameters for a disc",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			tool, err := resolveTool(cfg, name)
			if err != nil {
				return err
			}
			ec, err := target.defaults(cmd, cfg, tool, media.Unknown, defaultImageName)
			if err != nil {
				return err
			}
			parameters, err := generateOrFail(ec)
			if err != nil {
				return err
			}
			if ctx.jsonOutput {
				return writeJSON(cmd, newContextView(ec, parameters))
			}
			fmt.Fprintln(cmd.OutOrStdout(), parameters)
			return nil
		},
	}
	target.register(cmd, true)
	return cmd
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <tool> <parameters>",
		Short: "Validate a parameter string and show what it describes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ec, parameters, err := parseArgs(args)
			if err != nil {
				return err
			}
			return printContext(cmd, ctx, newContextView(ec, parameters))
		},
	}
}

func newFlagsCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "flags <tool> <parameters>",
		Short: "List the flags a command supports and their state",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ec, _, err := parseArgs(args)
			if err != nil {
				return err
			}
			views := make([]flagView, 0)
			for _, flag := range ec.Flags() {
				if !all && flag.State == execution.FlagUnset {
					continue
				}
				views = append(views, flagView{
					Name:        flag.Name,
					State:       flag.State.String(),
					Value:       flag.Value,
					Description: flag.Description,
				})
			}
			if ctx.jsonOutput {
				return writeJSON(cmd, views)
			}
			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No flags set (use --all to list supported flags)")
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{view.Name, view.State, view.Value, view.Description})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Flag", "State", "Value", "Description"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include supported flags that are not set")
	return cmd
}

// parseArgs parses "<tool> <parameters...>" and returns the canonical string.
func parseArgs(args []string) (execution.Context, string, error) {
	tool, err := tools.Lookup(args[0])
	if err != nil {
		return nil, "", services.Wrap(services.ErrValidation, "", "resolve tool", "", err)
	}
	ec, err := tools.Parse(tool, joinParameters(args[1:]))
	if err != nil {
		return nil, "", services.Wrap(services.ErrValidation, "", "parse", "", err)
	}
	parameters, err := generateOrFail(ec)
	if err != nil {
		return nil, "", err
	}
	return ec, parameters, nil
}
