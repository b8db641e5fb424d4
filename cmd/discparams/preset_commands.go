package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"discparams/internal/execution"
	"discparams/internal/presets"
	"discparams/internal/services"
	"discparams/internal/tools"
)

type presetView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Tool       string    `json:"tool"`
	Parameters string    `json:"parameters"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newPresetView(p *presets.Preset) presetView {
	return presetView{
		ID:         p.ID.String(),
		Name:       p.Name,
		Tool:       string(p.Tool),
		Parameters: p.Parameters,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func newPresetCommand(ctx *commandContext) *cobra.Command {
	presetCmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved parameter presets",
	}

	presetCmd.AddCommand(newPresetSaveCommand(ctx))
	presetCmd.AddCommand(newPresetListCommand(ctx))
	presetCmd.AddCommand(newPresetShowCommand(ctx))
	presetCmd.AddCommand(newPresetDeleteCommand(ctx))

	return presetCmd
}

func (c *commandContext) withStore(fn func(*presets.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := presets.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newPresetSaveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <tool> <parameters>",
		Short: "Validate and save a parameter string under a name",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := tools.Lookup(args[1])
			if err != nil {
				return services.Wrap(services.ErrValidation, "presets", "save", "", err)
			}
			return ctx.withStore(func(store *presets.Store) error {
				preset, err := store.Save(cmd.Context(), args[0], tool, joinParameters(args[2:]))
				if err != nil {
					return err
				}
				if ctx.jsonOutput {
					return writeJSON(cmd, newPresetView(preset))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %s (%s): %s\n", preset.Name, preset.Tool, preset.Parameters)
				return nil
			})
		},
	}
}

func newPresetListCommand(ctx *commandContext) *cobra.Command {
	var toolFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter []execution.Tool
			if toolFilter != "" {
				tool, err := tools.Lookup(toolFilter)
				if err != nil {
					return services.Wrap(services.ErrValidation, "presets", "list", "", err)
				}
				filter = append(filter, tool)
			}
			return ctx.withStore(func(store *presets.Store) error {
				list, err := store.List(cmd.Context(), filter...)
				if err != nil {
					return err
				}
				if ctx.jsonOutput {
					views := make([]presetView, 0, len(list))
					for _, p := range list {
						views = append(views, newPresetView(p))
					}
					return writeJSON(cmd, views)
				}
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "No presets saved")
					return nil
				}
				rows := make([][]string, 0, len(list))
				for _, p := range list {
					rows = append(rows, []string{p.Name, string(p.Tool), p.Parameters, p.UpdatedAt.Local().Format("2006-01-02 15:04")})
				}
				fmt.Fprintln(out, renderTable(out, []string{"Name", "Tool", "Parameters", "Updated"}, rows, nil))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&toolFilter, "tool", "", "Only list presets for this tool")
	return cmd
}

func newPresetShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a preset and what its parameters describe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *presets.Store) error {
				ec, err := store.Hydrate(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				parameters, err := generateOrFail(ec)
				if err != nil {
					return err
				}
				return printContext(cmd, ctx, newContextView(ec, parameters))
			})
		},
	}
}

func newPresetDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *presets.Store) error {
				deleted, err := store.Delete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !deleted {
					return services.Wrap(services.ErrNotFound, "presets", "delete", fmt.Sprintf("preset %q", args[0]), nil)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %s\n", args[0])
				return nil
			})
		},
	}
}
