package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"discparams/internal/preflight"
	"discparams/internal/services"
)

type checkView struct {
	Checks []checkResultView `json:"checks"`
	Disc   discView          `json:"disc"`
}

type checkResultView struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Warn   bool   `json:"warn,omitempty"`
	Detail string `json:"detail"`
}

type discView struct {
	Detected bool   `json:"detected"`
	Device   string `json:"device"`
	Label    string `json:"label,omitempty"`
	Media    string `json:"media,omitempty"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var skipDisc bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check dumping binaries, directories, and the drive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)
			view := checkView{Disc: discView{Device: cfg.Drive.Device}}
			for _, r := range results {
				view.Checks = append(view.Checks, checkResultView{Name: r.Name, Passed: r.Passed, Warn: r.Warn, Detail: r.Detail})
			}
			var probe preflight.DiscProbe
			if !skipDisc {
				probe = preflight.ProbeDisc(cmd.Context(), cfg.Drive.Device)
				view.Disc = discView{Detected: probe.Detected, Device: probe.Device}
				if probe.Detected {
					view.Disc.Label = probe.Label
					view.Disc.Media = probe.Media.String()
				}
			}

			if ctx.jsonOutput {
				if err := writeJSON(cmd, view); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := isTerminal(out)
				for _, line := range renderSectionHeader("Preflight", colorize) {
					fmt.Fprintln(out, line)
				}
				for _, r := range results {
					fmt.Fprintln(out, renderStatusLine(r.Name, resultKind(r), r.Detail, colorize))
				}
				if !skipDisc {
					kind := statusInfo
					if probe.Detected {
						kind = statusOK
					}
					fmt.Fprintln(out, renderStatusLine("Disc", kind, probe.DiscDetail(), colorize))
				}
			}

			if !preflight.Passed(results) {
				return services.Wrap(services.ErrConfiguration, "preflight", "check", "one or more checks failed", nil)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipDisc, "no-disc", false, "Skip probing the drive for a loaded disc")
	return cmd
}

func resultKind(r preflight.Result) statusKind {
	switch {
	case !r.Passed:
		return statusError
	case r.Warn:
		return statusWarn
	default:
		return statusOK
	}
}
