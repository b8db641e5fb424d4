package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"discparams/internal/drivemonitor"
	"discparams/internal/logging"
	"discparams/internal/media"
	"discparams/internal/services"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var target targetFlags
	var device string
	var dump bool

	cmd := &cobra.Command{
		Use:   "watch [tool]",
		Short: "Watch the drive and generate parameters for each inserted disc",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			tool, err := resolveTool(cfg, firstArg(args))
			if err != nil {
				return err
			}
			if dump {
				if err := requirePreflight(cfg); err != nil {
					return err
				}
			}
			if device == "" {
				device = cfg.Drive.Device
			}

			watchCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			handler := func(hctx context.Context, dev string, mediaType media.Type) error {
				if mediaType == media.Unknown {
					return services.Wrap(services.ErrValidation, "watch", "detect media", fmt.Sprintf("unrecognised media in %s", dev), nil)
				}
				name := "disc-" + time.Now().Format("20060102-150405")
				ec, err := target.defaults(cmd, cfg, tool, mediaType, name)
				if err != nil {
					return err
				}
				parameters, err := generateOrFail(ec)
				if err != nil {
					return err
				}
				if ctx.jsonOutput {
					if err := writeJSON(cmd, newContextView(ec, parameters)); err != nil {
						return err
					}
				} else {
					fmt.Fprintf(out, "%s %s: %s\n", dev, mediaType, parameters)
				}
				if !dump {
					return nil
				}
				result, logPath, err := ctx.dump(hctx, cmd.ErrOrStderr(), cfg, ec)
				if err != nil {
					return err
				}
				return printRunResult(cmd, ctx, result, logPath)
			}

			monitor := drivemonitor.New(device, logger, handler)
			if monitor == nil {
				return services.Wrap(services.ErrConfiguration, "watch", "", "no drive device configured", nil)
			}
			if err := monitor.Start(watchCtx); err != nil {
				return err
			}
			defer monitor.Stop()
			if !monitor.Running() {
				return services.Wrap(services.ErrConfiguration, "watch", "start", "udev netlink monitoring is unavailable", nil)
			}

			logger.Info("waiting for discs",
				logging.String(logging.FieldDevice, device),
				logging.String(logging.FieldTool, string(tool)),
				logging.Bool("dump", dump),
			)
			<-watchCtx.Done()
			if err := watchCtx.Err(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	target.register(cmd, false)
	cmd.Flags().StringVar(&device, "device", "", "udev device node to watch; defaults to [drive].device")
	cmd.Flags().BoolVar(&dump, "dump", false, "Run the dump for each inserted disc")
	return cmd
}
