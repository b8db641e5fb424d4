package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"discparams/internal/config"
	"discparams/internal/execution"
	"discparams/internal/media"
	"discparams/internal/services"
	"discparams/internal/tools"
)

const defaultImageName = "disc"

// targetFlags describes the disc a default parameter set is built for.
type targetFlags struct {
	system string
	media  string
	drive  string
	file   string
	speed  int
}

func (f *targetFlags) register(cmd *cobra.Command, withMedia bool) {
	cmd.Flags().StringVar(&f.system, "system", "", "Disc system (for example pc, psx, ps2); defaults to [drive].system")
	if withMedia {
		cmd.Flags().StringVar(&f.media, "media", "", "Media type (cd, dvd, bd, hddvd, gd, ...)")
	}
	cmd.Flags().StringVar(&f.drive, "drive", "", "Drive the tool reads from; defaults to [drive].letter for dic and [drive].device for redumper")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Output image path, relative paths land in [paths].output_dir")
	cmd.Flags().IntVar(&f.speed, "speed", 0, "Read speed; defaults to [drive].speed")
}

// defaults builds a context for tool. A detected media type overrides the
// --media flag; fallbackName is used when --file is empty.
func (f *targetFlags) defaults(cmd *cobra.Command, cfg *config.Config, tool execution.Tool, detected media.Type, fallbackName string) (execution.Context, error) {
	system := media.NoSystem
	if name := strings.TrimSpace(f.system); name != "" {
		parsed, ok := media.ParseSystem(name)
		if !ok {
			return nil, services.Wrap(services.ErrValidation, "", "resolve system", fmt.Sprintf("unknown system %q", name), nil)
		}
		system = parsed
	}
	if system == media.NoSystem {
		system = cfg.DriveSystem()
	}

	mediaType, err := f.resolveMedia(system, detected)
	if err != nil {
		return nil, err
	}

	empty, err := tools.New(tool)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "", "resolve tool", "", err)
	}
	name := strings.TrimSpace(f.file)
	if name == "" {
		name = fallbackName
	}
	if filepath.Ext(name) == "" {
		if ext, ok := empty.DefaultExtension(mediaType); ok {
			name += ext
		}
	}

	defaults := cfg.ExecutionDefaults(tool, system, mediaType, name)
	if drive := strings.TrimSpace(f.drive); drive != "" {
		defaults.Drive = drive
	}
	if defaults.Drive == "" {
		return nil, services.Wrap(services.ErrConfiguration, "", "resolve drive", fmt.Sprintf("no drive configured for %s; set [drive].%s or pass --drive", tool, driveKey(tool)), nil)
	}
	if cmd.Flags().Changed("speed") {
		defaults.Speed = f.speed
	}

	ec, err := tools.Defaults(tool, defaults)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "", "defaults", "", err)
	}
	return ec, nil
}

func driveKey(tool execution.Tool) string {
	if tool == execution.ToolDIC {
		return "letter"
	}
	return "device"
}

func (f *targetFlags) resolveMedia(system media.System, detected media.Type) (media.Type, error) {
	if detected != media.Unknown {
		return detected, nil
	}
	if name := strings.TrimSpace(f.media); name != "" {
		parsed, ok := media.ParseType(name)
		if !ok {
			return media.Unknown, services.Wrap(services.ErrValidation, "", "resolve media", fmt.Sprintf("unknown media %q", name), nil)
		}
		return parsed, nil
	}
	if valid := system.ValidMedia(); len(valid) > 0 {
		return valid[0], nil
	}
	return media.Unknown, services.Wrap(services.ErrValidation, "", "resolve media", "--media is required when no system is set", nil)
}
