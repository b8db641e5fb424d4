package redumper

import (
	"path/filepath"
	"strings"

	"discparams/internal/execution"
	"discparams/internal/media"
)

func modeFor(mediaType media.Type) (Mode, bool) {
	switch mediaType {
	case media.CDROM:
		return ModeCD, true
	case media.DVD, media.HDDVD:
		return ModeDVD, true
	case media.BluRay:
		return ModeBD, true
	default:
		return "", false
	}
}

// SetDefaults replaces the state with defaults for the target. The output
// filename is split into --image-path and an extension-less --image-name.
func (c *Context) SetDefaults(defaults execution.Defaults) error {
	c.reset()
	if !defaults.System.Supports(defaults.MediaType) {
		return execution.ShapeError(-1, defaults.MediaType.String(), "media is not valid for %s", defaults.System)
	}
	mode, ok := modeFor(defaults.MediaType)
	if !ok {
		return execution.ShapeError(-1, defaults.MediaType.String(), "redumper cannot dump this media")
	}
	c.SelectMode(mode)

	if defaults.Drive != "" && !c.SetString(OptionDrive, defaults.Drive) {
		c.reset()
		return execution.ValueError(-1, defaults.Drive, "drive must not contain a double quote")
	}
	c.SetSpeed(defaults.Speed)
	if defaults.Filename != "" {
		dir, file := filepath.Split(defaults.Filename)
		name := strings.TrimSuffix(file, filepath.Ext(file))
		dir = strings.TrimRight(dir, `/\`)
		if (dir != "" && !c.SetString(OptionImagePath, dir)) || (name != "" && !c.SetString(OptionImageName, name)) {
			c.reset()
			return execution.ValueError(-1, defaults.Filename, "filename must not contain a double quote")
		}
	}

	opts := defaults.Options.Redumper
	c.SetInt(OptionRetries, int64(opts.RereadCount))
	if opts.EnableVerbose {
		c.Enable(OptionVerbose)
	}
	if opts.EnableDebug {
		c.Enable(OptionDebug)
	}
	if opts.DriveType != "" {
		c.SetString(OptionDriveType, opts.DriveType)
	}
	if opts.ReadMethod != "" {
		c.SetString(OptionDriveReadMethod, opts.ReadMethod)
	}
	if opts.SectorOrder != "" {
		c.SetString(OptionDriveSectorOrder, opts.SectorOrder)
	}
	if opts.RefineSubchannel {
		c.Enable(OptionRefineSubchannel)
	}
	if defaults.MediaType == media.CDROM {
		if opts.LeadinRetryCount > 0 {
			c.SetInt(OptionPlextorLeadinRetries, int64(opts.LeadinRetryCount))
		}
		if opts.EnableSkeleton && defaults.System.Family() == media.FamilyPlayStation {
			c.Enable(OptionSkeleton)
		}
	}
	return nil
}
