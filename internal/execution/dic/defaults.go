package dic

import (
	"discparams/internal/execution"
	"discparams/internal/media"
)

// commandFor picks the base command that dumps mediaType on system.
func commandFor(system media.System, mediaType media.Type) (Command, bool) {
	switch mediaType {
	case media.CDROM:
		return CommandCompactDisc, true
	case media.GDROM:
		return CommandGDROM, true
	case media.DVD:
		if system == media.MicrosoftXbox || system == media.MicrosoftXbox360 {
			return CommandXbox, true
		}
		return CommandDigitalVideoDisc, true
	case media.HDDVD, media.NintendoGameCubeGameDisc, media.NintendoWiiOpticalDisc:
		return CommandDigitalVideoDisc, true
	case media.BluRay:
		return CommandBluRay, true
	case media.FloppyDisk:
		return CommandFloppy, true
	case media.HardDisk:
		return CommandDisk, true
	case media.DataCartridge:
		return CommandTape, true
	default:
		return "", false
	}
}

// SetDefaults replaces the state with defaults for the target. Defaults are
// layered: media baseline, then system family, then user options. A
// (system, media) pair outside the system's valid set leaves the context
// without a command.
func (c *Context) SetDefaults(defaults execution.Defaults) error {
	c.reset()
	if !defaults.System.Supports(defaults.MediaType) {
		return execution.ShapeError(-1, defaults.MediaType.String(), "media is not valid for %s", defaults.System)
	}
	command, ok := commandFor(defaults.System, defaults.MediaType)
	if !ok {
		return execution.ShapeError(-1, defaults.MediaType.String(), "no base command dumps this media")
	}
	c.SelectCommand(command)
	c.DrivePath = defaults.Drive
	c.Filename = defaults.Filename
	c.SetSpeed(defaults.Speed)

	opts := defaults.Options.DIC
	isCD := defaults.MediaType == media.CDROM
	isDVD := defaults.MediaType == media.DVD || defaults.MediaType == media.HDDVD

	switch defaults.MediaType {
	case media.CDROM, media.GDROM:
		if c.SetFlag(FlagC2Opcode, true) {
			c.C2 = C2Reread{Count: Int32(opts.RereadCount)}
		}
	case media.DVD, media.HDDVD:
		c.SetValue(FlagDVDReread, opts.DVDRereadCount)
	case media.BluRay:
		c.SetValue(FlagDVDReread, opts.BDRereadCount)
	case media.NintendoGameCubeGameDisc, media.NintendoWiiOpticalDisc:
		c.SetFlag(FlagRaw, true)
	}

	if isCD {
		switch defaults.System {
		case media.IBMPCCompatible, media.AppleMacintosh:
			c.SetFlag(FlagNoFixSubQSecuROM, true)
			c.SetFlag(FlagScanFileProtect, true)
			c.SetValue(FlagSubchannelReadLevel, 2)
		case media.SonyPlayStation:
			c.SetFlag(FlagScanAntiMod, true)
			c.SetFlag(FlagNoFixSubQLibCrypt, true)
		case media.NECPCEngineCD:
			if opts.MultiSectorRead {
				if opts.MultiSectorReadValue > 0 {
					c.SetValue(FlagMultiSectorRead, opts.MultiSectorReadValue)
				} else {
					c.SetFlag(FlagMultiSectorRead, true)
				}
			}
		}
	}

	if opts.QuietMode {
		c.SetFlag(FlagDisableBeep, true)
	}
	if opts.ParanoidMode {
		if isCD {
			if defaults.System == media.IBMPCCompatible {
				c.SetFlag(FlagScanSectorProtect, true)
			}
			c.SetValue(FlagSubchannelReadLevel, 2)
		}
		if isDVD {
			c.SetFlag(FlagCopyrightManagementInformation, true)
		}
	}
	if opts.UseCMIFlag && isDVD {
		c.SetFlag(FlagCopyrightManagementInformation, true)
	}
	return nil
}
