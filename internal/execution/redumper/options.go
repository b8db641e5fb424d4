package redumper

// Mode is a Redumper base command.
type Mode string

const (
	ModeCD         Mode = "cd"
	ModeDVD        Mode = "dvd"
	ModeBD         Mode = "bd"
	ModeSACD       Mode = "sacd"
	ModeDump       Mode = "dump"
	ModeRefine     Mode = "refine"
	ModeVerify     Mode = "verify"
	ModeProtection Mode = "protection"
	ModeSplit      Mode = "split"
	ModeHash       Mode = "hash"
	ModeInfo       Mode = "info"
	ModeSkeleton   Mode = "skeleton"
	ModeSubchannel Mode = "subchannel"
	ModeEject      Mode = "eject"
	ModeDVDKey     Mode = "dvdkey"
)

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{
		ModeCD, ModeDVD, ModeBD, ModeSACD, ModeDump, ModeRefine, ModeVerify, ModeProtection,
		ModeSplit, ModeHash, ModeInfo, ModeSkeleton, ModeSubchannel, ModeEject, ModeDVDKey,
	}
}

func (m Mode) isDumping() bool {
	switch m {
	case ModeCD, ModeDVD, ModeBD, ModeSACD, ModeDump, ModeRefine:
		return true
	default:
		return false
	}
}

// Option is a Redumper long option.
type Option string

const (
	OptionHelp                  Option = "--help"
	OptionVerbose               Option = "--verbose"
	OptionDebug                 Option = "--debug"
	OptionAutoEject             Option = "--auto-eject"
	OptionSkeleton              Option = "--skeleton"
	OptionDrive                 Option = "--drive"
	OptionSpeed                 Option = "--speed"
	OptionRetries               Option = "--retries"
	OptionImagePath             Option = "--image-path"
	OptionImageName             Option = "--image-name"
	OptionOverwrite             Option = "--overwrite"
	OptionForceSplit            Option = "--force-split"
	OptionLeaveUnchanged        Option = "--leave-unchanged"
	OptionDriveType             Option = "--drive-type"
	OptionDriveReadOffset       Option = "--drive-read-offset"
	OptionDriveC2Shift          Option = "--drive-c2-shift"
	OptionDrivePregapStart      Option = "--drive-pregap-start"
	OptionDriveReadMethod       Option = "--drive-read-method"
	OptionDriveSectorOrder      Option = "--drive-sector-order"
	OptionPlextorSkipLeadin     Option = "--plextor-skip-leadin"
	OptionPlextorLeadinRetries  Option = "--plextor-leadin-retries"
	OptionAsusSkipLeadout       Option = "--asus-skip-leadout"
	OptionDisableCDText         Option = "--disable-cdtext"
	OptionCorrectOffsetShift    Option = "--correct-offset-shift"
	OptionForceOffset           Option = "--force-offset"
	OptionAudioSilenceThreshold Option = "--audio-silence-threshold"
	OptionSkipFill              Option = "--skip-fill"
	OptionISO9660Trim           Option = "--iso9660-trim"
	OptionLBAStart              Option = "--lba-start"
	OptionLBAEnd                Option = "--lba-end"
	OptionRefineSubchannel      Option = "--refine-subchannel"
	OptionSkip                  Option = "--skip"
	OptionDumpReadSize          Option = "--dump-read-size"
	OptionOverreadLeadout       Option = "--overread-leadout"
	OptionForceUnscrambled      Option = "--force-unscrambled"
)

type optionKind int

const (
	kindSwitch optionKind = iota
	kindInt
	kindByte
	kindString
)

type optionSpec struct {
	option      Option
	kind        optionKind
	alt         []string
	description string
}

// optionSpecs is in emission order.
var optionSpecs = []optionSpec{
	{OptionHelp, kindSwitch, []string{"-h"}, "Print usage"},
	{OptionVerbose, kindSwitch, []string{"-v"}, "Verbose logging"},
	{OptionDebug, kindSwitch, nil, "Debug logging"},
	{OptionAutoEject, kindSwitch, nil, "Eject the disc when finished"},
	{OptionSkeleton, kindSwitch, nil, "Create a skeleton image"},
	{OptionDrive, kindString, nil, "Drive to dump from"},
	{OptionSpeed, kindInt, nil, "Drive read speed"},
	{OptionRetries, kindInt, nil, "Sector reread attempts"},
	{OptionImagePath, kindString, nil, "Output directory"},
	{OptionImageName, kindString, nil, "Output image base name"},
	{OptionOverwrite, kindSwitch, nil, "Overwrite an existing dump"},
	{OptionForceSplit, kindSwitch, nil, "Split tracks despite errors"},
	{OptionLeaveUnchanged, kindSwitch, nil, "Leave track data unscrambled"},
	{OptionDriveType, kindString, nil, "Override the drive type"},
	{OptionDriveReadOffset, kindInt, nil, "Override the drive read offset"},
	{OptionDriveC2Shift, kindInt, nil, "Override the drive C2 shift"},
	{OptionDrivePregapStart, kindInt, nil, "Override the pregap start"},
	{OptionDriveReadMethod, kindString, nil, "Override the read method"},
	{OptionDriveSectorOrder, kindString, nil, "Override the sector order"},
	{OptionPlextorSkipLeadin, kindSwitch, nil, "Skip the Plextor lead-in read"},
	{OptionPlextorLeadinRetries, kindInt, nil, "Plextor lead-in retries"},
	{OptionAsusSkipLeadout, kindSwitch, nil, "Skip the ASUS lead-out read"},
	{OptionDisableCDText, kindSwitch, nil, "Do not read CD-TEXT"},
	{OptionCorrectOffsetShift, kindSwitch, nil, "Correct offset shifts between sessions"},
	{OptionForceOffset, kindInt, nil, "Force a sample offset"},
	{OptionAudioSilenceThreshold, kindInt, nil, "Audio silence threshold"},
	{OptionSkipFill, kindByte, nil, "Fill byte for skipped sectors"},
	{OptionISO9660Trim, kindSwitch, nil, "Trim to the ISO9660 volume size"},
	{OptionLBAStart, kindInt, nil, "First LBA to dump"},
	{OptionLBAEnd, kindInt, nil, "Last LBA to dump"},
	{OptionRefineSubchannel, kindSwitch, nil, "Refine subchannel data"},
	{OptionSkip, kindString, nil, "LBA ranges to skip"},
	{OptionDumpReadSize, kindInt, nil, "Sectors per read request"},
	{OptionOverreadLeadout, kindSwitch, nil, "Read into the lead-out"},
	{OptionForceUnscrambled, kindSwitch, nil, "Read data sectors unscrambled"},
}

func optionOrder() []Option {
	out := make([]Option, len(optionSpecs))
	for i, spec := range optionSpecs {
		out[i] = spec.option
	}
	return out
}

func lookupSpec(option Option) (optionSpec, bool) {
	for _, spec := range optionSpecs {
		if spec.option == option {
			return spec, true
		}
	}
	return optionSpec{}, false
}

// Description returns the help text for o.
func (o Option) Description() string {
	spec, _ := lookupSpec(o)
	return spec.description
}

var common = []Option{OptionHelp, OptionVerbose, OptionDebug}

var driveOptions = []Option{
	OptionDrive, OptionSpeed, OptionRetries, OptionDriveType, OptionDriveReadOffset,
	OptionDriveC2Shift, OptionDrivePregapStart, OptionDriveReadMethod, OptionDriveSectorOrder,
	OptionPlextorSkipLeadin, OptionPlextorLeadinRetries, OptionAsusSkipLeadout,
	OptionDisableCDText, OptionLBAStart, OptionLBAEnd, OptionRefineSubchannel, OptionSkip,
	OptionDumpReadSize, OptionOverreadLeadout, OptionForceUnscrambled,
}

var imageOptions = []Option{
	OptionImagePath, OptionImageName, OptionOverwrite, OptionForceSplit,
	OptionLeaveUnchanged, OptionCorrectOffsetShift, OptionForceOffset,
	OptionAudioSilenceThreshold, OptionSkipFill, OptionISO9660Trim,
}

func join(groups ...[]Option) []Option {
	var out []Option
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

// modeSupport is the option support matrix.
var modeSupport = map[Mode][]Option{
	ModeCD:         join(common, driveOptions, imageOptions, []Option{OptionAutoEject, OptionSkeleton}),
	ModeDVD:        join(common, driveOptions, imageOptions, []Option{OptionAutoEject, OptionSkeleton}),
	ModeBD:         join(common, driveOptions, imageOptions, []Option{OptionAutoEject, OptionSkeleton}),
	ModeSACD:       join(common, driveOptions, imageOptions, []Option{OptionAutoEject}),
	ModeDump:       join(common, driveOptions, []Option{OptionImagePath, OptionImageName, OptionOverwrite}),
	ModeRefine:     join(common, driveOptions, []Option{OptionImagePath, OptionImageName}),
	ModeVerify:     join(common, []Option{OptionDrive, OptionSpeed}, imageOptions),
	ModeProtection: join(common, imageOptions),
	ModeSplit:      join(common, imageOptions),
	ModeHash:       join(common, imageOptions),
	ModeInfo:       join(common, imageOptions),
	ModeSkeleton:   join(common, imageOptions),
	ModeSubchannel: join(common, []Option{OptionImagePath, OptionImageName}),
	ModeEject:      join(common, []Option{OptionDrive}),
	ModeDVDKey:     join(common, []Option{OptionDrive, OptionSpeed}),
}
