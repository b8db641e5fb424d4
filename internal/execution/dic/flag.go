package dic

// Flag is a DiscImageCreator option token.
type Flag string

const (
	FlagAddOffset                        Flag = "/a"
	FlagAMSF                             Flag = "/p"
	FlagAtariJaguar                      Flag = "/aj"
	FlagBEOpcode                         Flag = "/be"
	FlagC2Opcode                         Flag = "/c2"
	FlagCopyrightManagementInformation   Flag = "/c"
	FlagD8Opcode                         Flag = "/d8"
	FlagDatExpand                        Flag = "/d"
	FlagDisableBeep                      Flag = "/q"
	FlagDVDReread                        Flag = "/rr"
	FlagExtractMicroSoftCabFile          Flag = "/mscf"
	FlagFix                              Flag = "/fix"
	FlagForceUnitAccess                  Flag = "/f"
	FlagMultiSectorRead                  Flag = "/mr"
	FlagMultiSession                     Flag = "/ms"
	FlagNoFixSubP                        Flag = "/np"
	FlagNoFixSubQ                        Flag = "/nq"
	FlagNoFixSubQLibCrypt                Flag = "/nl"
	FlagNoFixSubQSecuROM                 Flag = "/ns"
	FlagNoFixSubRtoW                     Flag = "/nr"
	FlagNoSkipSS                         Flag = "/nss"
	FlagPadSector                        Flag = "/ps"
	FlagRange                            Flag = "/ra"
	FlagRaw                              Flag = "/raw"
	FlagResume                           Flag = "/re"
	FlagReverse                          Flag = "/r"
	FlagScanAntiMod                      Flag = "/am"
	FlagScanFileProtect                  Flag = "/sf"
	FlagScanSectorProtect                Flag = "/ss"
	FlagSeventyFour                      Flag = "/74"
	FlagSkipSector                       Flag = "/sk"
	FlagSubchannelReadLevel              Flag = "/s"
	FlagUseAnchorVolumeDescriptorPointer Flag = "/avdp"
	FlagVideoNow                         Flag = "/vn"
	FlagVideoNowColor                    Flag = "/vnc"
	FlagVideoNowXP                       Flag = "/vnx"
)

// flagOrder is the emission order of flags.
var flagOrder = []Flag{
	FlagAddOffset, FlagAMSF, FlagAtariJaguar, FlagBEOpcode, FlagC2Opcode,
	FlagCopyrightManagementInformation, FlagD8Opcode, FlagDatExpand, FlagDisableBeep,
	FlagDVDReread, FlagExtractMicroSoftCabFile, FlagFix, FlagForceUnitAccess,
	FlagMultiSectorRead, FlagMultiSession, FlagNoFixSubP, FlagNoFixSubQ,
	FlagNoFixSubQLibCrypt, FlagNoFixSubQSecuROM, FlagNoFixSubRtoW, FlagNoSkipSS,
	FlagPadSector, FlagRange, FlagRaw, FlagResume, FlagReverse, FlagScanAntiMod,
	FlagScanFileProtect, FlagScanSectorProtect, FlagSeventyFour, FlagSkipSector,
	FlagSubchannelReadLevel, FlagUseAnchorVolumeDescriptorPointer, FlagVideoNow,
	FlagVideoNowColor, FlagVideoNowXP,
}

// Flags lists every flag in emission order.
func Flags() []Flag {
	out := make([]Flag, len(flagOrder))
	copy(out, flagOrder)
	return out
}

type valueKind int

const (
	valueNone valueKind = iota
	valueOptionalInt
	valueRequiredInt
	valueOptionalByte
	valueOpcode
	valueC2
	valueSkip
	valueLBAPair
	valueReverse
)

type flagSpec struct {
	kind        valueKind
	min, max    int32
	bounded     bool
	description string
}

var flagSpecs = map[Flag]flagSpec{
	FlagAddOffset:                        {kind: valueRequiredInt, description: "Add sample offset to the read offset"},
	FlagAMSF:                             {description: "Start reading from 00:00:00"},
	FlagAtariJaguar:                      {description: "Atari Jaguar CD layout"},
	FlagBEOpcode:                         {kind: valueOpcode, description: "Read with the 0xBE opcode (raw or pack)"},
	FlagC2Opcode:                         {kind: valueC2, description: "Reread sectors reporting C2 errors"},
	FlagCopyrightManagementInformation:   {description: "Log copyright management information"},
	FlagD8Opcode:                         {description: "Read with the 0xD8 opcode"},
	FlagDatExpand:                        {description: "Write extended DAT output"},
	FlagDisableBeep:                      {description: "Disable the completion beep"},
	FlagDVDReread:                        {kind: valueOptionalInt, description: "Reread unreadable DVD/BD sectors"},
	FlagExtractMicroSoftCabFile:          {description: "Extract Microsoft cabinet files"},
	FlagFix:                              {kind: valueRequiredInt, description: "Fix a corrupted sector range"},
	FlagForceUnitAccess:                  {kind: valueOptionalInt, description: "Bypass the drive cache"},
	FlagMultiSectorRead:                  {kind: valueOptionalInt, description: "Read multiple sectors per request"},
	FlagMultiSession:                     {description: "Read the lead-out of each session"},
	FlagNoFixSubP:                        {description: "Do not fix subchannel P"},
	FlagNoFixSubQ:                        {description: "Do not fix subchannel Q"},
	FlagNoFixSubQLibCrypt:                {description: "Do not fix LibCrypt subchannel Q"},
	FlagNoFixSubQSecuROM:                 {description: "Do not fix SecuROM subchannel Q"},
	FlagNoFixSubRtoW:                     {description: "Do not fix subchannels R to W"},
	FlagNoSkipSS:                         {kind: valueOptionalInt, description: "Do not skip the security sectors"},
	FlagPadSector:                        {kind: valueOptionalByte, description: "Pad unreadable sectors with a byte"},
	FlagRange:                            {kind: valueLBAPair, description: "Dump a start/end LBA range"},
	FlagRaw:                              {description: "Read raw sectors"},
	FlagResume:                           {description: "Resume an interrupted dump"},
	FlagReverse:                          {kind: valueReverse, description: "Read from the last sector backwards"},
	FlagScanAntiMod:                      {description: "Scan for anti-mod protection"},
	FlagScanFileProtect:                  {kind: valueOptionalInt, description: "Scan files for protection"},
	FlagScanSectorProtect:                {description: "Scan sectors for protection"},
	FlagSeventyFour:                      {description: "Treat the disc as 74 minutes"},
	FlagSkipSector:                       {kind: valueSkip, description: "Skip protected sectors"},
	FlagSubchannelReadLevel:              {kind: valueOptionalInt, min: 0, max: 2, bounded: true, description: "Subchannel read level"},
	FlagUseAnchorVolumeDescriptorPointer: {description: "Use the anchor volume descriptor pointer"},
	FlagVideoNow:                         {kind: valueOptionalInt, description: "VideoNow disc with sample offset"},
	FlagVideoNowColor:                    {description: "VideoNow Color disc"},
	FlagVideoNowXP:                       {description: "VideoNow XP disc"},
}

// Description returns the help text for f.
func (f Flag) Description() string {
	return flagSpecs[f].description
}

var cdFlags = []Flag{
	FlagAddOffset, FlagAMSF, FlagAtariJaguar, FlagBEOpcode, FlagC2Opcode, FlagD8Opcode,
	FlagDatExpand, FlagDisableBeep, FlagExtractMicroSoftCabFile, FlagForceUnitAccess,
	FlagMultiSectorRead, FlagMultiSession, FlagNoFixSubP, FlagNoFixSubQ,
	FlagNoFixSubQLibCrypt, FlagNoFixSubQSecuROM, FlagNoFixSubRtoW, FlagPadSector,
	FlagReverse, FlagScanAntiMod, FlagScanFileProtect, FlagScanSectorProtect,
	FlagSeventyFour, FlagSkipSector, FlagSubchannelReadLevel, FlagVideoNow,
	FlagVideoNowColor, FlagVideoNowXP,
}

var audioDataFlags = []Flag{
	FlagAddOffset, FlagBEOpcode, FlagC2Opcode, FlagD8Opcode, FlagDatExpand,
	FlagDisableBeep, FlagForceUnitAccess, FlagNoFixSubP, FlagNoFixSubQ, FlagNoFixSubRtoW,
	FlagPadSector, FlagReverse, FlagScanAntiMod, FlagScanFileProtect, FlagSkipSector,
	FlagSubchannelReadLevel,
}

var swapFlags = []Flag{
	FlagAddOffset, FlagBEOpcode, FlagC2Opcode, FlagD8Opcode, FlagDatExpand,
	FlagDisableBeep, FlagForceUnitAccess, FlagNoFixSubP, FlagNoFixSubQ,
	FlagNoFixSubQLibCrypt, FlagNoFixSubQSecuROM, FlagNoFixSubRtoW, FlagPadSector,
	FlagScanAntiMod, FlagScanFileProtect, FlagScanSectorProtect, FlagSeventyFour,
	FlagSubchannelReadLevel, FlagVideoNow, FlagVideoNowColor, FlagVideoNowXP,
}

var xboxFlags = []Flag{FlagDatExpand, FlagDisableBeep, FlagForceUnitAccess, FlagNoSkipSS}

// commandSupport is the flag support matrix.
var commandSupport = map[Command][]Flag{
	CommandAudio:       audioDataFlags,
	CommandData:        audioDataFlags,
	CommandCompactDisc: cdFlags,
	CommandSwap:        swapFlags,
	CommandGDROM: {
		FlagBEOpcode, FlagC2Opcode, FlagD8Opcode, FlagDatExpand, FlagDisableBeep,
		FlagForceUnitAccess, FlagNoFixSubP, FlagNoFixSubQ, FlagNoFixSubRtoW,
		FlagSubchannelReadLevel,
	},
	CommandDigitalVideoDisc: {
		FlagCopyrightManagementInformation, FlagDatExpand, FlagDisableBeep, FlagDVDReread,
		FlagFix, FlagForceUnitAccess, FlagPadSector, FlagRange, FlagRaw, FlagResume,
		FlagReverse, FlagScanFileProtect, FlagSkipSector, FlagUseAnchorVolumeDescriptorPointer,
	},
	CommandBluRay: {
		FlagDatExpand, FlagDisableBeep, FlagDVDReread, FlagForceUnitAccess,
		FlagUseAnchorVolumeDescriptorPointer,
	},
	CommandSACD:       {FlagDisableBeep},
	CommandXbox:       xboxFlags,
	CommandXboxSwap:   xboxFlags,
	CommandXGD2Swap:   xboxFlags,
	CommandXGD3Swap:   xboxFlags,
	CommandFloppy:     {FlagDatExpand},
	CommandDisk:       {FlagDatExpand},
	CommandTape:       nil,
	CommandClose:      nil,
	CommandDriveSpeed: nil,
	CommandEject:      nil,
	CommandMDS:        nil,
	CommandMerge:      nil,
	CommandReset:      nil,
	CommandStart:      nil,
	CommandStop:       nil,
	CommandSub:        nil,
	CommandVersion:    nil,
}

// SupportedFlags returns the flags command accepts, in emission order.
func SupportedFlags(command Command) []Flag {
	set := make(map[Flag]bool, len(commandSupport[command]))
	for _, flag := range commandSupport[command] {
		set[flag] = true
	}
	var out []Flag
	for _, flag := range flagOrder {
		if set[flag] {
			out = append(out, flag)
		}
	}
	return out
}
