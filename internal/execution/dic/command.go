package dic

// Command is a DiscImageCreator base command.
type Command string

const (
	CommandAudio            Command = "audio"
	CommandBluRay           Command = "bd"
	CommandClose            Command = "close"
	CommandCompactDisc      Command = "cd"
	CommandData             Command = "data"
	CommandDigitalVideoDisc Command = "dvd"
	CommandDisk             Command = "disk"
	CommandDriveSpeed       Command = "ls"
	CommandEject            Command = "eject"
	CommandFloppy           Command = "fd"
	CommandGDROM            Command = "gd"
	CommandMDS              Command = "mds"
	CommandMerge            Command = "merge"
	CommandReset            Command = "reset"
	CommandSACD             Command = "sacd"
	CommandStart            Command = "start"
	CommandStop             Command = "stop"
	CommandSub              Command = "sub"
	CommandSwap             Command = "swap"
	CommandTape             Command = "tape"
	CommandVersion          Command = "/v"
	CommandXbox             Command = "xbox"
	CommandXboxSwap         Command = "xboxswap"
	CommandXGD2Swap         Command = "xgd2swap"
	CommandXGD3Swap         Command = "xgd3swap"
)

// Commands lists every base command in declaration order.
func Commands() []Command {
	return []Command{
		CommandAudio, CommandBluRay, CommandClose, CommandCompactDisc, CommandData,
		CommandDigitalVideoDisc, CommandDisk, CommandDriveSpeed, CommandEject, CommandFloppy,
		CommandGDROM, CommandMDS, CommandMerge, CommandReset, CommandSACD, CommandStart,
		CommandStop, CommandSub, CommandSwap, CommandTape, CommandVersion, CommandXbox,
		CommandXboxSwap, CommandXGD2Swap, CommandXGD3Swap,
	}
}

// grammar is the positional contract of a base command, in emission order:
// drive, file, merge file, speed, LBA pair, security-sector LBAs.
type grammar struct {
	drive        bool
	file         bool
	mergeFile    bool
	speedMax     int64
	lbaRange     bool
	securityLBAs bool
	// reverseRange makes /r carry a start/end LBA pair.
	reverseRange bool
	dumping      bool
}

func (g grammar) hasSpeed() bool { return g.speedMax > 0 }

// minTokens is the smallest legal token count, command included.
func (g grammar) minTokens() int {
	n := 1
	for _, present := range []bool{g.drive, g.file, g.mergeFile, g.hasSpeed()} {
		if present {
			n++
		}
	}
	if g.lbaRange {
		n += 2
	}
	return n
}

var grammars = map[Command]grammar{
	CommandAudio:            {drive: true, file: true, speedMax: 72, lbaRange: true, dumping: true},
	CommandData:             {drive: true, file: true, speedMax: 72, lbaRange: true, dumping: true},
	CommandCompactDisc:      {drive: true, file: true, speedMax: 72, dumping: true},
	CommandGDROM:            {drive: true, file: true, speedMax: 72, dumping: true},
	CommandSwap:             {drive: true, file: true, speedMax: 72, dumping: true},
	CommandDigitalVideoDisc: {drive: true, file: true, speedMax: 16, reverseRange: true, dumping: true},
	CommandBluRay:           {drive: true, file: true, speedMax: 12, dumping: true},
	CommandSACD:             {drive: true, file: true, speedMax: 16, dumping: true},
	CommandXboxSwap:         {drive: true, file: true, speedMax: 72, securityLBAs: true, dumping: true},
	CommandXGD2Swap:         {drive: true, file: true, speedMax: 72, securityLBAs: true, dumping: true},
	CommandXGD3Swap:         {drive: true, file: true, speedMax: 72, securityLBAs: true, dumping: true},
	CommandXbox:             {drive: true, file: true, dumping: true},
	CommandFloppy:           {drive: true, file: true, dumping: true},
	CommandDisk:             {drive: true, file: true, dumping: true},
	CommandClose:            {drive: true},
	CommandEject:            {drive: true},
	CommandReset:            {drive: true},
	CommandStart:            {drive: true},
	CommandStop:             {drive: true},
	CommandDriveSpeed:       {drive: true},
	CommandMDS:              {file: true},
	CommandSub:              {file: true},
	CommandTape:             {file: true, dumping: true},
	CommandMerge:            {file: true, mergeFile: true},
	CommandVersion:          {},
}
