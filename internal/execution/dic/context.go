// Package dic models the DiscImageCreator command line.
package dic

import (
	"strings"

	"discparams/internal/execution"
	"discparams/internal/input"
	"discparams/internal/media"
)

// Context is the structured state of one DiscImageCreator invocation.
type Context struct {
	execution.Base[Command, Flag]

	DrivePath     string
	Filename      string
	MergeFilename string
	DriveSpeed    *int32
	// Range is the positional start/end pair of audio and data.
	Range        *LBARange
	SecurityLBAs []int64

	BEOpcode   string
	C2         C2Reread
	Skip       *SkipSector
	RangeLBA   *LBARange
	ReverseLBA *LBARange

	values map[Flag]int32
}

var _ execution.Context = (*Context)(nil)

// New returns an empty context with no base command.
func New() *Context {
	return &Context{
		Base:   execution.NewBase(commandSupport, flagOrder),
		values: make(map[Flag]int32),
	}
}

// NewCommand returns an empty context for command.
func NewCommand(command Command) (*Context, bool) {
	c := New()
	return c, c.SelectCommand(command)
}

// FromParameters re-hydrates a context from an argument string.
func FromParameters(parameters string) (*Context, error) {
	c := New()
	if err := c.Parse(parameters); err != nil {
		return nil, err
	}
	return c, nil
}

// SelectCommand switches the base command and drops all other state.
func (c *Context) SelectCommand(command Command) bool {
	c.reset()
	return c.Base.SelectCommand(command)
}

func (c *Context) reset() {
	c.Base.Reset()
	c.DrivePath = ""
	c.Filename = ""
	c.MergeFilename = ""
	c.DriveSpeed = nil
	c.Range = nil
	c.SecurityLBAs = nil
	c.BEOpcode = ""
	c.C2 = C2Reread{}
	c.Skip = nil
	c.RangeLBA = nil
	c.ReverseLBA = nil
	c.values = make(map[Flag]int32)
}

func (c *Context) grammar() (grammar, bool) {
	command, ok := c.BaseCommand()
	if !ok {
		return grammar{}, false
	}
	g, ok := grammars[command]
	return g, ok
}

func (c *Context) Tool() execution.Tool { return execution.ToolDIC }

func (c *Context) Command() string {
	command, ok := c.BaseCommand()
	if !ok {
		return ""
	}
	return string(command)
}

func (c *Context) InputPath() string { return c.DrivePath }

func (c *Context) OutputPath() string { return c.Filename }

func (c *Context) Speed() (int, bool) {
	if c.DriveSpeed == nil {
		return 0, false
	}
	return int(*c.DriveSpeed), true
}

// SetSpeed stores speed clamped to the command's bound. Commands without a
// speed slot ignore it.
func (c *Context) SetSpeed(speed int) {
	g, ok := c.grammar()
	if !ok || !g.hasSpeed() {
		return
	}
	slot := input.NewInt32("speed").WithBounds(0, int32(g.speedMax))
	slot.Set(clampInt32(speed))
	value, _ := slot.Get()
	c.DriveSpeed = &value
}

func (c *Context) IsDumpingCommand() bool {
	g, ok := c.grammar()
	return ok && g.dumping
}

func (c *Context) MediaType() (media.Type, bool) {
	command, ok := c.BaseCommand()
	if !ok {
		return media.Unknown, false
	}
	switch command {
	case CommandCompactDisc, CommandAudio, CommandData, CommandSwap:
		return media.CDROM, true
	case CommandGDROM:
		return media.GDROM, true
	case CommandDigitalVideoDisc, CommandXbox, CommandXboxSwap, CommandXGD2Swap, CommandXGD3Swap:
		return media.DVD, true
	case CommandBluRay:
		return media.BluRay, true
	case CommandFloppy:
		return media.FloppyDisk, true
	case CommandDisk:
		return media.HardDisk, true
	case CommandTape:
		return media.DataCartridge, true
	default:
		return media.Unknown, false
	}
}

func (c *Context) DefaultExtension(mediaType media.Type) (string, bool) {
	switch mediaType {
	case media.Unknown:
		return "", false
	case media.CDROM, media.GDROM:
		return ".bin", true
	case media.DVD, media.HDDVD, media.BluRay, media.NintendoGameCubeGameDisc, media.NintendoWiiOpticalDisc:
		return ".iso", true
	case media.FloppyDisk, media.HardDisk:
		return ".img", true
	default:
		return ".bin", true
	}
}

// Value returns the integer sub-value of a single-valued flag.
func (c *Context) Value(flag Flag) (int32, bool) {
	value, ok := c.values[flag]
	return value, ok
}

// SetValue enables flag with an integer sub-value. It reports false when the
// command does not support flag or flag carries no integer.
func (c *Context) SetValue(flag Flag, value int32) bool {
	spec := flagSpecs[flag]
	switch spec.kind {
	case valueOptionalInt, valueRequiredInt:
		if spec.bounded {
			value = max(spec.min, min(spec.max, value))
		}
	case valueOptionalByte:
		if value < 0 || value > 255 {
			return false
		}
	default:
		return false
	}
	if !c.SetFlag(flag, true) {
		return false
	}
	c.values[flag] = value
	return true
}

// ClearValue drops the sub-value of flag but keeps its presence.
func (c *Context) ClearValue(flag Flag) {
	delete(c.values, flag)
}

// Flags describes every flag the command supports.
func (c *Context) Flags() []execution.FlagView {
	g, _ := c.grammar()
	supported := c.SupportedFlags()
	views := make([]execution.FlagView, 0, len(supported))
	for _, flag := range supported {
		view := execution.FlagView{
			Name:        string(flag),
			Description: flag.Description(),
			State:       c.Flag(flag),
		}
		if tokens, err := c.flagValues(flag, g); err == nil {
			view.Value = strings.Join(tokens, " ")
		}
		views = append(views, view)
	}
	return views
}

func (c *Context) GenerateParameters() (string, bool) {
	parameters, err := c.Generate()
	if err != nil {
		return "", false
	}
	return parameters, true
}

func (c *Context) ValidateAndSetParameters(parameters string) bool {
	return c.Parse(parameters) == nil
}

func clampInt32(v int) int32 {
	const lo, hi = -1 << 31, 1<<31 - 1
	return int32(max(lo, min(hi, v)))
}
