// Package redumper models the Redumper command line: a mode followed by
// --option[=value] tokens.
package redumper

import (
	"path/filepath"
	"strconv"
	"strings"

	"discparams/internal/execution"
	"discparams/internal/input"
	"discparams/internal/media"
)

// Context is the structured state of one Redumper invocation.
type Context struct {
	execution.Base[Mode, Option]
	inputs map[Option]input.Input
}

var _ execution.Context = (*Context)(nil)

// New returns an empty context with no mode.
func New() *Context {
	c := &Context{Base: execution.NewBase(modeSupport, optionOrder())}
	c.reset()
	return c
}

// NewMode returns an empty context for mode.
func NewMode(mode Mode) (*Context, bool) {
	c := New()
	return c, c.SelectMode(mode)
}

// FromParameters re-hydrates a context from an argument string.
func FromParameters(parameters string) (*Context, error) {
	c := New()
	if err := c.Parse(parameters); err != nil {
		return nil, err
	}
	return c, nil
}

// SelectMode switches the mode and drops all option state.
func (c *Context) SelectMode(mode Mode) bool {
	c.reset()
	return c.SelectCommand(mode)
}

func (c *Context) reset() {
	c.Reset()
	c.inputs = make(map[Option]input.Input, len(optionSpecs))
	for _, spec := range optionSpecs {
		c.inputs[spec.option] = c.newInput(spec)
	}
}

func (c *Context) newInput(spec optionSpec) input.Input {
	opts := []input.Option{
		input.WithAltNames(spec.alt...),
		input.WithLongName(spec.description),
		input.WithStop(c.isOptionToken),
	}
	name := string(spec.option)
	switch spec.kind {
	case kindInt:
		return input.NewInt32(name, opts...)
	case kindByte:
		return input.NewUInt8(name, opts...)
	case kindString:
		return input.NewString(name, opts...)
	default:
		return input.NewFlag(name, opts...)
	}
}

func (c *Context) Tool() execution.Tool { return execution.ToolRedumper }

func (c *Context) Command() string {
	mode, ok := c.BaseCommand()
	if !ok {
		return ""
	}
	return string(mode)
}

// Enable turns on a switch option.
func (c *Context) Enable(option Option) bool {
	spec, ok := lookupSpec(option)
	if !ok || spec.kind != kindSwitch {
		return false
	}
	if !c.SetFlag(option, true) {
		return false
	}
	c.inputs[option].(*input.Flag).Value = true
	return true
}

// SetString enables a string option with value. Values containing a double
// quote are rejected.
func (c *Context) SetString(option Option, value string) bool {
	slot, ok := c.inputs[option].(*input.String)
	if !ok || strings.ContainsRune(value, '"') || !c.SetFlag(option, true) {
		return false
	}
	return slot.Set(value)
}

// SetInt enables a numeric option with value. Values outside the option's
// type are rejected.
func (c *Context) SetInt(option Option, value int64) bool {
	switch slot := c.inputs[option].(type) {
	case *input.Number[int32]:
		if value < -1<<31 || value > 1<<31-1 || !c.SetFlag(option, true) {
			return false
		}
		slot.Set(int32(value))
		return true
	case *input.Number[uint8]:
		if value < 0 || value > 255 || !c.SetFlag(option, true) {
			return false
		}
		slot.Set(uint8(value))
		return true
	default:
		return false
	}
}

// StringValue returns the value of an enabled string option.
func (c *Context) StringValue(option Option) (string, bool) {
	slot, ok := c.inputs[option].(*input.String)
	if !ok || !c.IsEnabled(option) {
		return "", false
	}
	return slot.Get()
}

// IntValue returns the value of an enabled numeric option.
func (c *Context) IntValue(option Option) (int64, bool) {
	if !c.IsEnabled(option) {
		return 0, false
	}
	switch slot := c.inputs[option].(type) {
	case *input.Number[int32]:
		value, ok := slot.Get()
		return int64(value), ok
	case *input.Number[uint8]:
		value, ok := slot.Get()
		return int64(value), ok
	default:
		return 0, false
	}
}

func (c *Context) InputPath() string {
	drive, _ := c.StringValue(OptionDrive)
	return drive
}

// OutputPath joins --image-path and --image-name.
func (c *Context) OutputPath() string {
	dir, _ := c.StringValue(OptionImagePath)
	name, _ := c.StringValue(OptionImageName)
	switch {
	case dir == "":
		return name
	case name == "":
		return dir
	default:
		return filepath.Join(dir, name)
	}
}

func (c *Context) Speed() (int, bool) {
	speed, ok := c.IntValue(OptionSpeed)
	return int(speed), ok
}

// SetSpeed stores a non-negative speed when the mode accepts one.
func (c *Context) SetSpeed(speed int) {
	c.SetInt(OptionSpeed, int64(max(speed, 0)))
}

func (c *Context) IsDumpingCommand() bool {
	mode, ok := c.BaseCommand()
	return ok && mode.isDumping()
}

func (c *Context) MediaType() (media.Type, bool) {
	mode, _ := c.BaseCommand()
	switch mode {
	case ModeCD:
		return media.CDROM, true
	case ModeDVD:
		return media.DVD, true
	case ModeBD:
		return media.BluRay, true
	default:
		return media.Unknown, false
	}
}

func (c *Context) DefaultExtension(mediaType media.Type) (string, bool) {
	switch mediaType {
	case media.CDROM, media.GDROM:
		return ".bin", true
	case media.DVD, media.HDDVD, media.BluRay, media.NintendoGameCubeGameDisc, media.NintendoWiiOpticalDisc:
		return ".iso", true
	default:
		return "", false
	}
}

// Generate renders the mode followed by every enabled option in declaration
// order, values joined with '='.
func (c *Context) Generate() (string, error) {
	mode, ok := c.BaseCommand()
	if !ok {
		return "", execution.ShapeError(-1, "", "no mode selected")
	}
	parts := []string{string(mode)}
	for _, option := range c.EnabledFlags() {
		if spec, _ := lookupSpec(option); spec.kind == kindSwitch {
			parts = append(parts, string(option))
			continue
		}
		rendered := c.inputs[option].Format(true)
		if rendered == "" {
			return "", execution.ValueError(-1, string(option), "value is required")
		}
		parts = append(parts, rendered)
	}
	return strings.Join(parts, " "), nil
}

func (c *Context) GenerateParameters() (string, bool) {
	parameters, err := c.Generate()
	if err != nil {
		return "", false
	}
	return parameters, true
}

// Parse replaces the state with the one described by parameters. Both
// --option=value and --option value are accepted. Any failure leaves the
// context empty.
func (c *Context) Parse(parameters string) error {
	c.reset()
	if err := c.parse(execution.Values(execution.Tokenize(parameters))); err != nil {
		c.reset()
		return err
	}
	return nil
}

func (c *Context) parse(tokens []string) error {
	if len(tokens) == 0 {
		return execution.ShapeError(-1, "", "empty parameter string")
	}
	mode := Mode(tokens[0])
	if !c.SelectMode(mode) {
		return execution.ShapeError(0, tokens[0], "unknown mode")
	}
	index := 1
	for index < len(tokens) {
		option, ok := c.optionAt(tokens[index])
		if !ok {
			return execution.ShapeError(index, tokens[index], "unexpected token")
		}
		if !c.IsFlagSupported(option) {
			return execution.ShapeError(index, tokens[index], "option not supported by %s", mode)
		}
		start := index
		slot := c.inputs[option]
		if !slot.Process(tokens, &index) {
			return execution.ValueError(start, tokens[start], "missing or invalid value")
		}
		if flag, ok := slot.(*input.Flag); ok {
			c.SetFlag(option, flag.Value)
			continue
		}
		c.SetFlag(option, true)
	}
	return nil
}

// optionAt matches token against every option, not only the supported ones,
// so unsupported options are reported as such.
func (c *Context) optionAt(token string) (Option, bool) {
	for _, spec := range optionSpecs {
		if c.inputs[spec.option].Matches(token) {
			return spec.option, true
		}
	}
	return "", false
}

func (c *Context) isOptionToken(token string) bool {
	if !strings.HasPrefix(token, "-") {
		return false
	}
	_, ok := c.optionAt(token)
	return ok
}

func (c *Context) ValidateAndSetParameters(parameters string) bool {
	return c.Parse(parameters) == nil
}

// Flags describes every option the mode supports.
func (c *Context) Flags() []execution.FlagView {
	supported := c.SupportedFlags()
	views := make([]execution.FlagView, 0, len(supported))
	for _, option := range supported {
		view := execution.FlagView{
			Name:        string(option),
			Description: option.Description(),
			State:       c.Flag(option),
		}
		if text, ok := c.StringValue(option); ok {
			view.Value = text
		} else if number, ok := c.IntValue(option); ok {
			view.Value = strconv.FormatInt(number, 10)
		}
		views = append(views, view)
	}
	return views
}
