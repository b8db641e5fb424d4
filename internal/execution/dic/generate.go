package dic

import (
	"strconv"
	"strings"

	"discparams/internal/execution"
	"discparams/internal/input"
)

// Generate renders the argument string. A required positional group that is
// incomplete, or a flag whose sub-values are illegal, fails the whole
// generation.
func (c *Context) Generate() (string, error) {
	command, ok := c.BaseCommand()
	if !ok {
		return "", execution.ShapeError(-1, "", "no base command selected")
	}
	g := grammars[command]
	parts := []string{string(command)}

	if g.drive {
		if !execution.IsValidDriveLetter(c.DrivePath) {
			return "", execution.ShapeError(-1, c.DrivePath, "drive must be a drive letter")
		}
		parts = append(parts, c.DrivePath)
	}
	if g.file {
		if c.Filename == "" {
			return "", execution.ShapeError(-1, "", "output filename is required")
		}
		if strings.ContainsRune(c.Filename, '"') {
			return "", execution.ValueError(-1, c.Filename, "filename must not contain a double quote")
		}
		parts = append(parts, execution.Quote(c.Filename))
	}
	if g.mergeFile {
		if c.MergeFilename == "" {
			return "", execution.ShapeError(-1, "", "merge source filename is required")
		}
		if strings.ContainsRune(c.MergeFilename, '"') {
			return "", execution.ValueError(-1, c.MergeFilename, "filename must not contain a double quote")
		}
		parts = append(parts, execution.Quote(c.MergeFilename))
	}
	if g.hasSpeed() {
		if c.DriveSpeed == nil {
			return "", execution.ShapeError(-1, "", "drive speed is required")
		}
		if *c.DriveSpeed < 0 || int64(*c.DriveSpeed) > g.speedMax {
			return "", execution.ValueError(-1, "", "drive speed %d outside 0-%d", *c.DriveSpeed, g.speedMax)
		}
		parts = append(parts, strconv.FormatInt(int64(*c.DriveSpeed), 10))
	}
	if g.lbaRange {
		if c.Range == nil {
			return "", execution.ShapeError(-1, "", "start and end LBA are required")
		}
		if err := c.Range.validate(string(command)); err != nil {
			return "", err
		}
		parts = append(parts, c.Range.tokens()...)
	}
	if g.securityLBAs {
		for _, lba := range c.SecurityLBAs {
			if lba < 0 {
				return "", execution.ValueError(-1, "", "security sector LBA must be non-negative")
			}
			parts = append(parts, strconv.FormatInt(lba, 10))
		}
	}

	for _, flag := range c.EnabledFlags() {
		values, err := c.flagValues(flag, g)
		if err != nil {
			return "", err
		}
		parts = append(parts, string(flag))
		parts = append(parts, values...)
	}
	return strings.Join(parts, " "), nil
}

// flagValues renders the sub-value tokens that follow flag.
func (c *Context) flagValues(flag Flag, g grammar) ([]string, error) {
	spec := flagSpecs[flag]
	switch spec.kind {
	case valueOptionalInt, valueOptionalByte:
		if value, ok := c.values[flag]; ok {
			return []string{strconv.FormatInt(int64(value), 10)}, nil
		}
		return nil, nil
	case valueRequiredInt:
		value, ok := c.values[flag]
		if !ok {
			return nil, execution.ValueError(-1, string(flag), "value is required")
		}
		return []string{strconv.FormatInt(int64(value), 10)}, nil
	case valueOpcode:
		if c.BEOpcode == "" {
			return nil, nil
		}
		if !isOpcodeMode(c.BEOpcode) {
			return nil, execution.ValueError(-1, string(flag), "mode %q must be raw or pack", c.BEOpcode)
		}
		return []string{c.BEOpcode}, nil
	case valueC2:
		return c.C2.tokens()
	case valueSkip:
		if c.Skip == nil {
			return nil, execution.ValueError(-1, string(flag), "sector count is required")
		}
		return c.Skip.tokens()
	case valueLBAPair:
		return requiredPair(flag, c.RangeLBA)
	case valueReverse:
		if !g.reverseRange {
			return nil, nil
		}
		return requiredPair(flag, c.ReverseLBA)
	default:
		return nil, nil
	}
}

func requiredPair(flag Flag, pair *LBARange) ([]string, error) {
	if pair == nil {
		return nil, execution.ValueError(-1, string(flag), "start and end LBA are required")
	}
	if err := pair.validate(string(flag)); err != nil {
		return nil, err
	}
	return pair.tokens(), nil
}

func isOpcodeMode(mode string) bool {
	return mode == "raw" || mode == "pack"
}

// numberInput builds the parser for a single-valued numeric flag.
func (c *Context) numberInput(flag Flag) input.Input {
	spec := flagSpecs[flag]
	opts := []input.Option{input.WithStop(c.isFlagToken), input.WithLongName(spec.description)}
	if spec.kind != valueRequiredInt {
		opts = append(opts, input.Optional())
	}
	if spec.kind == valueOptionalByte {
		// int16 keeps the omitted-value sentinel outside the byte range so
		// an explicit 0 survives a round trip.
		return input.NewInt16(string(flag), opts...)
	}
	number := input.NewInt32(string(flag), opts...)
	if spec.bounded {
		number.WithBounds(spec.min, spec.max)
	}
	return number
}
