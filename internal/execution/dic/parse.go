package dic

import (
	"strings"

	"discparams/internal/execution"
	"discparams/internal/input"
)

// maxC2Values bounds the /c2 lookahead: count, offset, read mode, scope and
// an LBA pair.
const maxC2Values = 6

// Parse replaces the state with the one described by parameters. Any failure
// leaves the context empty.
func (c *Context) Parse(parameters string) error {
	c.reset()
	if err := c.parse(execution.Tokenize(parameters)); err != nil {
		c.reset()
		return err
	}
	return nil
}

func (c *Context) parse(tokens []execution.Token) error {
	if len(tokens) == 0 {
		return execution.ShapeError(-1, "", "empty parameter string")
	}
	first := tokens[0]
	command := Command(first.Value)
	if first.Quoted || !c.SelectCommand(command) {
		return execution.ShapeError(0, first.Value, "unknown base command")
	}
	g := grammars[command]
	if len(tokens) < g.minTokens() {
		return execution.ShapeError(len(tokens), "", "%s requires at least %d tokens, got %d", command, g.minTokens(), len(tokens))
	}

	index := 1
	if g.drive {
		token := tokens[index]
		if token.Quoted || !execution.IsValidDriveLetter(token.Value) {
			return execution.ShapeError(index, token.Value, "expected a drive letter")
		}
		c.DrivePath = token.Value
		index++
	}
	if g.file {
		name, err := c.parseFilename(tokens, index)
		if err != nil {
			return err
		}
		c.Filename = name
		index++
	}
	if g.mergeFile {
		name, err := c.parseFilename(tokens, index)
		if err != nil {
			return err
		}
		c.MergeFilename = name
		index++
	}
	if g.hasSpeed() {
		token := tokens[index]
		speed, ok := execution.ParseBoundedInt(token.Value, 0, g.speedMax)
		if token.Quoted || !ok {
			return execution.ShapeError(index, token.Value, "drive speed must be an integer in 0-%d", g.speedMax)
		}
		value := int32(speed)
		c.DriveSpeed = &value
		index++
	}
	if g.lbaRange {
		pair, ok := parsePair(tokens, index)
		if !ok {
			return execution.ShapeError(index, tokens[index].Value, "expected start and end LBA")
		}
		c.Range = &pair
		index += 2
	}
	if g.securityLBAs {
		for index < len(tokens) && !c.isFlag(tokens[index]) {
			lba, ok := execution.ParseLBA(tokens[index].Value)
			if !ok {
				return execution.ShapeError(index, tokens[index].Value, "expected a security sector LBA")
			}
			c.SecurityLBAs = append(c.SecurityLBAs, lba)
			index++
		}
	}

	values := execution.Values(tokens)
	for index < len(tokens) {
		token := tokens[index]
		flag, ok := c.flagAt(token)
		if !ok {
			return execution.ShapeError(index, token.Value, "unexpected token")
		}
		if !c.IsFlagSupported(flag) {
			return execution.ShapeError(index, token.Value, "flag not supported by %s", command)
		}
		if err := c.parseFlag(flag, g, tokens, values, &index); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) parseFilename(tokens []execution.Token, index int) (string, error) {
	token := tokens[index]
	if token.Value == "" || c.isFlag(token) {
		return "", execution.ShapeError(index, token.Value, "expected a filename")
	}
	return token.Value, nil
}

func (c *Context) parseFlag(flag Flag, g grammar, tokens []execution.Token, values []string, index *int) error {
	start := *index
	spec := flagSpecs[flag]
	switch spec.kind {
	case valueNone:
		bare := input.NewFlag(string(flag))
		if !bare.Process(values, index) {
			return execution.ValueError(start, values[start], "invalid switch value")
		}
		c.SetFlag(flag, bare.Value)
		return nil

	case valueOptionalInt, valueRequiredInt, valueOptionalByte:
		slot := c.numberInput(flag)
		if !slot.Process(values, index) {
			return execution.ValueError(start, values[start], "missing or invalid value")
		}
		c.SetFlag(flag, true)
		value, ok := numberValue(slot)
		if ok && spec.kind == valueOptionalByte && (value < 0 || value > 255) {
			return execution.ValueError(start, values[start], "%s value must be between 0 and 255", flag)
		}
		if ok {
			c.values[flag] = value
			return nil
		}
		return c.rejectDanglingValue(tokens, *index, flag)

	case valueOpcode:
		slot := input.NewString(string(flag), input.Optional(), input.WithStop(c.isFlagToken))
		if !slot.Process(values, index) {
			return execution.ValueError(start, values[start], "invalid value")
		}
		mode, _ := slot.Get()
		if mode != "" && !isOpcodeMode(mode) {
			return execution.ValueError(start, mode, "mode must be raw or pack")
		}
		c.SetFlag(flag, true)
		c.BEOpcode = mode
		return nil

	case valueC2:
		*index++
		ints := c.lookaheadInts(tokens, index, maxC2Values)
		if err := c.rejectDanglingValue(tokens, *index, flag); err != nil {
			return err
		}
		reread, err := c2FromValues(ints, start)
		if err != nil {
			return err
		}
		c.SetFlag(flag, true)
		c.C2 = reread
		return nil

	case valueSkip:
		*index++
		ints := c.lookaheadInts(tokens, index, 2)
		if len(ints) == 0 {
			return execution.ValueError(start, values[start], "sector count is required")
		}
		if ints[0] <= 0 {
			return execution.ValueError(start+1, values[start+1], "sector count must be positive")
		}
		skip := SkipSector{Count: ints[0]}
		if len(ints) > 1 {
			skip.Trailing = Int32(ints[1])
		}
		if err := c.rejectDanglingValue(tokens, *index, flag); err != nil {
			return err
		}
		c.SetFlag(flag, true)
		c.Skip = &skip
		return nil

	case valueLBAPair:
		*index++
		pair, ok := parsePair(tokens, *index)
		if !ok {
			return execution.ValueError(start, values[start], "start and end LBA are required")
		}
		*index += 2
		c.SetFlag(flag, true)
		c.RangeLBA = &pair
		return nil

	case valueReverse:
		*index++
		c.SetFlag(flag, true)
		if !g.reverseRange {
			return nil
		}
		pair, ok := parsePair(tokens, *index)
		if !ok {
			return execution.ValueError(start, values[start], "start and end LBA are required")
		}
		*index += 2
		c.ReverseLBA = &pair
		return nil
	}
	return execution.ShapeError(start, values[start], "unhandled flag")
}

// lookaheadInts consumes up to limit integer tokens, stopping at a flag or at
// the first token that is not an integer.
func (c *Context) lookaheadInts(tokens []execution.Token, index *int, limit int) []int32 {
	var out []int32
	for len(out) < limit && *index < len(tokens) {
		token := tokens[*index]
		if c.isFlag(token) {
			break
		}
		value, ok := input.ParseInteger[int32](token.Value)
		if !ok {
			break
		}
		out = append(out, value)
		*index++
	}
	return out
}

// rejectDanglingValue fails when the token at index is neither a flag nor the
// end of input, meaning flag was followed by a value it could not take.
func (c *Context) rejectDanglingValue(tokens []execution.Token, index int, flag Flag) error {
	if index >= len(tokens) || c.isFlag(tokens[index]) {
		return nil
	}
	return execution.ValueError(index, tokens[index].Value, "invalid value for %s", flag)
}

func c2FromValues(ints []int32, index int) (C2Reread, error) {
	var reread C2Reread
	for i, value := range ints {
		if value < 0 {
			return C2Reread{}, execution.ValueError(index+1+i, "", "%s sub-values must be non-negative", FlagC2Opcode)
		}
	}
	slots := []**int32{&reread.Count, &reread.Offset, &reread.ReadMode}
	for i := 0; i < len(ints) && i < len(slots); i++ {
		*slots[i] = Int32(ints[i])
	}
	if len(ints) < 4 {
		return reread, nil
	}
	scope := C2Scope(ints[3])
	reread.Scope = &scope
	switch scope {
	case C2ScopeReported:
		if len(ints) > 4 {
			return C2Reread{}, execution.ValueError(index+5, "", "reported scope takes no LBA range")
		}
	case C2ScopeRanged:
		if len(ints) < 6 {
			return C2Reread{}, execution.ValueError(index, string(FlagC2Opcode), "ranged scope requires a start and end LBA")
		}
		reread.Range = &LBARange{Start: int64(ints[4]), End: int64(ints[5])}
	default:
		return C2Reread{}, execution.ValueError(index+4, "", "unsupported reread scope %d", scope)
	}
	return reread, nil
}

func parsePair(tokens []execution.Token, index int) (LBARange, bool) {
	if index+1 >= len(tokens) {
		return LBARange{}, false
	}
	start, ok := execution.ParseLBA(tokens[index].Value)
	if !ok {
		return LBARange{}, false
	}
	end, ok := execution.ParseLBA(tokens[index+1].Value)
	if !ok {
		return LBARange{}, false
	}
	return LBARange{Start: start, End: end}, true
}

func numberValue(slot input.Input) (int32, bool) {
	switch number := slot.(type) {
	case *input.Number[int32]:
		return number.Get()
	case *input.Number[int16]:
		value, ok := number.Get()
		return int32(value), ok
	default:
		return 0, false
	}
}

// flagAt resolves token to a flag. Quoted tokens are never flags.
func (c *Context) flagAt(token execution.Token) (Flag, bool) {
	if token.Quoted {
		return "", false
	}
	if flag, ok := c.KnownFlag(token.Value); ok {
		return flag, true
	}
	name, _, found := strings.Cut(token.Value, "=")
	if !found {
		return "", false
	}
	flag, ok := c.KnownFlag(name)
	if !ok {
		return "", false
	}
	switch flagSpecs[flag].kind {
	case valueNone, valueOptionalInt, valueRequiredInt, valueOptionalByte, valueOpcode:
		return flag, true
	default:
		return "", false
	}
}

func (c *Context) isFlag(token execution.Token) bool {
	_, ok := c.flagAt(token)
	return ok
}

// isFlagToken is the lookahead stop predicate for raw token text.
func (c *Context) isFlagToken(value string) bool {
	return c.isFlag(execution.Token{Value: value})
}
