package dic

import (
	"strconv"

	"discparams/internal/execution"
)

// LBARange is an inclusive start/end sector pair.
type LBARange struct {
	Start int64
	End   int64
}

func (r LBARange) tokens() []string {
	return []string{strconv.FormatInt(r.Start, 10), strconv.FormatInt(r.End, 10)}
}

func (r LBARange) validate(flag string) error {
	if r.Start < 0 || r.End < 0 {
		return execution.ValueError(-1, flag, "LBA values must be non-negative")
	}
	return nil
}

// C2Scope selects which sectors a C2 reread pass covers.
type C2Scope int32

const (
	// C2ScopeReported rereads only the sectors that reported errors.
	C2ScopeReported C2Scope = 0
	// C2ScopeRanged rereads a caller-specified LBA range.
	C2ScopeRanged C2Scope = 1
)

// C2Reread holds the sub-values of /c2. Values are emitted left to right and
// emission stops at the first one that is unset. A ranged scope requires
// Range.
type C2Reread struct {
	Count    *int32
	Offset   *int32
	ReadMode *int32
	Scope    *C2Scope
	Range    *LBARange
}

// IsZero reports whether no sub-value is set.
func (c C2Reread) IsZero() bool {
	return c.Count == nil && c.Offset == nil && c.ReadMode == nil && c.Scope == nil && c.Range == nil
}

func (c C2Reread) tokens() ([]string, error) {
	var out []string
	for _, value := range []*int32{c.Count, c.Offset, c.ReadMode} {
		if value == nil {
			return out, nil
		}
		if *value < 0 {
			return nil, execution.ValueError(-1, string(FlagC2Opcode), "sub-values must be non-negative")
		}
		out = append(out, strconv.FormatInt(int64(*value), 10))
	}
	if c.Scope == nil {
		return out, nil
	}
	switch *c.Scope {
	case C2ScopeReported:
		return append(out, "0"), nil
	case C2ScopeRanged:
		if c.Range == nil {
			return nil, execution.ValueError(-1, string(FlagC2Opcode), "ranged scope requires a start and end LBA")
		}
		if err := c.Range.validate(string(FlagC2Opcode)); err != nil {
			return nil, err
		}
		out = append(out, "1")
		return append(out, c.Range.tokens()...), nil
	default:
		return nil, execution.ValueError(-1, string(FlagC2Opcode), "unsupported reread scope %d", *c.Scope)
	}
}

// SkipSector holds the sub-values of /sk. Count must be positive; Trailing is
// emitted only when it is exactly zero.
type SkipSector struct {
	Count    int32
	Trailing *int32
}

func (s SkipSector) tokens() ([]string, error) {
	if s.Count <= 0 {
		return nil, execution.ValueError(-1, string(FlagSkipSector), "sector count must be positive")
	}
	out := []string{strconv.FormatInt(int64(s.Count), 10)}
	if s.Trailing != nil && *s.Trailing == 0 {
		out = append(out, "0")
	}
	return out, nil
}

// Int32 returns a pointer to v.
func Int32(v int32) *int32 { return &v }

// Scope returns a pointer to s.
func Scope(s C2Scope) *C2Scope { return &s }
