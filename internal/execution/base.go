package execution

// FlagState is the tri-state presence of a flag.
type FlagState int8

const (
	FlagUnset FlagState = iota
	FlagEnabled
	FlagDisabled
)

func (s FlagState) String() string {
	switch s {
	case FlagEnabled:
		return "enabled"
	case FlagDisabled:
		return "disabled"
	default:
		return "unset"
	}
}

// Base owns the base command and the flag dictionary of a context. C is the
// tool's command enum and F its flag enum. The zero value has no command.
type Base[C ~string, F ~string] struct {
	command C
	valid   bool
	order   []F
	support map[C]map[F]struct{}
	flags   map[F]FlagState
}

// NewBase builds a base from a support table and the tool's flag declaration
// order. Every command the tool knows must appear in support, even with no
// flags.
func NewBase[C ~string, F ~string](support map[C][]F, order []F) Base[C, F] {
	table := make(map[C]map[F]struct{}, len(support))
	for command, flags := range support {
		set := make(map[F]struct{}, len(flags))
		for _, flag := range flags {
			set[flag] = struct{}{}
		}
		table[command] = set
	}
	return Base[C, F]{
		order:   order,
		support: table,
		flags:   make(map[F]FlagState),
	}
}

// BaseCommand returns the selected command.
func (b *Base[C, F]) BaseCommand() (C, bool) {
	return b.command, b.valid
}

// IsKnownCommand reports whether command appears in the support table.
func (b *Base[C, F]) IsKnownCommand(command C) bool {
	_, ok := b.support[command]
	return ok
}

// SelectCommand sets the base command and clears the flag dictionary. Unknown
// commands leave the base command-less.
func (b *Base[C, F]) SelectCommand(command C) bool {
	b.Reset()
	if !b.IsKnownCommand(command) {
		return false
	}
	b.command = command
	b.valid = true
	return true
}

// Reset drops the command and every flag.
func (b *Base[C, F]) Reset() {
	var zero C
	b.command = zero
	b.valid = false
	b.flags = make(map[F]FlagState)
}

// IsFlagSupported reports whether the current command accepts flag.
func (b *Base[C, F]) IsFlagSupported(flag F) bool {
	if !b.valid {
		return false
	}
	_, ok := b.support[b.command][flag]
	return ok
}

// Flag returns the presence state of flag.
func (b *Base[C, F]) Flag(flag F) FlagState {
	return b.flags[flag]
}

// IsEnabled reports whether flag is present.
func (b *Base[C, F]) IsEnabled(flag F) bool {
	return b.flags[flag] == FlagEnabled
}

// SetFlag marks flag enabled or disabled. Writes to flags the current command
// does not support are dropped and report false.
func (b *Base[C, F]) SetFlag(flag F, enabled bool) bool {
	if !b.IsFlagSupported(flag) {
		return false
	}
	if enabled {
		b.flags[flag] = FlagEnabled
	} else {
		b.flags[flag] = FlagDisabled
	}
	return true
}

// ClearFlag returns flag to FlagUnset.
func (b *Base[C, F]) ClearFlag(flag F) {
	delete(b.flags, flag)
}

// SupportedFlags lists the flags of the current command in declaration order.
func (b *Base[C, F]) SupportedFlags() []F {
	if !b.valid {
		return nil
	}
	set := b.support[b.command]
	out := make([]F, 0, len(set))
	for _, flag := range b.order {
		if _, ok := set[flag]; ok {
			out = append(out, flag)
		}
	}
	return out
}

// EnabledFlags lists the present flags in declaration order.
func (b *Base[C, F]) EnabledFlags() []F {
	var out []F
	for _, flag := range b.SupportedFlags() {
		if b.flags[flag] == FlagEnabled {
			out = append(out, flag)
		}
	}
	return out
}

// KnownFlag reports whether name spells one of the tool's flags.
func (b *Base[C, F]) KnownFlag(name string) (F, bool) {
	for _, flag := range b.order {
		if string(flag) == name {
			return flag, true
		}
	}
	var zero F
	return zero, false
}
