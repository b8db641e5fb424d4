package execution

import (
	"strings"
	"unicode"
)

// Token is one argument of a parameter string.
type Token struct {
	Value string
	// Quoted is set when any part of the token was double-quoted. Quoted
	// tokens are never treated as flags.
	Quoted bool
}

// Tokenize splits parameters on whitespace. A double-quoted span is part of a
// single token and the quotes are dropped. Backslashes are literal so Windows
// paths survive unchanged.
func Tokenize(parameters string) []Token {
	var (
		tokens  []Token
		current strings.Builder
		inQuote bool
		quoted  bool
		started bool
	)
	flush := func() {
		if started {
			tokens = append(tokens, Token{Value: current.String(), Quoted: quoted})
		}
		current.Reset()
		quoted = false
		started = false
	}
	for _, r := range parameters {
		switch {
		case r == '"':
			inQuote = !inQuote
			quoted = true
			started = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return tokens
}

// Values returns the token texts.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = token.Value
	}
	return out
}

// Split tokenizes parameters into an argv slice suitable for exec.
func Split(parameters string) []string {
	return Values(Tokenize(parameters))
}

// Quote wraps value in double quotes.
func Quote(value string) string {
	return `"` + value + `"`
}
