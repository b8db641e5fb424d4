// Package execution defines the contract shared by every tool-specific
// parameter context: the base command, the flag dictionary gated by a support
// matrix, tokenization of argument strings, and the two error kinds reported
// by generation and parsing.
package execution
