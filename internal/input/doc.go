// Package input models a single command-line flag plus its optional trailing
// value.
//
// Each Input owns one typed value slot and knows how to consume itself from a
// token stream (Process) and how to render itself back (Format). Numeric inputs
// share one grammar: space or equals separated values, unit suffixes
// (c, w, d, q, k, M, G), hexadecimal literals and optional inclusive bounds.
// Contexts that describe a full tool command line compose these inputs instead
// of re-implementing value parsing.
package input
