// Package presets persists named parameter strings in SQLite.
//
// A preset stores the canonical argument string for one tool. Save re-parses
// the string through the tool's context before writing, so every stored row
// hydrates back into a valid context with Hydrate.
package presets
