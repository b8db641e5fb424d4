// Package services defines shared utilities consumed by the dump runner and
// the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp session IDs, stage names, and tool names for
//     logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into consistent exit codes.
//
// Subpackages wrap external dumping programs behind testable executors.
package services
