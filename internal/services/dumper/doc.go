// Package dumper launches DiscImageCreator or redumper for a generated
// parameter context.
//
// A Client resolves the tool binary, renders the context into argv, guards
// the output directory with a file lock while a dumping command runs, and
// streams tool output line by line, translating LBA counters into
// ProgressUpdate values. Failures are tagged with the services error markers so
// the CLI can map them to exit codes.
package dumper
