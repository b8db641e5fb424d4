// Package main hosts the discparams CLI entrypoint and command graph.
//
// The Cobra-based command tree builds, parses, and inspects dumping-tool
// parameter strings, manages saved presets, runs the configured dumper, and
// watches the optical drive for inserted discs. It centralizes configuration
// resolution and logging setup so subcommands can focus on output.
//
// Keep this package lean: new behaviour belongs in the internal packages
// first, then gets surfaced through a dedicated command or flag here.
package main
