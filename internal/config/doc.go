// Package config loads, normalizes, and validates discparams configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DISCPARAMS_DIC_BINARY and
// DISCPARAMS_REDUMPER_BINARY environment overrides. The Config type
// centralizes the output directories, tool binaries, drive defaults, and
// per-tool dumping preferences the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
