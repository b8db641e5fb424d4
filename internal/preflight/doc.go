// Package preflight provides readiness checks for the dumping programs and
// filesystem paths that discparams depends on.
//
// These checks run in two contexts:
//   - The CLI "run" and "watch" commands call RunAll before starting a dump.
//     If a required check fails, the dump is not attempted.
//   - The CLI "check" command renders every Result, plus the disc probe,
//     as a readiness report.
package preflight
