// Package version exposes build metadata (semantic version, commit,
// build time) injected via ldflags, plus a Cobra `version` subcommand.
package version
