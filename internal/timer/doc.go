// Package timer implements the periodic callback collaborator: a
// repeating timer that invokes a tick function at a fixed period until
// stopped, with idempotent Start/Stop semantics.
package timer
