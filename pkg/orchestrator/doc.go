// Package orchestrator wires the loader → transformer → renderer pipeline for
// people rosters, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
