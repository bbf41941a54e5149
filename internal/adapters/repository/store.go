// Package repository defines the recruit record store interface and errors.
package repository

import (
	"context"

	"github.com/okian/gridpath/internal/domain/model"
)

// Store provides read-only access to the normalized recruit set.
//
// Implementations load the underlying source at most once per process:
// concurrent callers before the first load completes share a single
// in-flight read, and callers after completion receive the cached slice.
// Callers must not mutate the returned slice.
type Store interface {
	// Load returns the normalized record set, reading the source on the
	// first call. Returns ErrLoad when the source is unreachable or not
	// parsable as tabular data; row-level defects never fail the load.
	Load(ctx context.Context) ([]model.Recruit, error)

	// Loaded reports whether a successful load has completed.
	Loaded() bool

	// Count returns the number of cached records, zero before a load.
	Count(ctx context.Context) int

	// Reset discards the cached record set so the next Load re-reads the
	// source. Intended for tests and operator-driven re-invocation after
	// a failure.
	Reset()
}
