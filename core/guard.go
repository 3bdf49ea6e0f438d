package core

import "context"

// WriteGuard gates state-mutating operations behind the global maintenance
// flag. Services consult it at the top of every mutating call so that no
// caller can forget the check.
type WriteGuard interface {
	// CheckWritable returns ErrMaintenanceActive while maintenance is on,
	// nil otherwise.
	CheckWritable(ctx context.Context) error
}

// OpenGuard is a WriteGuard that always allows writes. Meant for tests and
// one-off admin tooling that must run while under maintenance.
type OpenGuard struct{}

func (OpenGuard) CheckWritable(context.Context) error { return nil }
