// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB the repositories use. It is also satisfied
// by the circuit-breaker wrapper, so callers choose at wiring time whether
// queries go through breaker protection.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var _ DBTX = (*sql.DB)(nil)
