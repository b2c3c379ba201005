// Package postgres provides PostgreSQL implementations of the repository
// interfaces.
package postgres

import (
	"context"
	"database/sql"
)

// Executor is the database access surface the repositories depend on. It is
// satisfied by *sql.DB and by the circuit-breaker wrapper, so the breaker can
// be slotted in without touching repository code.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
