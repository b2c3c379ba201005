// Package circuitbreaker wraps database access with a circuit breaker so a
// dead store fails fast instead of piling up blocked requests. There are no
// retries: a rejected or failed call surfaces immediately.
package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DB wraps a *sql.DB with circuit breaker protection. It satisfies the
// Executor interface the repositories depend on.
type DB struct {
	cb *gobreaker.CircuitBreaker
	db *sql.DB
}

// Settings returns breaker settings tuned for database access: the circuit
// opens after 5 consecutive failures and probes again after 30 seconds.
func Settings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "database",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// NewDB wraps the given database handle with a circuit breaker.
func NewDB(database *sql.DB) *DB {
	return &DB{cb: gobreaker.NewCircuitBreaker(Settings()), db: database}
}

// QueryContext executes a query through the breaker. When the circuit is
// open the call returns gobreaker.ErrOpenState without hitting the database.
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	result, err := d.cb.Execute(func() (any, error) {
		return d.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement through the breaker.
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := d.cb.Execute(func() (any, error) {
		return d.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext executes a single-row query. sql.Row only reports errors
// at Scan time, so the breaker cannot observe failures on this path.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.db.QueryRowContext(ctx, query, args...)
}
