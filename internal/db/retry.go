package db

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/berk/parentportal/internal/pkg/logger"
)

// Pool is the subset of *pgxpool.Pool the retrying wrapper relies on.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// DB wraps a connection pool and retries queries that fail with a transient
// connection-loss error. Retried statements are re-issued verbatim; callers of
// Exec must account for the possibility that a write committed before the
// acknowledgment was lost, in which case a retry duplicates its effect.
type DB struct {
	pool        Pool
	maxAttempts int
	backoff     time.Duration
}

// New creates a retrying DB over the given pool. maxAttempts is the total
// number of tries (not additional retries); backoff is the fixed pause
// between attempts.
func New(pool Pool, maxAttempts int, backoff time.Duration) *DB {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &DB{
		pool:        pool,
		maxAttempts: maxAttempts,
		backoff:     backoff,
	}
}

// Query issues a query against the pool, retrying on transient connection loss.
func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	var rows pgx.Rows
	err := db.retry(ctx, func() error {
		var qErr error
		rows, qErr = db.pool.Query(ctx, sql, args...)
		return qErr
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Exec executes a statement against the pool, retrying on transient connection loss.
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	var tag pgconn.CommandTag
	err := db.retry(ctx, func() error {
		var eErr error
		tag, eErr = db.pool.Exec(ctx, sql, args...)
		return eErr
	})
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return tag, nil
}

// QueryRow delegates to the pool without retry: pgx defers the query error to
// Scan, so there is no error to classify here. Single-row reads that need
// retry semantics should use Query with pgx.CollectOneRow instead.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

// retry runs fn up to maxAttempts times, pausing backoff between attempts.
// Only transient errors are retried; anything else surfaces immediately.
func (db *DB) retry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= db.maxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !IsTransient(err) || attempt == db.maxAttempts {
			return err
		}

		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("maxAttempts", db.maxAttempts).
			Msg("Database connection lost, retrying query")

		select {
		case <-time.After(db.backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// IsTransient reports whether err is a connection-loss condition worth
// retrying: a reset or dropped connection, or a protocol-level disconnect
// (SQLSTATE class 08).
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if pgconn.SafeToRetry(err) {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) {
		return true
	}

	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08") {
		return true
	}

	return false
}
