package limiter

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PG is a PostgreSQL-backed Store for deployments without Redis.
// Keys live in guard_keys; an expired row is reclaimed by the same statement
// that would otherwise insert, so the claim stays a single atomic step.
type PG struct {
	pool pgxQuerier
}

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a PostgreSQL-backed store.
func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

// NewPGWithQuerier constructs a PostgreSQL-backed store.
func NewPGWithQuerier(q pgxQuerier) *PG {
	return &PG{pool: q}
}

// SetNX implements Store.
func (l *PG) SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	const q = `
INSERT INTO guard_keys (key, expires_at)
VALUES ($1, now() + make_interval(secs => $2))
ON CONFLICT (key) DO UPDATE
SET expires_at = EXCLUDED.expires_at
WHERE guard_keys.expires_at <= now()
RETURNING key`
	secs := math.Ceil(ttl.Seconds())
	var got string
	err := l.pool.QueryRow(ctx, q, key, secs).Scan(&got)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	default:
		return false, err
	}
}

// Purge deletes expired keys and returns how many were removed.
func (l *PG) Purge(ctx context.Context) (int64, error) {
	const q = `DELETE FROM guard_keys WHERE expires_at <= now()`
	tag, err := l.pool.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
