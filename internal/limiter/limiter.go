// Package limiter implements the scan admission gates: a replay gate that lets
// each proof token through at most once, and a per-card cooldown gate.
//
// Both gates are built on a single atomic set-if-absent primitive. A separate
// existence check followed by a write would race between concurrent scans, so
// Store implementations must decide in one round trip.
package limiter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/and161185/stampcard/internal/errs"
)

// DefaultReplayTTL covers the token freshness window plus margin.
const DefaultReplayTTL = 120 * time.Second

const (
	seenPrefix     = "stamp:seen:"
	cooldownPrefix = "stamp:cooldown:"
)

// Store is an atomic key claim with expiry.
type Store interface {
	// SetNX creates key with the given ttl only if it is absent (or expired)
	// and reports whether this call created it.
	SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Guard evaluates the replay and cooldown gates before any ledger mutation.
// On store errors it fails closed: the decision is false and the error wraps
// errs.ErrBackendUnavailable.
type Guard struct {
	store     Store
	replayTTL time.Duration
}

// NewGuard constructs a Guard. replayTTL <= 0 selects DefaultReplayTTL.
func NewGuard(store Store, replayTTL time.Duration) *Guard {
	if replayTTL <= 0 {
		replayTTL = DefaultReplayTTL
	}
	return &Guard{store: store, replayTTL: replayTTL}
}

// HashToken returns the hex SHA-256 of a raw token so cache keys stay fixed-length.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

// ClaimOnce reports whether this call is the first use of rawToken.
func (g *Guard) ClaimOnce(ctx context.Context, rawToken string) (bool, error) {
	ok, err := g.store.SetNX(ctx, seenPrefix+HashToken(rawToken), g.replayTTL)
	if err != nil {
		return false, fmt.Errorf("replay gate: %w: %v", errs.ErrBackendUnavailable, err)
	}
	return ok, nil
}

// ClaimInterval reports whether a stamp on cardID is allowed now and, if so,
// starts a new cooldown of minInterval. A non-positive interval disables the gate.
func (g *Guard) ClaimInterval(ctx context.Context, cardID string, minInterval time.Duration) (bool, error) {
	if minInterval <= 0 {
		return true, nil
	}
	ok, err := g.store.SetNX(ctx, cooldownPrefix+cardID, minInterval)
	if err != nil {
		return false, fmt.Errorf("cooldown gate: %w: %v", errs.ErrBackendUnavailable, err)
	}
	return ok, nil
}
