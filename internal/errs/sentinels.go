// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed input rejected before any store is touched.
	ErrValidation = errors.New("validation")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNothingToVoid indicates a void on a card that holds no stamps.
	ErrNothingToVoid = errors.New("nothing to void")
)

// Scan pipeline rejections. Each one is a terminal state of a single scan.
var (
	// ErrInvalidToken: malformed, expired, future-dated or badly signed proof token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrReplayRejected: the token value was already consumed by an earlier scan.
	ErrReplayRejected = errors.New("token already used")

	// ErrTooSoon: the card cooldown is still active.
	ErrTooSoon = errors.New("too soon")

	// ErrCardNotFound: no card for the token's customer in the staff member's shop.
	ErrCardNotFound = errors.New("card not found")

	// ErrConfiguration: shop parameters are missing or unusable.
	ErrConfiguration = errors.New("configuration error")

	// ErrBackendUnavailable: cache or durable store unreachable. Safe to retry the whole scan.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
