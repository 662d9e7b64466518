// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	Subject uuid.UUID // staff ID or customer ID depending on Role
	ShopID  uuid.UUID
	Role    Role
}

// Role of an authenticated principal.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleBarista  Role = "barista"
	RoleCustomer Role = "customer"
)

// IsStaff reports whether the role may scan cards.
func (r Role) IsStaff() bool { return r == RoleAdmin || r == RoleBarista }

// ShopParams are the per-shop inputs the stamp pipeline consumes.
// Owned by the admin collaborator; read-only here.
type ShopParams struct {
	ShopID        uuid.UUID
	StampGoal     int           // >= 2
	MinInterval   time.Duration // >= 0, whole seconds
	SigningSecret []byte
}

// Card tracks stamp progress for one (customer, shop) pair.
// StampCount is always in [0, goal) for any committed state.
type Card struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	ShopID        uuid.UUID
	StampCount    int
	TotalRedeemed int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TxType is the kind of an audit record.
type TxType string

const (
	TxStamp  TxType = "stamp"
	TxRedeem TxType = "redeem"
	TxVoid   TxType = "void"
)

// Transaction is an append-only audit entry. Never updated or deleted.
type Transaction struct {
	ID           uuid.UUID
	CardID       uuid.UUID
	CustomerID   uuid.UUID // filled on listing only
	StaffID      uuid.UUID
	Type         TxType
	StampsBefore int
	StampsAfter  int
	RawToken     string
	SourceAddr   string
	CreatedAt    time.Time
}

// StampRequest is the ledger input for one accepted scan.
type StampRequest struct {
	CardID     uuid.UUID
	StaffID    uuid.UUID
	RawToken   string
	SourceAddr string
	Goal       int
}

// StampResult reports the ledger transition of one accepted scan.
type StampResult struct {
	CardID        uuid.UUID
	TransactionID uuid.UUID
	StampsBefore  int
	StampsAfter   int
	Redeemed      bool
	TotalRedeemed int
	StampGoal     int
}

// VoidRequest reverts the most recent stamp on a card of ShopID.
type VoidRequest struct {
	CardID     uuid.UUID
	ShopID     uuid.UUID
	StaffID    uuid.UUID
	SourceAddr string
}

// Page selects a window of a newest-first listing.
type Page struct {
	Limit  int
	Offset int
}

// Outcome is the terminal state of a scan.
type Outcome string

const (
	OutcomeAccepted           Outcome = "accepted"
	OutcomeInvalidToken       Outcome = "invalid_token"
	OutcomeReplayRejected     Outcome = "replay_rejected"
	OutcomeTooSoon            Outcome = "too_soon"
	OutcomeCardNotFound       Outcome = "card_not_found"
	OutcomeConfigurationError Outcome = "configuration_error"
	OutcomeBackendUnavailable Outcome = "backend_unavailable"
)

// UserRecoverable reports whether re-scanning (or waiting) can fix the outcome.
func (o Outcome) UserRecoverable() bool {
	switch o {
	case OutcomeInvalidToken, OutcomeReplayRejected, OutcomeTooSoon, OutcomeBackendUnavailable:
		return true
	}
	return false
}

// Advance computes the card state after one accepted stamp.
// Reaching goal rolls the count over to zero and credits one redemption.
func Advance(stampCount, totalRedeemed, goal int) (after, total int, redeemed bool) {
	next := stampCount + 1
	if next >= goal {
		return 0, totalRedeemed + 1, true
	}
	return next, totalRedeemed, false
}
