// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/stampcard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// ShopRepository reads shop parameters owned by the admin collaborator.
type ShopRepository interface {
	// GetParams loads stamp goal, cooldown and signing secret for a shop.
	GetParams(ctx context.Context, shopID uuid.UUID) (model.ShopParams, error)
}

// CardRepository resolves and registers loyalty cards.
type CardRepository interface {
	// GetByCustomer loads the card of a customer in a shop.
	GetByCustomer(ctx context.Context, customerID, shopID uuid.UUID) (*model.Card, error)
	// EnsureCard creates the (customer, shop) card if it does not exist yet and returns it.
	EnsureCard(ctx context.Context, customerID, shopID uuid.UUID) (*model.Card, error)
}

// LedgerRepository owns the authoritative stamp count and the audit log.
// Every mutating method is isolated per card: concurrent calls on the same
// card behave as if executed one at a time.
type LedgerRepository interface {
	// ApplyStamp adds one stamp, rolling over to a redemption at the goal,
	// and appends exactly one audit record.
	ApplyStamp(ctx context.Context, req model.StampRequest) (model.StampResult, error)
	// VoidLastStamp removes one stamp from a non-empty card and appends a void record.
	VoidLastStamp(ctx context.Context, req model.VoidRequest) (model.StampResult, error)
	// ListByShop returns audit records of a shop, newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID, page model.Page) ([]model.Transaction, error)
}
