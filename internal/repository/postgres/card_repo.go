package postgres

import (
	"context"
	"errors"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// CardRepo implements CardRepository using PostgreSQL.
type CardRepo struct{ db *DB }

// NewCardRepo constructs a card repository.
func NewCardRepo(db *DB) *CardRepo { return &CardRepo{db: db} }

// GetByCustomer selects the card of a customer in a shop.
func (r *CardRepo) GetByCustomer(ctx context.Context, customerID, shopID uuid.UUID) (*model.Card, error) {
	const q = `
SELECT id, customer_id, shop_id, stamp_count, total_redeemed, created_at, updated_at
FROM loyalty_cards WHERE customer_id=$1 AND shop_id=$2`
	row := r.db.Pool.QueryRow(ctx, q, customerID, shopID)
	var c model.Card
	if err := row.Scan(&c.ID, &c.CustomerID, &c.ShopID, &c.StampCount, &c.TotalRedeemed, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// EnsureCard inserts the card unless it already exists, then loads it.
func (r *CardRepo) EnsureCard(ctx context.Context, customerID, shopID uuid.UUID) (*model.Card, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	const ins = `
INSERT INTO loyalty_cards (id, customer_id, shop_id)
VALUES ($1, $2, $3)
ON CONFLICT (customer_id, shop_id) DO NOTHING`
	if _, err := r.db.Pool.Exec(ctx, ins, id, customerID, shopID); err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return r.GetByCustomer(ctx, customerID, shopID)
}
