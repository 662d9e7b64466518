package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// ShopRepo implements ShopRepository using PostgreSQL.
type ShopRepo struct{ db *DB }

// NewShopRepo constructs a shop repository.
func NewShopRepo(db *DB) *ShopRepo { return &ShopRepo{db: db} }

// GetParams selects the stamp parameters of a shop.
func (r *ShopRepo) GetParams(ctx context.Context, shopID uuid.UUID) (model.ShopParams, error) {
	const q = `SELECT id, stamp_goal, min_interval_seconds, hmac_secret FROM shops WHERE id=$1`
	var (
		p      model.ShopParams
		secs   int
		secret string
	)
	if err := r.db.Pool.QueryRow(ctx, q, shopID).Scan(&p.ShopID, &p.StampGoal, &secs, &secret); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShopParams{}, errs.ErrNotFound
		}
		return model.ShopParams{}, err
	}
	p.MinInterval = time.Duration(secs) * time.Second
	p.SigningSecret = []byte(secret)
	return p, nil
}
