package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements LedgerRepository using PostgreSQL.
//
// Each mutation runs in one transaction that takes the card row lock with
// SELECT ... FOR UPDATE before computing the new count, so concurrent scans of
// the same card queue on the lock instead of overwriting each other.
type LedgerRepo struct{ db *DB }

// NewLedgerRepo constructs a ledger repository.
func NewLedgerRepo(db *DB) *LedgerRepo { return &LedgerRepo{db: db} }

const (
	lockCardSQL     = `SELECT stamp_count, total_redeemed FROM loyalty_cards WHERE id=$1 FOR UPDATE`
	lockShopCardSQL = `SELECT stamp_count, total_redeemed FROM loyalty_cards WHERE id=$1 AND shop_id=$2 FOR UPDATE`
	updateCardSQL   = `UPDATE loyalty_cards SET stamp_count=$2, total_redeemed=$3, updated_at=now() WHERE id=$1`
	insertTxSQL     = `
INSERT INTO stamp_transactions (id, card_id, staff_id, type, stamps_before, stamps_after, qr_payload, ip_address)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
)

// ApplyStamp adds one stamp to the card and logs one stamp or redeem record.
func (r *LedgerRepo) ApplyStamp(ctx context.Context, req model.StampRequest) (model.StampResult, error) {
	if req.Goal < 2 {
		return model.StampResult{}, fmt.Errorf("%w: stamp goal %d < 2", errs.ErrValidation, req.Goal)
	}
	txID, err := uuid.NewV4()
	if err != nil {
		return model.StampResult{}, err
	}

	var res model.StampResult
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		before, total, err := lockCard(ctx, tx, lockCardSQL, req.CardID)
		if err != nil {
			return err
		}
		after, newTotal, redeemed := model.Advance(before, total, req.Goal)
		if _, err := tx.Exec(ctx, updateCardSQL, req.CardID, after, newTotal); err != nil {
			return err
		}
		typ := model.TxStamp
		if redeemed {
			typ = model.TxRedeem
		}
		if _, err := tx.Exec(ctx, insertTxSQL,
			txID, req.CardID, nullUUID(req.StaffID), string(typ), before, after, req.RawToken, req.SourceAddr,
		); err != nil {
			return err
		}
		res = model.StampResult{
			CardID:        req.CardID,
			TransactionID: txID,
			StampsBefore:  before,
			StampsAfter:   after,
			Redeemed:      redeemed,
			TotalRedeemed: newTotal,
			StampGoal:     req.Goal,
		}
		return nil
	})
	if err != nil {
		return model.StampResult{}, err
	}
	return res, nil
}

// VoidLastStamp removes one stamp from a non-empty card and logs a void record.
func (r *LedgerRepo) VoidLastStamp(ctx context.Context, req model.VoidRequest) (model.StampResult, error) {
	txID, err := uuid.NewV4()
	if err != nil {
		return model.StampResult{}, err
	}

	var res model.StampResult
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		before, total, err := lockCard(ctx, tx, lockShopCardSQL, req.CardID, req.ShopID)
		if err != nil {
			return err
		}
		if before == 0 {
			return errs.ErrNothingToVoid
		}
		after := before - 1
		if _, err := tx.Exec(ctx, updateCardSQL, req.CardID, after, total); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, insertTxSQL,
			txID, req.CardID, nullUUID(req.StaffID), string(model.TxVoid), before, after, "", req.SourceAddr,
		); err != nil {
			return err
		}
		res = model.StampResult{
			CardID:        req.CardID,
			TransactionID: txID,
			StampsBefore:  before,
			StampsAfter:   after,
			TotalRedeemed: total,
		}
		return nil
	})
	if err != nil {
		return model.StampResult{}, err
	}
	return res, nil
}

// ListByShop returns the audit log of a shop, newest first.
func (r *LedgerRepo) ListByShop(ctx context.Context, shopID uuid.UUID, page model.Page) ([]model.Transaction, error) {
	const q = `
SELECT t.id, t.card_id, c.customer_id, t.staff_id, t.type, t.stamps_before, t.stamps_after, COALESCE(t.ip_address, ''), t.created_at
FROM stamp_transactions t
JOIN loyalty_cards c ON c.id = t.card_id
WHERE c.shop_id=$1
ORDER BY t.created_at DESC, t.id DESC
LIMIT $2 OFFSET $3`
	rows, err := r.db.Pool.Query(ctx, q, shopID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var (
			t     model.Transaction
			staff uuid.NullUUID
			typ   string
			ts    time.Time
		)
		if err = rows.Scan(&t.ID, &t.CardID, &t.CustomerID, &staff, &typ, &t.StampsBefore, &t.StampsAfter, &t.SourceAddr, &ts); err != nil {
			return nil, err
		}
		if staff.Valid {
			t.StaffID = staff.UUID
		}
		t.Type = model.TxType(typ)
		t.CreatedAt = ts
		out = append(out, t)
	}
	return out, rows.Err()
}

func lockCard(ctx context.Context, tx pgx.Tx, q string, args ...any) (count, total int, err error) {
	if err = tx.QueryRow(ctx, q, args...).Scan(&count, &total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, errs.ErrNotFound
		}
		return 0, 0, err
	}
	return count, total, nil
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}
