package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

// anyArgs matches n arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

const (
	lockRe     = `SELECT stamp_count, total_redeemed FROM loyalty_cards WHERE id=\$1 FOR UPDATE`
	lockShopRe = `SELECT stamp_count, total_redeemed FROM loyalty_cards WHERE id=\$1 AND shop_id=\$2 FOR UPDATE`
	updateRe   = `UPDATE loyalty_cards SET stamp_count=\$2, total_redeemed=\$3, updated_at=now\(\) WHERE id=\$1`
	insertRe   = `INSERT INTO stamp_transactions \(id, card_id, staff_id, type, stamps_before, stamps_after, qr_payload, ip_address\)`
)

func stampReq(cardID, staffID uuid.UUID) model.StampRequest {
	return model.StampRequest{
		CardID:     cardID,
		StaffID:    staffID,
		RawToken:   "cust.1700000000.0123456789abcdef",
		SourceAddr: "10.0.0.7:5123",
		Goal:       6,
	}
}

func TestLedgerRepo_ApplyStamp_Increment(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)

	cardID := uuid.Must(uuid.NewV4())
	staffID := uuid.Must(uuid.NewV4())
	req := stampReq(cardID, staffID)

	mock.ExpectBegin()
	mock.ExpectQuery(lockRe).
		WithArgs(cardID).
		WillReturnRows(pgxmock.NewRows([]string{"stamp_count", "total_redeemed"}).AddRow(2, 1))
	mock.ExpectExec(updateRe).
		WithArgs(cardID, 3, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(insertRe).
		WithArgs(pgxmock.AnyArg(), cardID, nullUUID(staffID), "stamp", 2, 3, req.RawToken, req.SourceAddr).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	res, err := r.ApplyStamp(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, res.StampsBefore)
	require.Equal(t, 3, res.StampsAfter)
	require.False(t, res.Redeemed)
	require.Equal(t, 1, res.TotalRedeemed)
	require.Equal(t, 6, res.StampGoal)
	require.NotEqual(t, uuid.Nil, res.TransactionID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ApplyStamp_RedeemWritesSingleRecord(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)

	cardID := uuid.Must(uuid.NewV4())
	req := stampReq(cardID, uuid.Nil)

	mock.ExpectBegin()
	mock.ExpectQuery(lockRe).
		WithArgs(cardID).
		WillReturnRows(pgxmock.NewRows([]string{"stamp_count", "total_redeemed"}).AddRow(5, 0))
	mock.ExpectExec(updateRe).
		WithArgs(cardID, 0, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(insertRe).
		WithArgs(pgxmock.AnyArg(), cardID, uuid.NullUUID{}, "redeem", 5, 0, req.RawToken, req.SourceAddr).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	res, err := r.ApplyStamp(context.Background(), req)
	require.NoError(t, err)
	require.True(t, res.Redeemed)
	require.Equal(t, 5, res.StampsBefore)
	require.Equal(t, 0, res.StampsAfter)
	require.Equal(t, 1, res.TotalRedeemed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ApplyStamp_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)
	cardID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(lockRe).WithArgs(cardID).WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := r.ApplyStamp(context.Background(), stampReq(cardID, uuid.Nil))
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ApplyStamp_BadGoal_NoQueries(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)

	req := stampReq(uuid.Must(uuid.NewV4()), uuid.Nil)
	req.Goal = 1
	_, err := r.ApplyStamp(context.Background(), req)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ApplyStamp_InsertErr_RollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)
	cardID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(lockRe).WithArgs(cardID).
		WillReturnRows(pgxmock.NewRows([]string{"stamp_count", "total_redeemed"}).AddRow(0, 0))
	mock.ExpectExec(updateRe).WithArgs(cardID, 1, 0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(insertRe).WithArgs(anyArgs(8)...).WillReturnError(errors.New("insert-fail"))
	mock.ExpectRollback()

	_, err := r.ApplyStamp(context.Background(), stampReq(cardID, uuid.Nil))
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ApplyStamp_CommitErr(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)
	cardID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(lockRe).WithArgs(cardID).
		WillReturnRows(pgxmock.NewRows([]string{"stamp_count", "total_redeemed"}).AddRow(0, 0))
	mock.ExpectExec(updateRe).WithArgs(cardID, 1, 0).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(insertRe).WithArgs(anyArgs(8)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit-fail"))

	res, err := r.ApplyStamp(context.Background(), stampReq(cardID, uuid.Nil))
	require.Error(t, err)
	require.Equal(t, model.StampResult{}, res)
}

func TestLedgerRepo_ApplyStamp_TxBeginErr(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)

	mock.ExpectBegin().WillReturnError(errors.New("boom"))
	_, err := r.ApplyStamp(context.Background(), stampReq(uuid.Must(uuid.NewV4()), uuid.Nil))
	require.Error(t, err)
}

func TestLedgerRepo_VoidLastStamp(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)
	cardID := uuid.Must(uuid.NewV4())
	shopID := uuid.Must(uuid.NewV4())
	staffID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(lockShopRe).WithArgs(cardID, shopID).
		WillReturnRows(pgxmock.NewRows([]string{"stamp_count", "total_redeemed"}).AddRow(3, 2))
	mock.ExpectExec(updateRe).WithArgs(cardID, 2, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(insertRe).
		WithArgs(pgxmock.AnyArg(), cardID, nullUUID(staffID), "void", 3, 2, "", "1.2.3.4").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	res, err := r.VoidLastStamp(context.Background(), model.VoidRequest{CardID: cardID, ShopID: shopID, StaffID: staffID, SourceAddr: "1.2.3.4"})
	require.NoError(t, err)
	require.Equal(t, 3, res.StampsBefore)
	require.Equal(t, 2, res.StampsAfter)
	require.Equal(t, 2, res.TotalRedeemed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_VoidLastStamp_Empty(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)
	cardID := uuid.Must(uuid.NewV4())
	shopID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(lockShopRe).WithArgs(cardID, shopID).
		WillReturnRows(pgxmock.NewRows([]string{"stamp_count", "total_redeemed"}).AddRow(0, 4))
	mock.ExpectRollback()

	_, err := r.VoidLastStamp(context.Background(), model.VoidRequest{CardID: cardID, ShopID: shopID})
	require.ErrorIs(t, err, errs.ErrNothingToVoid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_VoidLastStamp_OtherShop(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)
	cardID := uuid.Must(uuid.NewV4())
	shopID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(lockShopRe).WithArgs(cardID, shopID).WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := r.VoidLastStamp(context.Background(), model.VoidRequest{CardID: cardID, ShopID: shopID})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListByShop(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)

	shopID := uuid.Must(uuid.NewV4())
	id1, id2 := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	card := uuid.Must(uuid.NewV4())
	cust := uuid.Must(uuid.NewV4())
	staff := uuid.Must(uuid.NewV4())
	ts := time.Now().UTC()

	rows := pgxmock.NewRows([]string{"id", "card_id", "customer_id", "staff_id", "type", "stamps_before", "stamps_after", "ip_address", "created_at"}).
		AddRow(id1, card, cust, staff.String(), "redeem", 5, 0, "10.0.0.1", ts).
		AddRow(id2, card, cust, nil, "stamp", 4, 5, "", ts.Add(-time.Minute))

	mock.ExpectQuery(`SELECT t.id, t.card_id, c.customer_id, t.staff_id, t.type, t.stamps_before, t.stamps_after, COALESCE\(t.ip_address, ''\), t.created_at FROM stamp_transactions t JOIN loyalty_cards c ON c.id = t.card_id WHERE c.shop_id=\$1 ORDER BY t.created_at DESC, t.id DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(shopID, 50, 0).
		WillReturnRows(rows)

	out, err := r.ListByShop(context.Background(), shopID, model.Page{Limit: 50})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, model.TxRedeem, out[0].Type)
	require.Equal(t, staff, out[0].StaffID)
	require.Equal(t, cust, out[0].CustomerID)
	require.Equal(t, uuid.Nil, out[1].StaffID)
	require.Equal(t, model.TxStamp, out[1].Type)
}

func TestLedgerRepo_ListByShop_QueryErr(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewLedgerRepo(db)
	shopID := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT t.id`).WithArgs(shopID, 10, 20).WillReturnError(errors.New("q-fail"))
	_, err := r.ListByShop(context.Background(), shopID, model.Page{Limit: 10, Offset: 20})
	require.Error(t, err)
}
