// Package convert maps domain values to stampcard/v1 protobuf messages and back.
package convert

import (
	"fmt"
	"time"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/stampcard/gen/go/stampcard/v1"
	model "github.com/and161185/stampcard/internal/model"
	"github.com/and161185/stampcard/internal/service"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func id(v u.UUID) string {
	if v == u.Nil {
		return ""
	}
	return v.String()
}

// --- Scan ---

// ToScanResponse converts an accepted scan.
func ToScanResponse(r model.StampResult) *pb.ScanResponse {
	resp := &pb.ScanResponse{}
	resp.SetCardId(id(r.CardID))
	resp.SetTransactionId(id(r.TransactionID))
	resp.SetStampsBefore(int32(r.StampsBefore))
	resp.SetStampsAfter(int32(r.StampsAfter))
	resp.SetRedeemed(r.Redeemed)
	resp.SetTotalRedeemed(int32(r.TotalRedeemed))
	resp.SetStampGoal(int32(r.StampGoal))
	return resp
}

// --- Cards ---

// ToCardResponse converts a card view.
func ToCardResponse(v service.CardView) *pb.CardResponse {
	resp := &pb.CardResponse{}
	resp.SetCardId(id(v.Card.ID))
	resp.SetCustomerId(id(v.Card.CustomerID))
	resp.SetShopId(id(v.Card.ShopID))
	resp.SetStampCount(int32(v.Card.StampCount))
	resp.SetTotalRedeemed(int32(v.Card.TotalRedeemed))
	resp.SetStampGoal(int32(v.StampGoal))
	resp.SetUpdatedAt(ts(v.Card.UpdatedAt))
	return resp
}

// --- Audit log ---

// ToProtoTransaction converts one audit record. The raw token is dropped.
func ToProtoTransaction(t model.Transaction) *pb.Transaction {
	tx := &pb.Transaction{}
	tx.SetId(id(t.ID))
	tx.SetCardId(id(t.CardID))
	tx.SetCustomerId(id(t.CustomerID))
	tx.SetStaffId(id(t.StaffID))
	tx.SetType(string(t.Type))
	tx.SetStampsBefore(int32(t.StampsBefore))
	tx.SetStampsAfter(int32(t.StampsAfter))
	tx.SetSourceAddr(t.SourceAddr)
	tx.SetCreatedAt(ts(t.CreatedAt))
	return tx
}

// ToListTransactionsResponse converts a page of audit records.
func ToListTransactionsResponse(txs []model.Transaction) *pb.ListTransactionsResponse {
	out := make([]*pb.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, ToProtoTransaction(t))
	}
	resp := &pb.ListTransactionsResponse{}
	resp.SetTransactions(out)
	return resp
}

// FromListTransactionsRequest extracts the requested page.
func FromListTransactionsRequest(in *pb.ListTransactionsRequest) (model.Page, error) {
	p := model.Page{Limit: int(in.GetLimit()), Offset: int(in.GetOffset())}
	if p.Limit < 0 || p.Offset < 0 {
		return model.Page{}, fmt.Errorf("negative limit/offset")
	}
	return p, nil
}

// --- Void ---

// FromVoidLastStampRequest parses the target card id.
func FromVoidLastStampRequest(in *pb.VoidLastStampRequest) (u.UUID, error) {
	var cardID u.UUID
	if err := cardID.UnmarshalText([]byte(in.GetCardId())); err != nil {
		return u.Nil, fmt.Errorf("invalid card_id: %w", err)
	}
	if cardID == u.Nil {
		return u.Nil, fmt.Errorf("empty card_id")
	}
	return cardID, nil
}

// ToVoidResponse converts a void result.
func ToVoidResponse(r model.StampResult) *pb.VoidResponse {
	resp := &pb.VoidResponse{}
	resp.SetCardId(id(r.CardID))
	resp.SetTransactionId(id(r.TransactionID))
	resp.SetStampsBefore(int32(r.StampsBefore))
	resp.SetStampsAfter(int32(r.StampsAfter))
	resp.SetTotalRedeemed(int32(r.TotalRedeemed))
	return resp
}
