package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
)

const (
	// DefaultPageSize is used when a listing asks for no explicit limit.
	DefaultPageSize = 50
	// MaxPageSize caps a single listing page.
	MaxPageSize = 200
)

// CardView is a card together with its shop's goal.
type CardView struct {
	Card      model.Card
	StampGoal int
}

// CardService covers the customer display and the admin ledger views.
type CardService interface {
	// MintToken signs a fresh display token for the customer with the shop's secret.
	MintToken(ctx context.Context, customerID, shopID uuid.UUID) (string, error)
	// RegisterCard creates the customer's card in the shop if needed.
	RegisterCard(ctx context.Context, customerID, shopID uuid.UUID) (CardView, error)
	// GetCard returns the customer's card in the shop.
	GetCard(ctx context.Context, customerID, shopID uuid.UUID) (CardView, error)
	// ListTransactions returns the shop audit log, newest first.
	ListTransactions(ctx context.Context, shopID uuid.UUID, page model.Page) ([]model.Transaction, error)
	// VoidLastStamp reverts one stamp on a card of the shop.
	VoidLastStamp(ctx context.Context, req model.VoidRequest) (model.StampResult, error)
}

type CardServiceImpl struct {
	d Deps
}

// NewCardService constructs CardService.
func NewCardService(d Deps) *CardServiceImpl {
	return &CardServiceImpl{d: d.withDefaults()}
}

// MintToken does not require an existing card; scanning a token for an
// unregistered customer ends in card_not_found.
func (s *CardServiceImpl) MintToken(ctx context.Context, customerID, shopID uuid.UUID) (string, error) {
	if customerID == uuid.Nil {
		return "", fmt.Errorf("%w: empty customer id", errs.ErrValidation)
	}
	params, err := loadParams(ctx, s.d, shopID)
	if err != nil {
		return "", err
	}
	return s.d.Codec.Issue(customerID.String(), params.SigningSecret)
}

// RegisterCard is idempotent.
func (s *CardServiceImpl) RegisterCard(ctx context.Context, customerID, shopID uuid.UUID) (CardView, error) {
	if customerID == uuid.Nil {
		return CardView{}, fmt.Errorf("%w: empty customer id", errs.ErrValidation)
	}
	params, err := loadParams(ctx, s.d, shopID)
	if err != nil {
		return CardView{}, err
	}
	c, err := s.d.Cards.EnsureCard(ctx, customerID, shopID)
	if err != nil {
		return CardView{}, err
	}
	s.d.Log.Info("card registered", zap.Stringer("card_id", c.ID), zap.Stringer("shop_id", shopID))
	return CardView{Card: *c, StampGoal: params.StampGoal}, nil
}

// GetCard returns errs.ErrCardNotFound for unregistered customers.
func (s *CardServiceImpl) GetCard(ctx context.Context, customerID, shopID uuid.UUID) (CardView, error) {
	params, err := loadParams(ctx, s.d, shopID)
	if err != nil {
		return CardView{}, err
	}
	c, err := s.d.Cards.GetByCustomer(ctx, customerID, shopID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return CardView{}, errs.ErrCardNotFound
		}
		return CardView{}, err
	}
	return CardView{Card: *c, StampGoal: params.StampGoal}, nil
}

// ListTransactions clamps the page to [1, MaxPageSize]; zero selects DefaultPageSize.
func (s *CardServiceImpl) ListTransactions(ctx context.Context, shopID uuid.UUID, page model.Page) ([]model.Transaction, error) {
	if page.Limit < 0 || page.Offset < 0 {
		return nil, fmt.Errorf("%w: negative limit/offset", errs.ErrValidation)
	}
	if page.Limit == 0 {
		page.Limit = DefaultPageSize
	}
	if page.Limit > MaxPageSize {
		page.Limit = MaxPageSize
	}
	txs, err := s.d.Ledger.ListByShop(ctx, shopID, page)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	return txs, nil
}

// VoidLastStamp maps a card outside the shop to errs.ErrCardNotFound.
func (s *CardServiceImpl) VoidLastStamp(ctx context.Context, req model.VoidRequest) (model.StampResult, error) {
	if req.CardID == uuid.Nil {
		return model.StampResult{}, fmt.Errorf("%w: empty card id", errs.ErrValidation)
	}
	res, err := s.d.Ledger.VoidLastStamp(ctx, req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.StampResult{}, errs.ErrCardNotFound
		}
		return model.StampResult{}, err
	}
	s.d.Metrics.ObserveVoid()
	s.d.Log.Info("stamp voided",
		zap.Stringer("card_id", req.CardID),
		zap.Stringer("staff_id", req.StaffID),
		zap.Int("stamps_after", res.StampsAfter),
	)
	return res, nil
}

// loadParams reads and validates shop parameters. A missing or unusable shop
// is a configuration error, a failing store is a backend error.
func loadParams(ctx context.Context, d Deps, shopID uuid.UUID) (model.ShopParams, error) {
	p, err := d.Shops.GetParams(ctx, shopID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.ShopParams{}, fmt.Errorf("shop %s: %w", shopID, errs.ErrConfiguration)
		}
		return model.ShopParams{}, unavailable("shop params", err)
	}
	switch {
	case p.StampGoal < 2:
		return model.ShopParams{}, fmt.Errorf("shop %s: stamp goal %d: %w", shopID, p.StampGoal, errs.ErrConfiguration)
	case p.MinInterval < 0:
		return model.ShopParams{}, fmt.Errorf("shop %s: negative interval: %w", shopID, errs.ErrConfiguration)
	case len(p.SigningSecret) == 0:
		return model.ShopParams{}, fmt.Errorf("shop %s: empty signing secret: %w", shopID, errs.ErrConfiguration)
	}
	return p, nil
}
