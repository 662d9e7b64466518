// Package memory is an in-process implementation of the repository
// interfaces for development servers and tests. Ledger mutations lock only
// the affected card.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
	"github.com/gofrs/uuid/v5"
)

type cardKey struct{ customer, shop uuid.UUID }

type cardEntry struct {
	mu   sync.Mutex
	card model.Card
}

// Store holds shops, cards and the audit log in memory.
type Store struct {
	mu         sync.RWMutex
	shops      map[uuid.UUID]model.ShopParams
	cards      map[uuid.UUID]*cardEntry
	byCustomer map[cardKey]uuid.UUID
	txs        []model.Transaction
	now        func() time.Time
}

// New constructs an empty store. now may be nil to use the wall clock.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		shops:      map[uuid.UUID]model.ShopParams{},
		cards:      map[uuid.UUID]*cardEntry{},
		byCustomer: map[cardKey]uuid.UUID{},
		now:        now,
	}
}

// PutShop creates or replaces shop parameters.
func (s *Store) PutShop(p model.ShopParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.SigningSecret = append([]byte(nil), p.SigningSecret...)
	s.shops[p.ShopID] = p
}

// GetParams implements repository.ShopRepository.
func (s *Store) GetParams(_ context.Context, shopID uuid.UUID) (model.ShopParams, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.shops[shopID]
	if !ok {
		return model.ShopParams{}, errs.ErrNotFound
	}
	return p, nil
}

// GetByCustomer implements repository.CardRepository.
func (s *Store) GetByCustomer(_ context.Context, customerID, shopID uuid.UUID) (*model.Card, error) {
	s.mu.RLock()
	id, ok := s.byCustomer[cardKey{customerID, shopID}]
	e := s.cards[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.ErrNotFound
	}
	e.mu.Lock()
	c := e.card
	e.mu.Unlock()
	return &c, nil
}

// EnsureCard implements repository.CardRepository.
func (s *Store) EnsureCard(ctx context.Context, customerID, shopID uuid.UUID) (*model.Card, error) {
	s.mu.Lock()
	if _, ok := s.shops[shopID]; !ok {
		s.mu.Unlock()
		return nil, errs.ErrNotFound
	}
	k := cardKey{customerID, shopID}
	if _, ok := s.byCustomer[k]; !ok {
		id, err := uuid.NewV4()
		if err != nil {
			s.mu.Unlock()
			return nil, err
		}
		now := s.now()
		s.cards[id] = &cardEntry{card: model.Card{
			ID: id, CustomerID: customerID, ShopID: shopID, CreatedAt: now, UpdatedAt: now,
		}}
		s.byCustomer[k] = id
	}
	s.mu.Unlock()
	return s.GetByCustomer(ctx, customerID, shopID)
}

func (s *Store) entry(cardID uuid.UUID) (*cardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.cards[cardID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return e, nil
}

// ApplyStamp implements repository.LedgerRepository.
func (s *Store) ApplyStamp(ctx context.Context, req model.StampRequest) (model.StampResult, error) {
	if req.Goal < 2 {
		return model.StampResult{}, fmt.Errorf("%w: stamp goal %d < 2", errs.ErrValidation, req.Goal)
	}
	if err := ctx.Err(); err != nil {
		return model.StampResult{}, err
	}
	e, err := s.entry(req.CardID)
	if err != nil {
		return model.StampResult{}, err
	}
	txID, err := uuid.NewV4()
	if err != nil {
		return model.StampResult{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	before := e.card.StampCount
	after, total, redeemed := model.Advance(before, e.card.TotalRedeemed, req.Goal)
	now := s.now()
	e.card.StampCount, e.card.TotalRedeemed, e.card.UpdatedAt = after, total, now

	typ := model.TxStamp
	if redeemed {
		typ = model.TxRedeem
	}
	s.appendTx(model.Transaction{
		ID: txID, CardID: req.CardID, CustomerID: e.card.CustomerID, StaffID: req.StaffID, Type: typ,
		StampsBefore: before, StampsAfter: after, RawToken: req.RawToken, SourceAddr: req.SourceAddr, CreatedAt: now,
	})
	return model.StampResult{
		CardID:        req.CardID,
		TransactionID: txID,
		StampsBefore:  before,
		StampsAfter:   after,
		Redeemed:      redeemed,
		TotalRedeemed: total,
		StampGoal:     req.Goal,
	}, nil
}

// VoidLastStamp implements repository.LedgerRepository.
func (s *Store) VoidLastStamp(_ context.Context, req model.VoidRequest) (model.StampResult, error) {
	e, err := s.entry(req.CardID)
	if err != nil {
		return model.StampResult{}, err
	}
	txID, err := uuid.NewV4()
	if err != nil {
		return model.StampResult{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.card.ShopID != req.ShopID {
		return model.StampResult{}, errs.ErrNotFound
	}
	before := e.card.StampCount
	if before == 0 {
		return model.StampResult{}, errs.ErrNothingToVoid
	}
	now := s.now()
	e.card.StampCount, e.card.UpdatedAt = before-1, now
	s.appendTx(model.Transaction{
		ID: txID, CardID: req.CardID, CustomerID: e.card.CustomerID, StaffID: req.StaffID, Type: model.TxVoid,
		StampsBefore: before, StampsAfter: before - 1, SourceAddr: req.SourceAddr, CreatedAt: now,
	})
	return model.StampResult{
		CardID:        req.CardID,
		TransactionID: txID,
		StampsBefore:  before,
		StampsAfter:   before - 1,
		TotalRedeemed: e.card.TotalRedeemed,
	}, nil
}

func (s *Store) appendTx(t model.Transaction) {
	s.mu.Lock()
	s.txs = append(s.txs, t)
	s.mu.Unlock()
}

// ListByShop implements repository.LedgerRepository.
func (s *Store) ListByShop(_ context.Context, shopID uuid.UUID, page model.Page) ([]model.Transaction, error) {
	s.mu.RLock()
	var out []model.Transaction
	for i := len(s.txs) - 1; i >= 0; i-- {
		t := s.txs[i]
		if e, ok := s.cards[t.CardID]; ok && e.card.ShopID == shopID {
			t.RawToken = ""
			out = append(out, t)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if page.Offset >= len(out) {
		return nil, nil
	}
	out = out[page.Offset:]
	if page.Limit > 0 && page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out, nil
}
