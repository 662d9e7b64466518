package service

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
	"github.com/and161185/stampcard/internal/repository"
)

// calls records collaborator invocations in order.
type calls struct {
	mu  sync.Mutex
	log []string
}

func (c *calls) add(name string) {
	c.mu.Lock()
	c.log = append(c.log, name)
	c.mu.Unlock()
}

func (c *calls) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.log...)
}

type fakeShops struct {
	c      *calls
	params map[uuid.UUID]model.ShopParams
	err    error
}

var _ repository.ShopRepository = (*fakeShops)(nil)

func (f *fakeShops) GetParams(_ context.Context, id uuid.UUID) (model.ShopParams, error) {
	f.c.add("shop")
	if f.err != nil {
		return model.ShopParams{}, f.err
	}
	p, ok := f.params[id]
	if !ok {
		return model.ShopParams{}, errs.ErrNotFound
	}
	return p, nil
}

type fakeCards struct {
	c     *calls
	cards map[uuid.UUID]*model.Card // by customer
	err   error
}

var _ repository.CardRepository = (*fakeCards)(nil)

func (f *fakeCards) GetByCustomer(_ context.Context, customerID, _ uuid.UUID) (*model.Card, error) {
	f.c.add("card")
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.cards[customerID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCards) EnsureCard(_ context.Context, customerID, shopID uuid.UUID) (*model.Card, error) {
	f.c.add("ensure")
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.cards[customerID]; ok {
		cp := *c
		return &cp, nil
	}
	c := &model.Card{ID: uuid.Must(uuid.NewV4()), CustomerID: customerID, ShopID: shopID}
	f.cards[customerID] = c
	cp := *c
	return &cp, nil
}

type fakeLedger struct {
	c       *calls
	res     model.StampResult
	err     error
	lastReq model.StampRequest
	lastPg  model.Page
	voidErr error
	txs     []model.Transaction
}

var _ repository.LedgerRepository = (*fakeLedger)(nil)

func (f *fakeLedger) ApplyStamp(_ context.Context, req model.StampRequest) (model.StampResult, error) {
	f.c.add("apply")
	f.lastReq = req
	if f.err != nil {
		return model.StampResult{}, f.err
	}
	r := f.res
	r.CardID = req.CardID
	return r, nil
}

func (f *fakeLedger) VoidLastStamp(_ context.Context, req model.VoidRequest) (model.StampResult, error) {
	f.c.add("void")
	if f.voidErr != nil {
		return model.StampResult{}, f.voidErr
	}
	return model.StampResult{CardID: req.CardID, StampsBefore: 2, StampsAfter: 1}, nil
}

func (f *fakeLedger) ListByShop(_ context.Context, _ uuid.UUID, page model.Page) ([]model.Transaction, error) {
	f.c.add("list")
	f.lastPg = page
	return f.txs, f.err
}

type fakeGate struct {
	c           *calls
	once        bool
	onceErr     error
	interval    bool
	intervalErr error
	lastMin     time.Duration
}

var _ Gate = (*fakeGate)(nil)

func (f *fakeGate) ClaimOnce(context.Context, string) (bool, error) {
	f.c.add("once")
	return f.once, f.onceErr
}

func (f *fakeGate) ClaimInterval(_ context.Context, _ string, d time.Duration) (bool, error) {
	f.c.add("interval")
	f.lastMin = d
	return f.interval, f.intervalErr
}
