package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/limiter"
	"github.com/and161185/stampcard/internal/metrics"
	"github.com/and161185/stampcard/internal/model"
	"github.com/and161185/stampcard/internal/qrtoken"
	"github.com/and161185/stampcard/internal/repository/memory"
)

var testSecret = []byte("shop-secret")

type pipeline struct {
	c        *calls
	shops    *fakeShops
	cards    *fakeCards
	ledger   *fakeLedger
	gate     *fakeGate
	codec    *qrtoken.Codec
	svc      *StampServiceImpl
	shopID   uuid.UUID
	customer uuid.UUID
	cardID   uuid.UUID
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	c := &calls{}
	p := &pipeline{
		c:        c,
		shopID:   uuid.Must(uuid.NewV4()),
		customer: uuid.Must(uuid.NewV4()),
		cardID:   uuid.Must(uuid.NewV4()),
		codec:    qrtoken.New(qrtoken.WithClock(func() time.Time { return time.Unix(1_700_000_000, 0) })),
	}
	p.shops = &fakeShops{c: c, params: map[uuid.UUID]model.ShopParams{
		p.shopID: {ShopID: p.shopID, StampGoal: 6, MinInterval: time.Minute, SigningSecret: testSecret},
	}}
	p.cards = &fakeCards{c: c, cards: map[uuid.UUID]*model.Card{
		p.customer: {ID: p.cardID, CustomerID: p.customer, ShopID: p.shopID, StampCount: 2},
	}}
	p.ledger = &fakeLedger{c: c, res: model.StampResult{StampsBefore: 2, StampsAfter: 3, TotalRedeemed: 1}}
	p.gate = &fakeGate{c: c, once: true, interval: true}
	p.svc = NewStampService(Deps{
		Shops:  p.shops,
		Cards:  p.cards,
		Ledger: p.ledger,
		Gate:   p.gate,
		Codec:  p.codec,
		Log:    zap.NewNop(),
	})
	return p
}

func (p *pipeline) token(t *testing.T, customerID string) string {
	t.Helper()
	tok, err := p.codec.Issue(customerID, testSecret)
	require.NoError(t, err)
	return tok
}

func (p *pipeline) scan(t *testing.T, tok string) (model.StampResult, error) {
	t.Helper()
	return p.svc.ProcessScan(context.Background(), ScanRequest{
		RawToken:   tok,
		StaffID:    uuid.Must(uuid.NewV4()),
		ShopID:     p.shopID,
		SourceAddr: "10.0.0.7",
	})
}

func TestProcessScan_Accepted(t *testing.T) {
	p := newPipeline(t)
	tok := p.token(t, p.customer.String())

	res, err := p.scan(t, tok)
	require.NoError(t, err)
	require.Equal(t, 2, res.StampsBefore)
	require.Equal(t, 3, res.StampsAfter)
	require.Equal(t, 6, res.StampGoal)
	require.Equal(t, p.cardID, res.CardID)

	require.Equal(t, []string{"shop", "once", "card", "interval", "apply"}, p.c.names())
	require.Equal(t, tok, p.ledger.lastReq.RawToken)
	require.Equal(t, 6, p.ledger.lastReq.Goal)
	require.Equal(t, "10.0.0.7", p.ledger.lastReq.SourceAddr)
	require.Equal(t, time.Minute, p.gate.lastMin)
}

func TestProcessScan_TerminalSteps(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")

	cases := []struct {
		name    string
		setup   func(p *pipeline)
		token   func(t *testing.T, p *pipeline) string
		outcome model.Outcome
		calls   []string
	}{
		{
			name:    "unknown shop",
			setup:   func(p *pipeline) { p.shops.params = nil },
			outcome: model.OutcomeConfigurationError,
			calls:   []string{"shop"},
		},
		{
			name: "goal below two",
			setup: func(p *pipeline) {
				sp := p.shops.params[p.shopID]
				sp.StampGoal = 1
				p.shops.params[p.shopID] = sp
			},
			outcome: model.OutcomeConfigurationError,
			calls:   []string{"shop"},
		},
		{
			name: "empty secret",
			setup: func(p *pipeline) {
				sp := p.shops.params[p.shopID]
				sp.SigningSecret = nil
				p.shops.params[p.shopID] = sp
			},
			outcome: model.OutcomeConfigurationError,
			calls:   []string{"shop"},
		},
		{
			name:    "shop store down",
			setup:   func(p *pipeline) { p.shops.err = boom },
			outcome: model.OutcomeBackendUnavailable,
			calls:   []string{"shop"},
		},
		{
			name:    "bad token",
			token:   func(*testing.T, *pipeline) string { return "garbage" },
			outcome: model.OutcomeInvalidToken,
			calls:   []string{"shop"},
		},
		{
			name:    "customer id not a uuid",
			token:   func(t *testing.T, p *pipeline) string { return p.token(t, "alice") },
			outcome: model.OutcomeInvalidToken,
			calls:   []string{"shop"},
		},
		{
			name:    "replayed",
			setup:   func(p *pipeline) { p.gate.once = false },
			outcome: model.OutcomeReplayRejected,
			calls:   []string{"shop", "once"},
		},
		{
			name:    "replay gate down",
			setup:   func(p *pipeline) { p.gate.onceErr = errs.ErrBackendUnavailable },
			outcome: model.OutcomeBackendUnavailable,
			calls:   []string{"shop", "once"},
		},
		{
			name:    "no card",
			setup:   func(p *pipeline) { p.cards.cards = map[uuid.UUID]*model.Card{} },
			outcome: model.OutcomeCardNotFound,
			calls:   []string{"shop", "once", "card"},
		},
		{
			name:    "card store down",
			setup:   func(p *pipeline) { p.cards.err = boom },
			outcome: model.OutcomeBackendUnavailable,
			calls:   []string{"shop", "once", "card"},
		},
		{
			name:    "cooldown",
			setup:   func(p *pipeline) { p.gate.interval = false },
			outcome: model.OutcomeTooSoon,
			calls:   []string{"shop", "once", "card", "interval"},
		},
		{
			name:    "cooldown gate down",
			setup:   func(p *pipeline) { p.gate.intervalErr = boom },
			outcome: model.OutcomeBackendUnavailable,
			calls:   []string{"shop", "once", "card", "interval"},
		},
		{
			name:    "ledger lost the card",
			setup:   func(p *pipeline) { p.ledger.err = errs.ErrNotFound },
			outcome: model.OutcomeCardNotFound,
			calls:   []string{"shop", "once", "card", "interval", "apply"},
		},
		{
			name:    "ledger down",
			setup:   func(p *pipeline) { p.ledger.err = boom },
			outcome: model.OutcomeBackendUnavailable,
			calls:   []string{"shop", "once", "card", "interval", "apply"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPipeline(t)
			if tc.setup != nil {
				tc.setup(p)
			}
			tok := p.token(t, p.customer.String())
			if tc.token != nil {
				tok = tc.token(t, p)
			}

			res, err := p.scan(t, tok)
			require.Error(t, err)
			require.Equal(t, tc.outcome, errs.OutcomeOf(err))
			require.Equal(t, model.StampResult{}, res)
			require.Equal(t, tc.calls, p.c.names())
			require.NotContains(t, err.Error(), string(testSecret))
		})
	}
}

func TestProcessScan_LogsAndMetrics(t *testing.T) {
	p := newPipeline(t)
	core, logs := observer.New(zap.InfoLevel)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	p.svc = NewStampService(Deps{
		Shops: p.shops, Cards: p.cards, Ledger: p.ledger, Gate: p.gate,
		Codec: p.codec, Metrics: m, Log: zap.New(core),
	})
	tok := p.token(t, p.customer.String())

	_, err := p.scan(t, tok)
	require.NoError(t, err)
	p.gate.once = false
	_, err = p.scan(t, tok)
	require.ErrorIs(t, err, errs.ErrReplayRejected)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "scan accepted", entries[0].Message)
	require.Equal(t, "scan rejected", entries[1].Message)
	require.Equal(t, "replay_rejected", entries[1].ContextMap()["outcome"])
	for _, e := range entries {
		for k, v := range e.ContextMap() {
			require.NotEqual(t, tok, v, "field %s leaks the raw token", k)
		}
	}

	n, err := testutil.GatherAndCount(reg, "stampcard_scans_total")
	require.NoError(t, err)
	require.Equal(t, 2, n, "one series per observed outcome")
}

// scenario wires the real codec, memory ledger and memory fraud store to one clock.
type scenario struct {
	now    time.Time
	store  *memory.Store
	stamps *StampServiceImpl
	cards  *CardServiceImpl
	shopID uuid.UUID
	cust   uuid.UUID
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	sc := &scenario{
		now:    time.Unix(1_700_000_000, 0),
		shopID: uuid.Must(uuid.NewV4()),
		cust:   uuid.Must(uuid.NewV4()),
	}
	clock := func() time.Time { return sc.now }
	sc.store = memory.New(clock)
	sc.store.PutShop(model.ShopParams{ShopID: sc.shopID, StampGoal: 6, MinInterval: 60 * time.Second, SigningSecret: testSecret})

	d := Deps{
		Shops:       sc.store,
		Cards:       sc.store,
		Ledger:      sc.store,
		Gate:        limiter.NewGuard(limiter.NewMemory(clock), 0),
		Codec:       qrtoken.New(qrtoken.WithClock(clock)),
		TokenMaxAge: 60 * time.Second,
		Log:         zap.NewNop(),
	}
	sc.stamps = NewStampService(d)
	sc.cards = NewCardService(d)

	_, err := sc.cards.RegisterCard(context.Background(), sc.cust, sc.shopID)
	require.NoError(t, err)
	return sc
}

func (sc *scenario) at(sec int) { sc.now = time.Unix(1_700_000_000+int64(sec), 0) }

func (sc *scenario) mint(t *testing.T) string {
	t.Helper()
	tok, err := sc.cards.MintToken(context.Background(), sc.cust, sc.shopID)
	require.NoError(t, err)
	return tok
}

func (sc *scenario) scan(tok string) (model.StampResult, error) {
	return sc.stamps.ProcessScan(context.Background(), ScanRequest{RawToken: tok, ShopID: sc.shopID, SourceAddr: "127.0.0.1"})
}

func TestProcessScan_EndToEnd(t *testing.T) {
	sc := newScenario(t)

	sc.at(0)
	first := sc.mint(t)
	res, err := sc.scan(first)
	require.NoError(t, err)
	require.Equal(t, 1, res.StampsAfter)

	sc.at(5)
	_, err = sc.scan(first)
	require.Equal(t, model.OutcomeReplayRejected, errs.OutcomeOf(err))

	second := sc.mint(t)
	_, err = sc.scan(second)
	require.Equal(t, model.OutcomeTooSoon, errs.OutcomeOf(err))

	sc.at(65)
	res, err = sc.scan(sc.mint(t))
	require.NoError(t, err)
	require.Equal(t, 1, res.StampsBefore)
	require.Equal(t, 2, res.StampsAfter)
	require.False(t, res.Redeemed)

	txs, err := sc.cards.ListTransactions(context.Background(), sc.shopID, model.Page{})
	require.NoError(t, err)
	require.Len(t, txs, 2, "rejected scans leave no ledger trace")
}

func TestProcessScan_ExpiredToken(t *testing.T) {
	sc := newScenario(t)

	sc.at(0)
	tok := sc.mint(t)
	sc.at(61)
	_, err := sc.scan(tok)
	require.Equal(t, model.OutcomeInvalidToken, errs.OutcomeOf(err))

	view, err := sc.cards.GetCard(context.Background(), sc.cust, sc.shopID)
	require.NoError(t, err)
	require.Equal(t, 0, view.Card.StampCount)
}

func TestProcessScan_RedeemsAtGoal(t *testing.T) {
	sc := newScenario(t)

	var res model.StampResult
	for i := 0; i < 6; i++ {
		sc.at(i * 61)
		var err error
		res, err = sc.scan(sc.mint(t))
		require.NoError(t, err)
	}
	require.True(t, res.Redeemed)
	require.Equal(t, 5, res.StampsBefore)
	require.Equal(t, 0, res.StampsAfter)
	require.Equal(t, 1, res.TotalRedeemed)
	require.Equal(t, 6, res.StampGoal)
}

func TestProcessScan_UnregisteredCustomer(t *testing.T) {
	sc := newScenario(t)
	sc.cust = uuid.Must(uuid.NewV4())

	_, err := sc.scan(sc.mint(t))
	require.Equal(t, model.OutcomeCardNotFound, errs.OutcomeOf(err))
}

func TestProcessScan_FailsClosed(t *testing.T) {
	p := newPipeline(t)
	p.svc.d.Gate = limiter.NewGuard(failingStore{}, 0)

	_, err := p.scan(t, p.token(t, p.customer.String()))
	require.Equal(t, model.OutcomeBackendUnavailable, errs.OutcomeOf(err))
	require.NotContains(t, p.c.names(), "apply")
}

type failingStore struct{}

func (failingStore) SetNX(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("i/o timeout")
}
