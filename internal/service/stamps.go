package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
)

// ScanRequest is one staff-initiated scan of a customer's display token.
type ScanRequest struct {
	RawToken   string
	StaffID    uuid.UUID
	ShopID     uuid.UUID
	SourceAddr string
}

// StampService runs the scan pipeline.
type StampService interface {
	// ProcessScan verifies, gates and applies one scan. A nil error means the
	// scan was accepted; otherwise errs.OutcomeOf(err) names the rejection.
	ProcessScan(ctx context.Context, req ScanRequest) (model.StampResult, error)
}

type StampServiceImpl struct {
	d Deps
}

// NewStampService constructs StampService.
func NewStampService(d Deps) *StampServiceImpl {
	return &StampServiceImpl{d: d.withDefaults()}
}

// ProcessScan runs the pipeline steps in order and stops at the first rejection:
//  1. shop parameters
//  2. token verification
//  3. replay gate
//  4. card resolution
//  5. cooldown gate
//  6. ledger transition
//
// Each collaborator is called at most once. Nothing is retried.
func (s *StampServiceImpl) ProcessScan(ctx context.Context, req ScanRequest) (res model.StampResult, err error) {
	start := time.Now()
	var cardID uuid.UUID
	defer func() { s.observe(req, cardID, res, err, time.Since(start)) }()

	params, err := loadParams(ctx, s.d, req.ShopID)
	if err != nil {
		return model.StampResult{}, err
	}

	claims, err := s.d.Codec.Verify(req.RawToken, params.SigningSecret, s.d.TokenMaxAge)
	if err != nil {
		return model.StampResult{}, err
	}
	customerID, err := uuid.FromString(claims.CustomerID)
	if err != nil {
		return model.StampResult{}, fmt.Errorf("%w: customer id is not a uuid", errs.ErrInvalidToken)
	}

	first, err := s.d.Gate.ClaimOnce(ctx, req.RawToken)
	if err != nil {
		return model.StampResult{}, unavailable("replay gate", err)
	}
	if !first {
		return model.StampResult{}, errs.ErrReplayRejected
	}

	card, err := s.d.Cards.GetByCustomer(ctx, customerID, req.ShopID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.StampResult{}, errs.ErrCardNotFound
		}
		return model.StampResult{}, unavailable("card lookup", err)
	}
	cardID = card.ID

	allowed, err := s.d.Gate.ClaimInterval(ctx, card.ID.String(), params.MinInterval)
	if err != nil {
		return model.StampResult{}, unavailable("cooldown gate", err)
	}
	if !allowed {
		return model.StampResult{}, errs.ErrTooSoon
	}

	out, err := s.d.Ledger.ApplyStamp(ctx, model.StampRequest{
		CardID:     card.ID,
		StaffID:    req.StaffID,
		RawToken:   req.RawToken,
		SourceAddr: req.SourceAddr,
		Goal:       params.StampGoal,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.StampResult{}, fmt.Errorf("ledger: %w", errs.ErrCardNotFound)
		}
		return model.StampResult{}, unavailable("ledger", err)
	}
	out.StampGoal = params.StampGoal
	return out, nil
}

func (s *StampServiceImpl) observe(req ScanRequest, cardID uuid.UUID, res model.StampResult, err error, elapsed time.Duration) {
	outcome := errs.OutcomeOf(err)
	s.d.Metrics.ObserveScan(outcome, elapsed, res.Redeemed)

	fields := []zap.Field{
		zap.String("outcome", string(outcome)),
		zap.Stringer("shop_id", req.ShopID),
		zap.Stringer("staff_id", req.StaffID),
		zap.String("source", req.SourceAddr),
		zap.Duration("elapsed", elapsed),
	}
	if cardID != uuid.Nil {
		fields = append(fields, zap.Stringer("card_id", cardID))
	}
	switch outcome {
	case model.OutcomeAccepted:
		s.d.Log.Info("scan accepted", append(fields,
			zap.Int("stamps_before", res.StampsBefore),
			zap.Int("stamps_after", res.StampsAfter),
			zap.Bool("redeemed", res.Redeemed),
		)...)
	case model.OutcomeBackendUnavailable, model.OutcomeConfigurationError:
		s.d.Log.Error("scan failed", append(fields, zap.Error(err))...)
	default:
		s.d.Log.Warn("scan rejected", fields...)
	}
}
