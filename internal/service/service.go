// Package service contains the scan pipeline and the card services built around it.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/metrics"
	"github.com/and161185/stampcard/internal/qrtoken"
	"github.com/and161185/stampcard/internal/repository"
)

// Gate is the fraud check pair evaluated before any ledger mutation.
// limiter.Guard implements it.
type Gate interface {
	ClaimOnce(ctx context.Context, rawToken string) (bool, error)
	ClaimInterval(ctx context.Context, cardID string, minInterval time.Duration) (bool, error)
}

// Deps are the collaborators shared by the services. Everything is injected;
// nothing is looked up from package state.
type Deps struct {
	Shops       repository.ShopRepository
	Cards       repository.CardRepository
	Ledger      repository.LedgerRepository
	Gate        Gate
	Codec       *qrtoken.Codec
	TokenMaxAge time.Duration // <= 0 selects qrtoken.DefaultMaxAge
	Metrics     *metrics.Scan
	Log         *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Codec == nil {
		d.Codec = qrtoken.New()
	}
	if d.TokenMaxAge <= 0 {
		d.TokenMaxAge = qrtoken.DefaultMaxAge
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return d
}

// unavailable classifies a storage or cache failure as retryable backend trouble.
func unavailable(step string, err error) error {
	if errors.Is(err, errs.ErrBackendUnavailable) {
		return err
	}
	return fmt.Errorf("%s: %w: %v", step, errs.ErrBackendUnavailable, err)
}
