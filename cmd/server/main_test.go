package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/stampcard/internal/config"
	"github.com/and161185/stampcard/internal/limiter"
)

func memoryConfig(shop uuid.UUID) *config.Config {
	cfg := config.Default()
	cfg.Store = config.BackendMemory
	cfg.GuardBackend = config.BackendMemory
	cfg.Shops = []config.ShopSeed{{ID: shop.String(), StampGoal: 6, Secret: "s3cret"}}
	return cfg
}

func TestOpenStores_Memory(t *testing.T) {
	ctx := context.Background()
	shop := uuid.Must(uuid.NewV4())

	st, err := openStores(ctx, memoryConfig(shop), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer st.close()

	p, err := st.shops.GetParams(ctx, shop)
	require.NoError(t, err)
	require.Equal(t, 6, p.StampGoal)
	require.NotNil(t, st.purge)

	g := limiter.NewGuard(st.guard, time.Minute)
	ok, err := g.ClaimOnce(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = g.ClaimOnce(ctx, "tok")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOpenStores_RedisGuard(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	cfg := memoryConfig(uuid.Must(uuid.NewV4()))
	cfg.GuardBackend = config.BackendRedis
	cfg.RedisURL = "redis://" + mr.Addr()

	st, err := openStores(ctx, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer st.close()

	require.Nil(t, st.purge)
	require.Len(t, st.checks, 1)
	require.NoError(t, st.checks[0].Fn(ctx))

	ok, err := limiter.NewGuard(st.guard, time.Minute).ClaimOnce(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, mr.Keys(), 1)
}

func TestOpenStores_Errors(t *testing.T) {
	ctx := context.Background()
	log := zaptest.NewLogger(t)
	shop := uuid.Must(uuid.NewV4())

	cfg := memoryConfig(shop)
	cfg.GuardBackend = config.BackendPostgres
	_, err := openStores(ctx, cfg, log)
	require.ErrorContains(t, err, "requires the postgres store")

	cfg = memoryConfig(shop)
	cfg.GuardBackend = "etcd"
	_, err = openStores(ctx, cfg, log)
	require.ErrorContains(t, err, "unknown guard backend")

	cfg = memoryConfig(shop)
	cfg.Store = "sqlite"
	_, err = openStores(ctx, cfg, log)
	require.ErrorContains(t, err, "unknown store")

	cfg = memoryConfig(shop)
	cfg.Shops[0].StampGoal = 1
	_, err = openStores(ctx, cfg, log)
	require.Error(t, err)
}
