// Command stampd starts the stamp card gRPC server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/stampcard/gen/go/stampcard/v1"
	"github.com/and161185/stampcard/internal/config"
	"github.com/and161185/stampcard/internal/limiter"
	"github.com/and161185/stampcard/internal/metrics"
	"github.com/and161185/stampcard/internal/migrate"
	"github.com/and161185/stampcard/internal/qrtoken"
	"github.com/and161185/stampcard/internal/repository"
	"github.com/and161185/stampcard/internal/repository/memory"
	"github.com/and161185/stampcard/internal/repository/postgres"
	grpcserver "github.com/and161185/stampcard/internal/server/grpc"
	"github.com/and161185/stampcard/internal/server/ops"
	"github.com/and161185/stampcard/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration and runs the server until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	var logger *zap.Logger
	if cfg.Dev {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.GRPCAddr),
		zap.String("store", cfg.Store),
		zap.String("guard", cfg.GuardBackend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

// purger drops expired guard keys on backends without native expiry.
type purger interface {
	Purge(ctx context.Context) (int64, error)
}

// stores is the persistence wiring selected by configuration.
type stores struct {
	shops   repository.ShopRepository
	cards   repository.CardRepository
	ledger  repository.LedgerRepository
	guard   limiter.Store
	purge   purger
	checks  []ops.Check
	closers []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (*stores, error) {
	st := &stores{}

	var db *postgres.DB
	switch cfg.Store {
	case config.BackendPostgres:
		if err := migrate.Up(ctx, cfg.DSN, log); err != nil {
			return nil, fmt.Errorf("migrate up: %w", err)
		}
		var err error
		db, _, err = postgres.New(ctx, cfg.DSN, postgres.PoolOptions{
			MaxConns: int32(cfg.MaxConns),
			MinConns: int32(cfg.MinConns),
		})
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		st.closers = append(st.closers, db.Close)
		st.checks = append(st.checks, ops.Check{Name: "postgres", Fn: db.Ping})
		st.shops, st.cards, st.ledger = postgres.NewShopRepo(db), postgres.NewCardRepo(db), postgres.NewLedgerRepo(db)
	case config.BackendMemory:
		mem := memory.New(time.Now)
		for _, seed := range cfg.Shops {
			p, err := seed.Params()
			if err != nil {
				return nil, err
			}
			mem.PutShop(p)
		}
		st.shops, st.cards, st.ledger = mem, mem, mem
		log.Warn("memory store: ledger is lost on restart", zap.Int("shops", len(cfg.Shops)))
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	switch cfg.GuardBackend {
	case config.BackendRedis:
		rc, err := limiter.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			st.close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		st.closers = append(st.closers, func() { _ = rc.Close() })
		st.checks = append(st.checks, ops.Check{Name: "redis", Fn: func(ctx context.Context) error {
			return rc.Ping(ctx).Err()
		}})
		st.guard = limiter.NewRedis(rc)
	case config.BackendPostgres:
		if db == nil {
			st.close()
			return nil, errors.New("postgres guard requires the postgres store")
		}
		pg := limiter.NewPGWithQuerier(db.Pool)
		st.guard, st.purge = pg, pg
	case config.BackendMemory:
		mem := limiter.NewMemory(time.Now)
		st.guard, st.purge = mem, mem
	default:
		st.close()
		return nil, fmt.Errorf("unknown guard backend %q", cfg.GuardBackend)
	}
	return st, nil
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := service.Deps{
		Shops:       st.shops,
		Cards:       st.cards,
		Ledger:      st.ledger,
		Gate:        limiter.NewGuard(st.guard, cfg.ReplayTTL),
		Codec:       qrtoken.New(),
		TokenMaxAge: cfg.TokenMaxAge,
		Metrics:     metrics.New(reg),
		Log:         logger,
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary([]byte(cfg.JWTKey)),
		),
	}
	if cfg.TLS() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return fmt.Errorf("load TLS cert/key: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("serving plaintext gRPC (dev)")
		opts = append(opts, grpc.Creds(insecure.NewCredentials()))
	}
	s := grpc.NewServer(opts...)

	app := grpcserver.New(service.NewStampService(deps), service.NewCardService(deps))
	pb.RegisterStampCardServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(pb.StampCard_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	if cfg.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	var opsSrv *http.Server
	if cfg.OpsAddr != "" {
		opsSrv = &http.Server{
			Addr:              cfg.OpsAddr,
			Handler:           ops.NewRouter(logger, reg, st.checks...),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.GRPCAddr), zap.Bool("tls", cfg.TLS()))
		return s.Serve(lis)
	})
	if opsSrv != nil {
		g.Go(func() error {
			logger.Info("ops listening", zap.String("addr", cfg.OpsAddr))
			if err := opsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	if st.purge != nil && cfg.PurgeInterval > 0 {
		g.Go(func() error {
			purgeLoop(gctx, st.purge, cfg.PurgeInterval, logger)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		hs.Shutdown()
		shutdown(s, opsSrv, cfg.ShutdownTimeout, logger)
		return nil
	})

	return g.Wait()
}

func purgeLoop(ctx context.Context, p purger, every time.Duration, log *zap.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := p.Purge(ctx)
			if err != nil {
				log.Warn("guard purge", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Debug("guard purge", zap.Int64("removed", n))
			}
		}
	}
}

// shutdown stops both servers, forcing the gRPC server after timeout.
func shutdown(s *grpc.Server, opsSrv *http.Server, timeout time.Duration, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if opsSrv != nil {
		if err := opsSrv.Shutdown(ctx); err != nil {
			log.Warn("ops shutdown", zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.Stop()
	}
}
