// Package migrate applies the embedded goose migrations.
package migrate

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/and161185/stampcard/migrations"
)

// zapGoose routes goose progress lines through zap.
type zapGoose struct{ s *zap.SugaredLogger }

func (l zapGoose) Printf(format string, v ...any) { l.s.Infof(format, v...) }
func (l zapGoose) Fatalf(format string, v ...any) { l.s.Fatalf(format, v...) }

func open(dsn string, log *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	goose.SetBaseFS(migrations.FS)
	if log != nil {
		goose.SetLogger(zapGoose{s: log.Named("migrate").Sugar()})
	}
	if err := goose.SetDialect("postgres"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Up runs all pending migrations.
func Up(ctx context.Context, dsn string, log *zap.Logger) error {
	db, err := open(dsn, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Reset rolls every migration back. Used by integration tests.
func Reset(ctx context.Context, dsn string) error {
	db, err := open(dsn, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	return goose.ResetContext(ctx, db, ".")
}
