package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type pgxTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactor(db database.PgxIface, log *zap.Logger) Transactor {
	return &pgxTransactor{
		db:  db,
		log: log.With(zap.String("repository", "tx")),
	}
}

// WithTx commits when fn returns nil and rolls back otherwise, including
// when fn panics.
func (t *pgxTransactor) WithTx(ctx context.Context, fn func(repo *Repository) error) (err error) {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		t.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			t.rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			t.rollback(ctx, tx)
		}
	}()

	if err = fn(newTxRepository(tx, t.log)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		t.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (t *pgxTransactor) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		t.log.Warn("Failed to roll back transaction", zap.Error(err))
	}
}

func newTxRepository(tx pgx.Tx, log *zap.Logger) *Repository {
	repo := &Repository{
		Movie: NewMovieRepository(tx, log),
		Genre: NewGenreRepository(tx, log),
	}
	repo.Tx = txRunner{repo: repo}
	return repo
}
