package repository

import (
	"context"
	"errors"

	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrRecordNotFound is returned by writes that target a missing row.
	// Reads return (nil, nil) instead.
	ErrRecordNotFound = errors.New("record not found")

	// ErrEditConflict means the id/version pair no longer matches a row:
	// the record was changed or removed since it was read.
	ErrEditConflict = errors.New("edit conflict")
)

// MovieFilter narrows FindAll. Empty fields are ignored.
type MovieFilter struct {
	Title string // case-insensitive substring
	Genre string // exact match
}

// Transactor runs fn as one unit of work. The Repository handed to fn is
// bound to the transaction; any error from fn discards every write made
// through it.
type Transactor interface {
	WithTx(ctx context.Context, fn func(repo *Repository) error) error
}

type Repository struct {
	Movie MovieRepository
	Genre GenreRepository
	Tx    Transactor

	ping func(ctx context.Context) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
		Genre: NewGenreRepository(db, log),
		Tx:    NewTransactor(db, log),
		ping:  db.Ping,
	}
}

// Ping checks that the backing store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

// txRunner is the Transactor of a Repository that is already inside a
// transaction: nested units join the outer one.
type txRunner struct {
	repo *Repository
}

func (t txRunner) WithTx(ctx context.Context, fn func(repo *Repository) error) error {
	return fn(t.repo)
}
