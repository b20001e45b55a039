package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/metrics"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

const movieColumns = `id, title, release_date, genre, price, rating, version, created_at, updated_at`

type movieRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewMovieRepository(db database.Querier, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// Create inserts movie and fills in the store-assigned ID, Version and
// timestamps.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) (err error) {
	defer metrics.ObserveStoreQuery("movie_create", time.Now(), &err)

	query := `
		INSERT INTO movies (title, release_date, genre, price, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, version, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		movie.Title,
		movie.ReleaseDate,
		movie.Genre,
		movie.Price,
		movie.Rating,
	).Scan(
		&movie.ID,
		&movie.Version,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (_ *entity.Movie, err error) {
	defer metrics.ObserveStoreQuery("movie_find_by_id", time.Now(), &err)

	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter MovieFilter) (_ []*entity.Movie, err error) {
	defer metrics.ObserveStoreQuery("movie_find_all", time.Now(), &err)

	query, args := buildFindAllQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.String("title", filter.Title),
			zap.String("genre", filter.Genre),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.String("title", filter.Title),
		zap.String("genre", filter.Genre),
	)

	return movies, nil
}

// Update replaces every mutable column, but only while movie.Version is
// still the stored version. On success movie.Version and UpdatedAt hold the
// new values.
func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) (err error) {
	defer metrics.ObserveStoreQuery("movie_update", time.Now(), &err)

	query := `
		UPDATE movies
		SET title = $3, release_date = $4, genre = $5, price = $6, rating = $7,
		    version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		movie.ID,
		movie.Version,
		movie.Title,
		movie.ReleaseDate,
		movie.Genre,
		movie.Price,
		movie.Rating,
	).Scan(&movie.Version, &movie.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		r.log.Warn("Movie update lost optimistic check",
			zap.Int64("movie_id", movie.ID),
			zap.Int32("version", movie.Version),
		)
		return ErrEditConflict
	}
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) (err error) {
	defer metrics.ObserveStoreQuery("movie_delete", time.Now(), &err)

	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (r *movieRepository) Exists(ctx context.Context, id int64) (_ bool, err error) {
	defer metrics.ObserveStoreQuery("movie_exists", time.Now(), &err)

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check movie existence",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return false, fmt.Errorf("failed to check movie: %w", err)
	}

	return exists, nil
}

// buildFindAllQuery composes the list query from the optional filters,
// numbering placeholders in the order their args are appended.
func buildFindAllQuery(filter MovieFilter) (string, []any) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + movieColumns + ` FROM movies WHERE 1=1`)

	args := []any{}

	if filter.Title != "" {
		args = append(args, "%"+escapeLike(filter.Title)+"%")
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE $%d", len(args)))
	}

	if filter.Genre != "" {
		args = append(args, filter.Genre)
		queryBuilder.WriteString(fmt.Sprintf(" AND genre = $%d", len(args)))
	}

	queryBuilder.WriteString(" ORDER BY id")

	return queryBuilder.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.ReleaseDate,
		&movie.Genre,
		&movie.Price,
		&movie.Rating,
		&movie.Version,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
