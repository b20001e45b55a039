package repository

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/pkg/database"
	"movie-catalog/pkg/metrics"

	"go.uber.org/zap"
)

type GenreRepository interface {
	// FindDistinct returns every genre present in the catalog, sorted and
	// without duplicates.
	FindDistinct(ctx context.Context) ([]string, error)
}

type genreRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewGenreRepository(db database.Querier, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) FindDistinct(ctx context.Context) (_ []string, err error) {
	defer metrics.ObserveStoreQuery("genre_find_distinct", time.Now(), &err)

	query := `SELECT DISTINCT genre FROM movies ORDER BY genre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find genres", zap.Error(err))
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}
