package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/metrics"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, filter request.MovieFilter) (*response.MovieGenreResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieEditRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// GetMovies returns the movies matching filter together with every genre in
// the catalog. The genre list ignores the filter.
func (s *movieService) GetMovies(ctx context.Context, filter request.MovieFilter) (*response.MovieGenreResponse, error) {
	genres, err := s.repo.Genre.FindDistinct(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	movies, err := s.repo.Movie.FindAll(ctx, repository.MovieFilter{
		Title: filter.Search,
		Genre: filter.Genre,
	})
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.String("movie_genre", filter.Genre),
			zap.String("search_string", filter.Search),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int("genre_count", len(genres)),
		zap.String("movie_genre", filter.Genre),
		zap.String("search_string", filter.Search),
	)

	return response.NewMovieGenreResponse(response.MoviesToResponse(movies), genres, filter.Genre, filter.Search), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, ok := utils.ParseID(movieID)
	if !ok {
		s.log.Warn("Invalid movie ID", zap.String("movie_id", movieID))
		return nil, ErrMovieNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie, err := s.movieFromRequest(req, req)
	if err != nil {
		return nil, err
	}

	err = s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		return tx.Movie.Create(ctx, movie)
	})
	if err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// UpdateMovie replaces the whole record. The version in req must still be
// the stored one; a record that vanished meanwhile reports ErrMovieNotFound,
// one that changed reports ErrEditConflict.
func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieEditRequest) (*response.MovieResponse, error) {
	id, ok := utils.ParseID(movieID)
	if !ok {
		s.log.Warn("Invalid movie ID", zap.String("movie_id", movieID))
		return nil, ErrMovieNotFound
	}
	if req.ID != id {
		s.log.Warn("Movie ID mismatch",
			zap.Int64("path_id", id),
			zap.Int64("payload_id", req.ID),
		)
		return nil, ErrMovieNotFound
	}

	movie, err := s.movieFromRequest(req, &req.MovieRequest)
	if err != nil {
		return nil, err
	}
	movie.ID = id
	movie.Version = req.Version

	err = s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		err := tx.Movie.Update(ctx, movie)
		if !errors.Is(err, repository.ErrEditConflict) {
			return err
		}

		exists, err := tx.Movie.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrMovieNotFound
		}
		return ErrEditConflict
	})

	switch {
	case errors.Is(err, ErrMovieNotFound):
		s.log.Warn("Movie removed before update", zap.Int64("movie_id", id))
		return nil, err
	case errors.Is(err, ErrEditConflict):
		metrics.EditConflicts.Inc()
		s.log.Warn("Movie update conflict",
			zap.Int64("movie_id", id),
			zap.Int32("version", req.Version),
		)
		return nil, err
	case err != nil:
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", id),
		zap.String("title", movie.Title),
		zap.Int32("version", movie.Version),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// DeleteMovie re-reads the record and removes it in one transaction,
// returning what was deleted.
func (s *movieService) DeleteMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, ok := utils.ParseID(movieID)
	if !ok {
		s.log.Warn("Invalid movie ID", zap.String("movie_id", movieID))
		return nil, ErrMovieNotFound
	}

	var deleted *entity.Movie
	err := s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		movie, err := tx.Movie.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if movie == nil {
			return ErrMovieNotFound
		}

		if err := tx.Movie.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return ErrMovieNotFound
			}
			return err
		}

		deleted = movie
		return nil
	})
	if errors.Is(err, ErrMovieNotFound) {
		return nil, err
	}
	if err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", id),
		zap.String("title", deleted.Title),
	)

	resp := response.MovieToResponse(deleted)
	return &resp, nil
}

// movieFromRequest validates payload and maps the allowlisted fields onto a
// new entity. Validation problems come back as *ValidationError carrying
// payload.
func (s *movieService) movieFromRequest(payload any, req *request.MovieRequest) (*entity.Movie, error) {
	if errs := utils.ValidateStruct(payload); len(errs) > 0 {
		s.log.Warn("Movie validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Payload: payload, Fields: errs}
	}

	releaseDate, err := time.Parse(entity.DateLayout, req.ReleaseDate)
	if err != nil {
		return nil, &ValidationError{
			Payload: payload,
			Fields:  map[string]string{"release_date": "Must be a date in 2006-01-02 format"},
		}
	}

	return &entity.Movie{
		Title:       req.Title,
		ReleaseDate: releaseDate,
		Genre:       req.Genre,
		Price:       math.Round(req.Price*100) / 100,
		Rating:      req.Rating,
	}, nil
}
