package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"movie-catalog/internal/data/entity"

	"go.uber.org/zap"
)

// memoryStore keeps movies by value so callers never share a pointer with
// the store. mu is nil inside a transaction, where the outer store already
// holds the write lock.
type memoryStore struct {
	mu     *sync.RWMutex
	movies map[int64]entity.Movie
	nextID int64
	now    func() time.Time
}

func (s *memoryStore) rlock() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *memoryStore) lock() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *memoryStore) stage() *memoryStore {
	movies := make(map[int64]entity.Movie, len(s.movies))
	for id, movie := range s.movies {
		movies[id] = movie
	}
	return &memoryStore{movies: movies, nextID: s.nextID, now: s.now}
}

// NewMemoryRepository returns a Repository backed by process memory. Writes
// inside WithTx are staged on a copy and become visible only on success.
func NewMemoryRepository(log *zap.Logger) *Repository {
	store := &memoryStore{
		mu:     &sync.RWMutex{},
		movies: make(map[int64]entity.Movie),
		now:    func() time.Time { return time.Now().UTC() },
	}
	return newMemoryRepository(store, log)
}

func newMemoryRepository(store *memoryStore, log *zap.Logger) *Repository {
	repo := &Repository{
		Movie: &memoryMovieRepository{store: store, log: log.With(zap.String("repository", "movie_memory"))},
		Genre: &memoryGenreRepository{store: store},
	}
	if store.mu == nil {
		repo.Tx = txRunner{repo: repo}
	} else {
		repo.Tx = &memoryTransactor{store: store, log: log}
	}
	return repo
}

type memoryTransactor struct {
	store *memoryStore
	log   *zap.Logger
}

func (t *memoryTransactor) WithTx(ctx context.Context, fn func(repo *Repository) error) error {
	defer t.store.lock()()

	staged := t.store.stage()
	if err := fn(newMemoryRepository(staged, t.log)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	t.store.movies = staged.movies
	t.store.nextID = staged.nextID
	return nil
}

type memoryMovieRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	defer r.store.lock()()

	r.store.nextID++
	now := r.store.now()

	movie.ID = r.store.nextID
	movie.Version = 1
	movie.CreatedAt = now
	movie.UpdatedAt = now
	r.store.movies[movie.ID] = *movie

	r.log.Debug("Movie stored", zap.Int64("movie_id", movie.ID))
	return nil
}

func (r *memoryMovieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	defer r.store.rlock()()

	movie, ok := r.store.movies[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (r *memoryMovieRepository) FindAll(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error) {
	defer r.store.rlock()()

	title := strings.ToLower(filter.Title)

	var movies []*entity.Movie
	for _, movie := range r.store.movies {
		if title != "" && !strings.Contains(strings.ToLower(movie.Title), title) {
			continue
		}
		if filter.Genre != "" && movie.Genre != filter.Genre {
			continue
		}
		movieCopy := movie
		movies = append(movies, &movieCopy)
	}

	sort.Slice(movies, func(i, j int) bool {
		return movies[i].ID < movies[j].ID
	})

	return movies, nil
}

func (r *memoryMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	defer r.store.lock()()

	stored, ok := r.store.movies[movie.ID]
	if !ok || stored.Version != movie.Version {
		return ErrEditConflict
	}

	movie.Version = stored.Version + 1
	movie.CreatedAt = stored.CreatedAt
	movie.UpdatedAt = r.store.now()
	r.store.movies[movie.ID] = *movie
	return nil
}

func (r *memoryMovieRepository) Delete(ctx context.Context, id int64) error {
	defer r.store.lock()()

	if _, ok := r.store.movies[id]; !ok {
		return ErrRecordNotFound
	}
	delete(r.store.movies, id)
	return nil
}

func (r *memoryMovieRepository) Exists(ctx context.Context, id int64) (bool, error) {
	defer r.store.rlock()()

	_, ok := r.store.movies[id]
	return ok, nil
}

type memoryGenreRepository struct {
	store *memoryStore
}

func (r *memoryGenreRepository) FindDistinct(ctx context.Context) ([]string, error) {
	defer r.store.rlock()()

	seen := make(map[string]struct{})
	var genres []string
	for _, movie := range r.store.movies {
		if _, ok := seen[movie.Genre]; ok {
			continue
		}
		seen[movie.Genre] = struct{}{}
		genres = append(genres, movie.Genre)
	}
	sort.Strings(genres)

	return genres, nil
}
