package repository

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"

	"go.uber.org/zap"
)

func newTestMovie(title, genre string) *entity.Movie {
	return &entity.Movie{
		Title:       title,
		ReleaseDate: time.Date(1984, 3, 13, 0, 0, 0, 0, time.UTC),
		Genre:       genre,
		Price:       8.99,
	}
}

func seedMemory(t *testing.T, movies ...*entity.Movie) *Repository {
	t.Helper()

	repo := NewMemoryRepository(zap.NewNop())
	for _, movie := range movies {
		if err := repo.Movie.Create(context.Background(), movie); err != nil {
			t.Fatalf("Create(%q) error = %v", movie.Title, err)
		}
	}
	return repo
}

func TestMemoryMovieRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := seedMemory(t)

	movie := newTestMovie("Ghostbusters", "Comedy")
	if err := repo.Movie.Create(ctx, movie); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if movie.ID != 1 || movie.Version != 1 {
		t.Fatalf("Create() assigned id=%d version=%d, want 1/1", movie.ID, movie.Version)
	}

	got, err := repo.Movie.FindByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !reflect.DeepEqual(got, movie) {
		t.Errorf("FindByID() = %+v, want %+v", got, movie)
	}

	// the store hands out copies
	got.Title = "changed"
	again, _ := repo.Movie.FindByID(ctx, movie.ID)
	if again.Title != "Ghostbusters" {
		t.Error("mutating a returned movie changed the store")
	}

	missing, err := repo.Movie.FindByID(ctx, 99)
	if err != nil || missing != nil {
		t.Errorf("FindByID(99) = (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestMemoryMovieRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := seedMemory(t,
		newTestMovie("When Harry Met Sally", "Romantic Comedy"),
		newTestMovie("Ghostbusters", "Comedy"),
		newTestMovie("Ghostbusters 2", "Comedy"),
		newTestMovie("Rio Bravo", "Western"),
	)

	tests := []struct {
		name   string
		filter MovieFilter
		want   []string
	}{
		{name: "no filter", want: []string{"When Harry Met Sally", "Ghostbusters", "Ghostbusters 2", "Rio Bravo"}},
		{name: "title is case-insensitive", filter: MovieFilter{Title: "GHOST"}, want: []string{"Ghostbusters", "Ghostbusters 2"}},
		{name: "genre is exact", filter: MovieFilter{Genre: "Comedy"}, want: []string{"Ghostbusters", "Ghostbusters 2"}},
		{name: "genre does not match substrings", filter: MovieFilter{Genre: "comedy"}, want: nil},
		{name: "both filters", filter: MovieFilter{Title: "2", Genre: "Comedy"}, want: []string{"Ghostbusters 2"}},
		{name: "no match", filter: MovieFilter{Title: "Alien"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := repo.Movie.FindAll(ctx, tt.filter)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}

			var titles []string
			for _, movie := range movies {
				titles = append(titles, movie.Title)
			}
			if !reflect.DeepEqual(titles, tt.want) {
				t.Errorf("FindAll() = %v, want %v", titles, tt.want)
			}
		})
	}
}

func TestMemoryMovieRepository_UpdateVersion(t *testing.T) {
	ctx := context.Background()
	movie := newTestMovie("Ghostbusters", "Comedy")
	repo := seedMemory(t, movie)

	edit := *movie
	edit.Price = 9.99
	if err := repo.Movie.Update(ctx, &edit); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if edit.Version != 2 {
		t.Errorf("Version = %d, want 2", edit.Version)
	}
	if !edit.CreatedAt.Equal(movie.CreatedAt) {
		t.Error("Update() must keep CreatedAt")
	}

	// second writer still holds version 1
	stale := *movie
	stale.Price = 1
	if err := repo.Movie.Update(ctx, &stale); !errors.Is(err, ErrEditConflict) {
		t.Fatalf("stale Update() error = %v, want ErrEditConflict", err)
	}

	stored, _ := repo.Movie.FindByID(ctx, movie.ID)
	if stored.Price != 9.99 {
		t.Errorf("Price = %v, stale write must not persist", stored.Price)
	}

	gone := *movie
	gone.ID = 42
	if err := repo.Movie.Update(ctx, &gone); !errors.Is(err, ErrEditConflict) {
		t.Errorf("Update(missing) error = %v, want ErrEditConflict", err)
	}
}

func TestMemoryMovieRepository_Delete(t *testing.T) {
	ctx := context.Background()
	movie := newTestMovie("Rio Bravo", "Western")
	repo := seedMemory(t, movie)

	if err := repo.Movie.Delete(ctx, movie.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if exists, _ := repo.Movie.Exists(ctx, movie.ID); exists {
		t.Error("movie still exists after Delete()")
	}
	if err := repo.Movie.Delete(ctx, movie.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("second Delete() error = %v, want ErrRecordNotFound", err)
	}
}

func TestMemoryGenreRepository_FindDistinct(t *testing.T) {
	repo := seedMemory(t,
		newTestMovie("Rio Bravo", "Western"),
		newTestMovie("Ghostbusters", "Comedy"),
		newTestMovie("Ghostbusters 2", "Comedy"),
		newTestMovie("When Harry Met Sally", "Romantic Comedy"),
	)

	genres, err := repo.Genre.FindDistinct(context.Background())
	if err != nil {
		t.Fatalf("FindDistinct() error = %v", err)
	}

	want := []string{"Comedy", "Romantic Comedy", "Western"}
	if !reflect.DeepEqual(genres, want) {
		t.Errorf("FindDistinct() = %v, want %v", genres, want)
	}
}

func TestMemoryTransactor_Rollback(t *testing.T) {
	ctx := context.Background()
	repo := seedMemory(t, newTestMovie("Ghostbusters", "Comedy"))

	errBoom := errors.New("boom")
	err := repo.Tx.WithTx(ctx, func(tx *Repository) error {
		if err := tx.Movie.Create(ctx, newTestMovie("Ghostbusters 2", "Comedy")); err != nil {
			return err
		}
		if err := tx.Movie.Delete(ctx, 1); err != nil {
			return err
		}

		// writes are visible inside the transaction
		movies, _ := tx.Movie.FindAll(ctx, MovieFilter{})
		if len(movies) != 1 || movies[0].Title != "Ghostbusters 2" {
			t.Errorf("inside tx FindAll() = %v", movies)
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("WithTx() error = %v, want errBoom", err)
	}

	movies, _ := repo.Movie.FindAll(ctx, MovieFilter{})
	if len(movies) != 1 || movies[0].Title != "Ghostbusters" {
		t.Errorf("after rollback FindAll() = %v, want only Ghostbusters", movies)
	}

	// ids handed out in a rolled back tx are reused
	next := newTestMovie("Rio Bravo", "Western")
	if err := repo.Movie.Create(ctx, next); err != nil {
		t.Fatal(err)
	}
	if next.ID != 2 {
		t.Errorf("next id = %d, want 2", next.ID)
	}
}

func TestMemoryTransactor_Commit(t *testing.T) {
	ctx := context.Background()
	repo := seedMemory(t)

	err := repo.Tx.WithTx(ctx, func(tx *Repository) error {
		// nested units join the outer transaction
		return tx.Tx.WithTx(ctx, func(inner *Repository) error {
			return inner.Movie.Create(ctx, newTestMovie("Ghostbusters", "Comedy"))
		})
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	if exists, _ := repo.Movie.Exists(ctx, 1); !exists {
		t.Error("committed movie not visible")
	}
}

func TestMemoryMovieRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := seedMemory(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Tx.WithTx(ctx, func(tx *Repository) error {
				return tx.Movie.Create(ctx, newTestMovie("Ghostbusters", "Comedy"))
			})
			_, _ = repo.Movie.FindAll(ctx, MovieFilter{Genre: "Comedy"})
		}()
	}
	wg.Wait()

	movies, _ := repo.Movie.FindAll(ctx, MovieFilter{})
	if len(movies) != 20 {
		t.Fatalf("FindAll() returned %d movies, want 20", len(movies))
	}
	for i, movie := range movies {
		if movie.ID != int64(i+1) {
			t.Errorf("movies[%d].ID = %d, ids must be unique and dense", i, movie.ID)
		}
	}
}
