package repository

import (
	"reflect"
	"testing"
)

func TestBuildFindAllQuery(t *testing.T) {
	base := `SELECT ` + movieColumns + ` FROM movies WHERE 1=1`

	tests := []struct {
		name      string
		filter    MovieFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			wantQuery: base + " ORDER BY id",
			wantArgs:  []any{},
		},
		{
			name:      "title only",
			filter:    MovieFilter{Title: "ghost"},
			wantQuery: base + " AND title ILIKE $1 ORDER BY id",
			wantArgs:  []any{"%ghost%"},
		},
		{
			name:      "genre only",
			filter:    MovieFilter{Genre: "Comedy"},
			wantQuery: base + " AND genre = $1 ORDER BY id",
			wantArgs:  []any{"Comedy"},
		},
		{
			name:      "title and genre",
			filter:    MovieFilter{Title: "ghost", Genre: "Comedy"},
			wantQuery: base + " AND title ILIKE $1 AND genre = $2 ORDER BY id",
			wantArgs:  []any{"%ghost%", "Comedy"},
		},
		{
			name:      "wildcards are literal",
			filter:    MovieFilter{Title: "100%_done"},
			wantQuery: base + " AND title ILIKE $1 ORDER BY id",
			wantArgs:  []any{`%100\%\_done%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildFindAllQuery(tt.filter)

			if query != tt.wantQuery {
				t.Errorf("query = %q, want %q", query, tt.wantQuery)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":  "plain",
		"50%":    `50\%`,
		"a_b":    `a\_b`,
		`back\s`: `back\\s`,
	}

	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
