package utils

import (
	"strings"
	"testing"
)

type catalogItem struct {
	Title  string  `json:"title" validate:"required,min=3,max=60"`
	Genre  string  `json:"genre" validate:"required,max=30,catalogtext"`
	Price  float64 `json:"price" validate:"gte=1,lte=100"`
	Rating string  `json:"rating" validate:"omitempty,max=5,catalogtext"`
	Date   string  `json:"release_date" validate:"required,datetime=2006-01-02"`
}

func validItem() catalogItem {
	return catalogItem{
		Title:  "When Harry Met Sally",
		Genre:  "Romantic Comedy",
		Price:  7.99,
		Rating: "R",
		Date:   "1989-02-12",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*catalogItem)
		wantField string
	}{
		{name: "valid item", mutate: func(*catalogItem) {}},
		{name: "title of 2 chars", mutate: func(i *catalogItem) { i.Title = "Up" }, wantField: "title"},
		{name: "title of 3 chars", mutate: func(i *catalogItem) { i.Title = "Ran" }},
		{name: "title of 60 chars", mutate: func(i *catalogItem) { i.Title = strings.Repeat("a", 60) }},
		{name: "title of 61 chars", mutate: func(i *catalogItem) { i.Title = strings.Repeat("a", 61) }, wantField: "title"},
		{name: "missing title", mutate: func(i *catalogItem) { i.Title = "" }, wantField: "title"},
		{name: "price 0", mutate: func(i *catalogItem) { i.Price = 0 }, wantField: "price"},
		{name: "price 1", mutate: func(i *catalogItem) { i.Price = 1 }},
		{name: "price 100", mutate: func(i *catalogItem) { i.Price = 100 }},
		{name: "price 101", mutate: func(i *catalogItem) { i.Price = 101 }, wantField: "price"},
		{name: "genre with digit", mutate: func(i *catalogItem) { i.Genre = "Comedy2" }, wantField: "genre"},
		{name: "genre lower-case start", mutate: func(i *catalogItem) { i.Genre = "comedy" }, wantField: "genre"},
		{name: "genre with hyphen and apostrophe", mutate: func(i *catalogItem) { i.Genre = "Sci-Fi Kids'" }},
		{name: "genre of 31 chars", mutate: func(i *catalogItem) { i.Genre = "A" + strings.Repeat("b", 30) }, wantField: "genre"},
		{name: "empty rating", mutate: func(i *catalogItem) { i.Rating = "" }},
		{name: "rating PG", mutate: func(i *catalogItem) { i.Rating = "PG" }},
		{name: "rating with digits", mutate: func(i *catalogItem) { i.Rating = "PG-13" }, wantField: "rating"},
		{name: "rating too long", mutate: func(i *catalogItem) { i.Rating = "NC-17X" }, wantField: "rating"},
		{name: "rating with digit only start", mutate: func(i *catalogItem) { i.Rating = "13" }, wantField: "rating"},
		{name: "bad date", mutate: func(i *catalogItem) { i.Date = "12/02/1989" }, wantField: "release_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)

			errs := ValidateStruct(item)

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
			if len(errs) != 1 {
				t.Errorf("expected only %q to fail, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"title": "This field is required",
		"genre": "Maximum length is 30",
	})

	want := "genre: Maximum length is 30; title: This field is required"
	if got != want {
		t.Errorf("FormatValidationErrors() = %q, want %q", got, want)
	}
}
