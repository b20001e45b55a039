package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate string    `json:"release_date"`
	Genre       string    `json:"genre"`
	Price       float64   `json:"price"`
	Rating      string    `json:"rating,omitempty"`
	Version     int32     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieFormResponse is the model behind the create and edit forms: the
// current values (empty for create) and the fields a client may post.
type MovieFormResponse struct {
	Movie  *MovieResponse `json:"movie,omitempty"`
	Fields []FormField    `json:"fields"`
}

type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Rule     string `json:"rule,omitempty"`
}

// MovieFormFields lists the allowlisted fields in form order.
var MovieFormFields = []FormField{
	{Name: "title", Type: "text", Required: true, Rule: "3-60 characters"},
	{Name: "release_date", Type: "date", Required: true, Rule: "YYYY-MM-DD"},
	{Name: "genre", Type: "text", Required: true, Rule: "max 30, capitalised letters"},
	{Name: "price", Type: "currency", Required: true, Rule: "1-100"},
	{Name: "rating", Type: "text", Required: false, Rule: "max 5, capitalised letters"},
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		ReleaseDate: movie.ReleaseDate.Format(entity.DateLayout),
		Genre:       movie.Genre,
		Price:       movie.Price,
		Rating:      movie.Rating,
		Version:     movie.Version,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}

func MovieToFormResponse(movie *entity.Movie) MovieFormResponse {
	form := MovieFormResponse{Fields: MovieFormFields}
	if movie != nil {
		resp := MovieToResponse(movie)
		form.Movie = &resp
	}
	return form
}
