package response

// MovieGenreResponse is the list view: the filtered movies, the genre
// selector values and the filters that produced them.
type MovieGenreResponse struct {
	Movies       []MovieResponse `json:"movies"`
	Genres       []string        `json:"genres"`
	MovieGenre   string          `json:"movie_genre,omitempty"`
	SearchString string          `json:"search_string,omitempty"`
}

func NewMovieGenreResponse(movies []MovieResponse, genres []string, movieGenre, searchString string) *MovieGenreResponse {
	if movies == nil {
		movies = []MovieResponse{}
	}
	if genres == nil {
		genres = []string{}
	}

	return &MovieGenreResponse{
		Movies:       movies,
		Genres:       genres,
		MovieGenre:   movieGenre,
		SearchString: searchString,
	}
}
