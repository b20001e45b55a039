package request

// MovieRequest is the create allowlist. ID and version are assigned by the
// store and cannot be posted.
type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=60"`
	ReleaseDate string  `json:"release_date" validate:"required,datetime=2006-01-02"`
	Genre       string  `json:"genre" validate:"required,max=30,catalogtext"`
	Price       float64 `json:"price" validate:"gte=1,lte=100"`
	Rating      string  `json:"rating" validate:"omitempty,max=5,catalogtext"`
}

// MovieEditRequest is a whole-record replacement. ID must match the path and
// Version must be the one the client read.
type MovieEditRequest struct {
	ID      int64 `json:"id"`
	Version int32 `json:"version" validate:"required,gte=1"`
	MovieRequest
}

// MovieFilter carries the optional list filters. Empty means "no filter".
type MovieFilter struct {
	Genre  string `json:"movie_genre"`
	Search string `json:"search_string"`
}
