package adaptor

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"movie-catalog/internal/dto/request"

	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

// isFormPost reports whether the body is an HTML form post rather than JSON.
func isFormPost(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

// bindMovieRequest fills only the allowlisted fields from a JSON or form body.
func bindMovieRequest(w http.ResponseWriter, r *http.Request, req *request.MovieRequest) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if !isFormPost(r) {
		return json.NewDecoder(r.Body).Decode(req)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	bindMovieForm(r, req)
	return nil
}

// bindMovieEditRequest is bindMovieRequest plus the id and version fields.
func bindMovieEditRequest(w http.ResponseWriter, r *http.Request, req *request.MovieEditRequest) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if !isFormPost(r) {
		return json.NewDecoder(r.Body).Decode(req)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	bindMovieForm(r, &req.MovieRequest)
	req.ID, _ = strconv.ParseInt(strings.TrimSpace(r.PostForm.Get("id")), 10, 64)
	version, _ := strconv.ParseInt(strings.TrimSpace(r.PostForm.Get("version")), 10, 32)
	req.Version = int32(version)
	return nil
}

// Unparsable numbers are left at zero so validation reports them.
func bindMovieForm(r *http.Request, req *request.MovieRequest) {
	req.Title = r.PostForm.Get("title")
	req.ReleaseDate = r.PostForm.Get("release_date")
	req.Genre = r.PostForm.Get("genre")
	req.Rating = r.PostForm.Get("rating")
	req.Price, _ = strconv.ParseFloat(strings.TrimSpace(r.PostForm.Get("price")), 64)
}
