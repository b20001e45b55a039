package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MoviesIndexPath is where successful writes redirect to.
const MoviesIndexPath = "/Movies"

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// Index handles GET /Movies?movieGenre=&searchString=
func (h *MovieHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := request.MovieFilter{
		Genre:  query.Get("movieGenre"),
		Search: query.Get("searchString"),
	}
	// /Movies/Index/{id} and ?id= both carry the search text
	if filter.Search == "" {
		filter.Search = chi.URLParam(r, "id")
	}
	if filter.Search == "" {
		filter.Search = query.Get("id")
	}

	movies, err := h.service.GetMovies(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// Details handles GET /Movies/Details/{id}
func (h *MovieHandler) Details(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// CreateForm handles GET /Movies/Create
func (h *MovieHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Create movie", response.MovieToFormResponse(nil))
}

// Create handles POST /Movies/Create
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := bindMovieRequest(w, r, &req); err != nil {
		h.log.Warn("Invalid create movie body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseRedirect(w, MoviesIndexPath, "Movie created successfully", movie)
}

// EditForm handles GET /Movies/Edit/{id}
func (h *MovieHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get movie for edit")
		return
	}

	form := response.MovieFormResponse{Movie: movie, Fields: response.MovieFormFields}
	utils.ResponseSuccess(w, "Edit movie", form)
}

// Edit handles POST /Movies/Edit/{id}
func (h *MovieHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req request.MovieEditRequest
	if err := bindMovieEditRequest(w, r, &req); err != nil {
		h.log.Warn("Invalid edit movie body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseRedirect(w, MoviesIndexPath, "Movie updated successfully", movie)
}

// DeleteConfirm handles GET /Movies/Delete/{id}. It only reads.
func (h *MovieHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get movie for delete")
		return
	}

	utils.ResponseSuccess(w, "Are you sure you want to delete this movie?", movie)
}

// DeleteConfirmed handles POST /Movies/Delete/{id}
func (h *MovieHandler) DeleteConfirmed(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseRedirect(w, MoviesIndexPath, "Movie deleted successfully", movie)
}

// handleServiceError maps service errors onto responses
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseValidationFailed(w, validationErr.Payload, validationErr.Fields)

	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrEditConflict):
		h.log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, "The movie was changed by someone else, reload it and try again")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
