package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Paths are registered lower-case; middleware.LowerPath folds the request
// path before matching.
func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		// GET /Movies[/Index[/{id}]] - list with genre and title filters
		r.Get("/", movieHandler.Index)
		r.Get("/index", movieHandler.Index)
		r.Get("/index/{id}", movieHandler.Index)

		// A missing id segment still reaches the handler and yields 404
		r.Get("/details", movieHandler.Details)
		r.Get("/details/{id}", movieHandler.Details)

		r.Get("/create", movieHandler.CreateForm)
		r.Post("/create", movieHandler.Create)

		r.Get("/edit", movieHandler.EditForm)
		r.Get("/edit/{id}", movieHandler.EditForm)
		r.Post("/edit", movieHandler.Edit)
		r.Post("/edit/{id}", movieHandler.Edit)

		r.Get("/delete", movieHandler.DeleteConfirm)
		r.Get("/delete/{id}", movieHandler.DeleteConfirm)
		r.Post("/delete", movieHandler.DeleteConfirmed)
		r.Post("/delete/{id}", movieHandler.DeleteConfirmed)
	})
}
