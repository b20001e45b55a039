package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHome(r chi.Router, homeHandler *adaptor.HomeHandler) {
	// Default route is Home/Index
	r.Get("/", homeHandler.Index)
	r.Get("/home", homeHandler.Index)
	r.Get("/home/index", homeHandler.Index)

	r.Get("/helloworld", homeHandler.HelloIndex)
	r.Get("/helloworld/index", homeHandler.HelloIndex)
	r.Get("/helloworld/welcome", homeHandler.Welcome)
}
