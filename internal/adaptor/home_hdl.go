package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type HomeHandler struct {
	appName string
	log     *zap.Logger
}

func NewHomeHandler(appName string, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		appName: appName,
		log:     log.With(zap.String("handler", "home")),
	}
}

// Index handles GET / and /Home/Index
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Welcome", response.HomeResponse{
		App: h.appName,
		Links: []response.Link{
			{Rel: "movies", Href: MoviesIndexPath},
			{Rel: "create", Href: MoviesIndexPath + "/Create"},
		},
	})
}

// HelloIndex handles GET /HelloWorld
func (h *HomeHandler) HelloIndex(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "This is my default action...", nil)
}

// Welcome handles GET /HelloWorld/Welcome?name=&numTimes=
func (h *HomeHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	utils.ResponseSuccess(w, "Welcome", response.WelcomeResponse{
		Message:  "Hello " + query.Get("name"),
		NumTimes: utils.ParseInt(query.Get("numTimes"), 1),
	})
}
