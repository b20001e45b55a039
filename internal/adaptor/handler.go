package adaptor

import (
	"movie-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Home  *HomeHandler
	Movie *MovieHandler
}

func NewHandler(service *usecase.Service, appName string, log *zap.Logger) *Handler {
	return &Handler{
		Home:  NewHomeHandler(appName, log),
		Movie: NewMovieHandler(service.Movie, log),
	}
}
