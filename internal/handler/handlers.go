package handler

import (
	"errors"

	"github.com/akarpov/messagely/internal/config"
	"github.com/akarpov/messagely/internal/handler/http"
	"github.com/akarpov/messagely/internal/logger"
	"github.com/akarpov/messagely/internal/service"
)

var errNoHandlersAreCreated = errors.New("no handlers are created")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
