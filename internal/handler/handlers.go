package handler

import (
	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/handler/http"
	"github.com/MKhiriev/scene-keeper/internal/handler/ws"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/service"
)

type Handlers struct {
	HTTP   *http.Handler
	Portal *ws.Portal
}

// NewHandlers builds the REST handler with the websocket portal mounted on
// it.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	portal := ws.NewPortal(services.SceneService, logger)

	return &Handlers{
		HTTP:   http.NewHandler(services, cfg.App, portal, logger),
		Portal: portal,
	}, nil
}
