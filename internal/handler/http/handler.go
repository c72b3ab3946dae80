package http

import (
	"net/http"

	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/service"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/internal/validators"
)

const (
	roomKeyHeader      = "X-Room-Key"
	connectionIDHeader = "X-Connection-ID"

	// maxBodyBytes bounds JSON request bodies. Attachment batches dominate.
	maxBodyBytes = 64 << 20
)

type Handler struct {
	services *service.Services
	tokens   config.App
	portal   http.Handler
	ids      *utils.UUIDGenerator

	// validator checks file batches; scene requests are validated by the
	// scene service wrapper.
	validator validators.Validator

	logger *logger.Logger
}

// NewHandler builds the REST handler. portal serves websocket upgrades at
// /api/rooms/{roomID}/ws and may be nil. Room tokens are enforced when
// tokens.TokenSignKey is set.
func NewHandler(services *service.Services, tokens config.App, portal http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Bool("room_tokens", tokens.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services:  services,
		tokens:    tokens,
		portal:    portal,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewSceneValidator(),
		logger:    logger,
	}
}
