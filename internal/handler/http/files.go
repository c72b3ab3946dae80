package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/service"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/models"
)

// saveFiles stores a batch of already encrypted attachments. The batch
// never fails as a whole; per-file failures are listed in "errored".
func (h *Handler) saveFiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SaveFilesRequest
	if err := utils.ReadJSON(r, &req, maxBodyBytes); err != nil {
		log.Err(err).Str("func", "*Handler.saveFiles").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.saveFiles").Msg("invalid file batch")
		writeError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	result := h.services.FileService.SaveFiles(r.Context(), req.Prefix, req.Files)

	utils.WriteJSON(w, models.SaveFilesResponse{
		Saved:   result.Saved.Sorted(),
		Errored: result.Errored.Sorted(),
	}, http.StatusOK)
}

// loadFiles decrypts a batch of attachments with the X-Room-Key header.
func (h *Handler) loadFiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key := r.Header.Get(roomKeyHeader)
	if key == "" {
		writeError(w, ErrMissingRoomKey)
		return
	}

	var req models.LoadFilesRequest
	if err := utils.ReadJSON(r, &req, maxBodyBytes); err != nil {
		log.Err(err).Str("func", "*Handler.loadFiles").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.loadFiles").Msg("invalid file batch")
		writeError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	result := h.services.FileService.LoadFiles(r.Context(), req.Prefix, key, req.IDs)

	loaded := result.Loaded
	if loaded == nil {
		loaded = []models.FileRecord{}
	}
	utils.WriteJSON(w, models.LoadFilesResponse{
		Loaded:  loaded,
		Errored: result.Errored.Sorted(),
	}, http.StatusOK)
}
