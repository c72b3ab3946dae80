package http

import (
	"net/http"

	"github.com/MKhiriev/scene-keeper/internal/cache"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/models"
)

// loadScene answers 404 when the room has no scene yet.
func (h *Handler) loadScene(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	room := roomFromRequest(r)
	if room.RoomKey == "" {
		writeError(w, ErrMissingRoomKey)
		return
	}

	connID, _ := utils.GetConnectionIDFromContext(r.Context())

	elements, err := h.services.SceneService.Load(r.Context(), room, connID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.loadScene").Msg("failed to load scene")
		writeError(w, err)
		return
	}
	if elements == nil {
		writeError(w, ErrSceneNotFound)
		return
	}

	utils.WriteJSON(w, models.SceneResponse{RoomID: room.RoomID, Elements: elements}, http.StatusOK)
}

// saveScene answers 204 when the scene is already persisted for the
// connection and 200 with the save result otherwise.
func (h *Handler) saveScene(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	room := roomFromRequest(r)
	if room.RoomKey == "" {
		writeError(w, ErrMissingRoomKey)
		return
	}

	var req models.SaveSceneRequest
	if err := utils.ReadJSON(r, &req, maxBodyBytes); err != nil {
		log.Err(err).Str("func", "*Handler.saveScene").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	connID, _ := utils.GetConnectionIDFromContext(r.Context())

	result, err := h.services.SceneService.Save(r.Context(), room, connID, req.Elements, req.MergeContext)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveScene").Msg("failed to save scene")
		writeError(w, err)
		return
	}

	if result.Status == models.SaveStatusNotModified {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) sceneSaved(w http.ResponseWriter, r *http.Request) {
	var req models.SceneSavedRequest
	if err := utils.ReadJSON(r, &req, maxBodyBytes); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.sceneSaved").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	connID, _ := utils.GetConnectionIDFromContext(r.Context())
	saved := h.services.SceneService.IsSaved(cache.NewPortal(roomFromRequest(r), connID), req.Elements)

	utils.WriteJSON(w, models.SceneSavedResponse{Saved: saved}, http.StatusOK)
}
