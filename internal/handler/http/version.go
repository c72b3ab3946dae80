package http

import (
	"net/http"

	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	utils.WriteJSON(w, models.VersionResponse{
		Version: info.GetAppVersion(r.Context()),
		Store:   info.GetStoreBackend(r.Context()),
	}, http.StatusOK)
}
