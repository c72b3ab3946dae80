package http

import (
	"net/http"

	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// withConnectionID identifies the caller for the version cache. Clients that
// keep a session send X-Connection-ID; everyone else gets a fresh id per
// request, echoed back so it can be reused.
func (h *Handler) withConnectionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		connID := models.ConnectionID(r.Header.Get(connectionIDHeader))
		if connID == "" {
			connID = h.ids.ConnectionID()
		}
		w.Header().Set(connectionIDHeader, string(connID))

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("room_id", chi.URLParam(r, "roomID")).Str("connection_id", string(connID))
		})

		ctx := utils.WithConnectionID(l.WithContext(r.Context()), connID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// roomFromRequest reads the room identity of a room route.
func roomFromRequest(r *http.Request) models.RoomIdentity {
	return models.RoomIdentity{
		RoomID:  chi.URLParam(r, "roomID"),
		RoomKey: r.Header.Get(roomKeyHeader),
	}
}
