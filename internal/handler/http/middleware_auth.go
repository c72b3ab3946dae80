package http

import (
	"net/http"

	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// roomAuth enforces room tokens when a sign key is configured.
//
// The bearer token must verify against the sign key and issuer. On room
// routes its subject must equal {roomID}; file routes accept any valid room
// token. The authorized room id is stored under [utils.RoomIDCtxKey].
func (h *Handler) roomAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.tokens.TokenSignKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.roomAuth").Send()
			writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.roomAuth").Send()
			writeError(w, err)
			return
		}

		token, err := utils.ValidateAndParseRoomToken(tokenString, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.roomAuth").Msg("room token rejected")
			writeError(w, err)
			return
		}

		if roomID := chi.URLParam(r, "roomID"); roomID != "" && roomID != token.RoomID {
			log.Warn().Str("func", "*Handler.roomAuth").
				Str("room_id", roomID).
				Str("token_room_id", token.RoomID).
				Msg("token issued for another room")
			writeError(w, ErrRoomNotAuthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithRoomID(r.Context(), token.RoomID)))
	})
}
