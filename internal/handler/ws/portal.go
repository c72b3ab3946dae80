// Package ws implements the websocket portal of the scene store. Every
// socket is one connection in the version cache: its scene version is
// remembered while the socket is open and forgotten when it closes.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/app"
	"github.com/MKhiriev/scene-keeper/internal/cache"
	"github.com/MKhiriev/scene-keeper/internal/crypto"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/service"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	roomKeyHeader      = "X-Room-Key"
	connectionIDHeader = "X-Connection-ID"

	defaultWriteWait = 10 * time.Second
	defaultPongWait  = 60 * time.Second

	// maxMessageBytes bounds a single inbound frame.
	maxMessageBytes = 32 << 20
)

// Portal upgrades room requests to websockets and serves the save, load
// and is-saved messages over them.
type Portal struct {
	scenes   service.SceneService
	upgrader websocket.Upgrader
	ids      *utils.UUIDGenerator

	writeWait time.Duration
	pongWait  time.Duration

	logger *logger.Logger
}

func NewPortal(scenes service.SceneService, logger *logger.Logger) *Portal {
	return &Portal{
		scenes: scenes,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		ids:       utils.NewUUIDGenerator(),
		writeWait: defaultWriteWait,
		pongWait:  defaultPongWait,
		logger:    logger,
	}
}

// ServeHTTP expects the {roomID} route parameter and the X-Room-Key header.
// The connection id is returned in the X-Connection-ID handshake header.
func (p *Portal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	room := models.RoomIdentity{
		RoomID:  chi.URLParam(r, "roomID"),
		RoomKey: r.Header.Get(roomKeyHeader),
	}
	if room.RoomKey == "" {
		utils.WriteError(w, app.MsgMissingRoomKey, http.StatusBadRequest)
		return
	}

	connID := p.ids.ConnectionID()

	conn, err := p.upgrader.Upgrade(w, r, http.Header{connectionIDHeader: {string(connID)}})
	if err != nil {
		// the upgrader has already answered the request
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Portal.ServeHTTP").Msg("websocket upgrade failed")
		return
	}

	log := p.logger.WithRoom(room.RoomID)
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("connection_id", string(connID))
	})

	ctx, cancel := context.WithCancel(log.WithContext(context.WithoutCancel(r.Context())))
	defer cancel()

	log.Info().Str("func", "*Portal.ServeHTTP").Msg("connection opened")

	s := &session{
		portal: p,
		conn:   conn,
		room:   room,
		connID: connID,
		log:    log,
	}
	s.run(ctx)

	p.scenes.ForgetConnection(connID)
	log.Info().Str("func", "*Portal.ServeHTTP").Msg("connection closed")
}

// session is one open socket. Only run writes data frames; the pinger
// goroutine uses WriteControl, which is safe to call concurrently.
type session struct {
	portal *Portal
	conn   *websocket.Conn
	room   models.RoomIdentity
	connID models.ConnectionID
	log    *logger.Logger
}

func (s *session) run(ctx context.Context) {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageBytes)
	_ = s.conn.SetReadDeadline(time.Now().Add(s.portal.pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.portal.pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go s.ping(done)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn().Err(err).Str("func", "*session.run").Msg("connection dropped")
			}
			return
		}

		var msg models.PortalMessage
		if err = json.Unmarshal(data, &msg); err != nil {
			s.log.Debug().Err(err).Str("func", "*session.run").Msg("invalid message")
			if !s.reply(models.PortalMessage{Type: models.PortalError, Error: app.MsgInvalidMessage}) {
				return
			}
			continue
		}

		if !s.reply(s.handle(ctx, msg)) {
			return
		}
	}
}

func (s *session) handle(ctx context.Context, msg models.PortalMessage) models.PortalMessage {
	switch msg.Type {
	case models.PortalSave:
		result, err := s.portal.scenes.Save(ctx, s.room, s.connID, msg.Elements, msg.MergeContext)
		if err != nil {
			s.log.Err(err).Str("func", "*session.handle").Msg("failed to save scene")
			return models.PortalMessage{Type: models.PortalError, Error: publicError(err)}
		}
		if result.Status == models.SaveStatusNotModified {
			return models.PortalMessage{Type: models.PortalNotModified}
		}
		return models.PortalMessage{
			Type:         models.PortalSaved,
			SceneVersion: result.SceneVersion,
			Elements:     result.ReconciledElements,
		}

	case models.PortalLoad:
		elements, err := s.portal.scenes.Load(ctx, s.room, s.connID)
		if err != nil {
			s.log.Err(err).Str("func", "*session.handle").Msg("failed to load scene")
			return models.PortalMessage{Type: models.PortalError, Error: publicError(err)}
		}
		return models.PortalMessage{Type: models.PortalScene, Elements: elements}

	case models.PortalIsSaved:
		saved := s.portal.scenes.IsSaved(cache.NewPortal(s.room, s.connID), msg.Elements)
		return models.PortalMessage{Type: models.PortalStatus, Saved: saved}

	default:
		return models.PortalMessage{Type: models.PortalError, Error: app.MsgUnknownMessageType}
	}
}

// reply writes msg and reports whether the socket is still usable.
func (s *session) reply(msg models.PortalMessage) bool {
	data, err := models.EncodeJSON(msg)
	if err != nil {
		s.log.Err(err).Str("func", "*session.reply").Msg("failed to encode reply")
		return false
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(s.portal.writeWait))
	if err = s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.log.Debug().Err(err).Str("func", "*session.reply").Msg("write failed")
		return false
	}
	return true
}

func (s *session) ping(done <-chan struct{}) {
	ticker := time.NewTicker(s.portal.pongWait * 9 / 10)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(s.portal.writeWait)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// publicError hides storage details from clients.
func publicError(err error) string {
	switch {
	case errors.Is(err, crypto.ErrDecryption):
		return crypto.ErrDecryption.Error()
	case errors.Is(err, service.ErrInvalidDataProvided):
		return err.Error()
	case errors.Is(err, service.ErrSaveFailed):
		return service.ErrSaveFailed.Error()
	case errors.Is(err, service.ErrLoadFailed):
		return service.ErrLoadFailed.Error()
	default:
		return app.MsgInternalError
	}
}
