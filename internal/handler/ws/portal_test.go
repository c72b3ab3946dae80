package ws

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/cache"
	"github.com/MKhiriev/scene-keeper/internal/crypto"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/mock"
	"github.com/MKhiriev/scene-keeper/internal/service"
	"github.com/MKhiriev/scene-keeper/internal/store"
	"github.com/MKhiriev/scene-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testRoom    = "room-1"
	testRoomKey = "AAECAwQFBgcICQoLDA0ODw"
)

var testRoomIdentity = models.RoomIdentity{RoomID: testRoom, RoomKey: testRoomKey}

func newTestServer(t *testing.T) (*httptest.Server, *mock.MockSceneService) {
	t.Helper()
	scenes := mock.NewMockSceneService(gomock.NewController(t))

	router := chi.NewRouter()
	router.Get("/api/rooms/{roomID}/ws", NewPortal(scenes, logger.Nop()).ServeHTTP)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, scenes
}

// dial opens a socket and returns its connection id. Closing the socket is
// registered as cleanup and waits for the portal to forget the connection.
func dial(t *testing.T, srv *httptest.Server, scenes *mock.MockSceneService) (*websocket.Conn, models.ConnectionID) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/rooms/" + testRoom + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, http.Header{roomKeyHeader: {testRoomKey}})
	require.NoError(t, err)

	connID := models.ConnectionID(resp.Header.Get(connectionIDHeader))
	require.NotEmpty(t, connID)

	// the portal forgets a connection only after its socket closes, so the
	// expectation can be bound to this exact id
	forgotten := make(chan models.ConnectionID, 1)
	scenes.EXPECT().ForgetConnection(connID).Do(func(connID models.ConnectionID) {
		forgotten <- connID
	})

	t.Cleanup(func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		conn.Close()

		select {
		case got := <-forgotten:
			assert.Equal(t, connID, got)
		case <-time.After(5 * time.Second):
			t.Error("connection was not forgotten")
		}
	})

	return conn, connID
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg any) models.PortalMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.WriteJSON(msg))

	var reply models.PortalMessage
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestPortal_Save(t *testing.T) {
	srv, scenes := newTestServer(t)
	conn, connID := dial(t, srv, scenes)

	reconciled := models.Elements{{ID: "a", Version: 3}, {ID: "b", Version: 1}}
	mctx := models.MergeContext{DraggingElementID: "a"}

	scenes.EXPECT().Save(gomock.Any(), testRoomIdentity, connID, gomock.Any(), mctx).
		DoAndReturn(func(_ context.Context, _ models.RoomIdentity, _ models.ConnectionID, elements models.Elements, _ models.MergeContext) (models.SaveResult, error) {
			if assert.Len(t, elements, 1) {
				assert.Equal(t, "a", elements[0].ID)
			}
			return models.SaveResult{Status: models.SaveStatusSaved, SceneVersion: 4, ReconciledElements: reconciled}, nil
		})

	reply := roundTrip(t, conn, models.PortalMessage{
		Type:         models.PortalSave,
		Elements:     models.Elements{{ID: "a", Version: 3}},
		MergeContext: mctx,
	})

	assert.Equal(t, models.PortalSaved, reply.Type)
	assert.Equal(t, int64(4), reply.SceneVersion)
	require.Len(t, reply.Elements, 2)
	assert.Equal(t, "b", reply.Elements[1].ID)
}

func TestPortal_SaveNotModified(t *testing.T) {
	srv, scenes := newTestServer(t)
	conn, _ := dial(t, srv, scenes)

	scenes.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SaveResult{Status: models.SaveStatusNotModified}, nil)

	reply := roundTrip(t, conn, models.PortalMessage{Type: models.PortalSave})

	assert.Equal(t, models.PortalNotModified, reply.Type)
}

func TestPortal_SaveFailureHidesDetails(t *testing.T) {
	srv, scenes := newTestServer(t)
	conn, _ := dial(t, srv, scenes)

	scenes.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SaveResult{}, fmt.Errorf("%w: %w: dial tcp 10.1.1.1:27017", service.ErrSaveFailed, store.ErrConnecting))

	reply := roundTrip(t, conn, models.PortalMessage{Type: models.PortalSave})

	assert.Equal(t, models.PortalError, reply.Type)
	assert.Equal(t, service.ErrSaveFailed.Error(), reply.Error)
}

func TestPortal_Load(t *testing.T) {
	srv, scenes := newTestServer(t)
	conn, connID := dial(t, srv, scenes)

	scenes.EXPECT().Load(gomock.Any(), testRoomIdentity, connID).
		Return(models.Elements{{ID: "x", Version: 1}}, nil)

	reply := roundTrip(t, conn, models.PortalMessage{Type: models.PortalLoad})

	assert.Equal(t, models.PortalScene, reply.Type)
	require.Len(t, reply.Elements, 1)
	assert.Equal(t, "x", reply.Elements[0].ID)
}

func TestPortal_LoadWrongKey(t *testing.T) {
	srv, scenes := newTestServer(t)
	conn, _ := dial(t, srv, scenes)

	scenes.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", service.ErrLoadFailed, crypto.ErrDecryption))

	reply := roundTrip(t, conn, models.PortalMessage{Type: models.PortalLoad})

	assert.Equal(t, models.PortalError, reply.Type)
	assert.Equal(t, crypto.ErrDecryption.Error(), reply.Error)
}

func TestPortal_IsSaved(t *testing.T) {
	srv, scenes := newTestServer(t)
	conn, connID := dial(t, srv, scenes)

	scenes.EXPECT().IsSaved(gomock.Any(), gomock.Any()).
		DoAndReturn(func(portal cache.Portal, _ models.Elements) bool {
			assert.Equal(t, connID, portal.ConnectionID())
			assert.Equal(t, testRoom, portal.RoomID())
			assert.Equal(t, testRoomKey, portal.RoomKey())
			return true
		})

	reply := roundTrip(t, conn, models.PortalMessage{Type: models.PortalIsSaved, Elements: models.Elements{{ID: "a"}}})

	assert.Equal(t, models.PortalStatus, reply.Type)
	assert.True(t, reply.Saved)
}

func TestPortal_BadMessagesKeepSocketOpen(t *testing.T) {
	srv, scenes := newTestServer(t)
	conn, _ := dial(t, srv, scenes)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":`)))
	var reply models.PortalMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, models.PortalError, reply.Type)
	assert.Equal(t, "invalid message", reply.Error)

	reply = roundTrip(t, conn, models.PortalMessage{Type: "subscribe"})
	assert.Equal(t, models.PortalError, reply.Type)
	assert.Equal(t, "unknown message type", reply.Error)

	scenes.EXPECT().IsSaved(gomock.Any(), gomock.Any()).Return(false)
	reply = roundTrip(t, conn, models.PortalMessage{Type: models.PortalIsSaved})
	assert.Equal(t, models.PortalStatus, reply.Type)
	assert.False(t, reply.Saved)
}

func TestPortal_DistinctConnections(t *testing.T) {
	srv, scenes := newTestServer(t)
	_, first := dial(t, srv, scenes)
	_, second := dial(t, srv, scenes)
	_, third := dial(t, srv, scenes)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)
	assert.NotEqual(t, first, third)
}

func TestPortal_ClosingForgetsOnlyThatConnection(t *testing.T) {
	srv, scenes := newTestServer(t)
	first, firstID := dial(t, srv, scenes)
	second, secondID := dial(t, srv, scenes)
	require.NotEqual(t, firstID, secondID)

	require.NoError(t, first.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second)))
	first.Close()

	scenes.EXPECT().IsSaved(gomock.Any(), gomock.Any()).
		DoAndReturn(func(portal cache.Portal, _ models.Elements) bool {
			assert.Equal(t, secondID, portal.ConnectionID())
			return false
		})

	reply := roundTrip(t, second, models.PortalMessage{Type: models.PortalIsSaved})
	assert.Equal(t, models.PortalStatus, reply.Type)
	assert.False(t, reply.Saved)
}

func TestPortal_MissingRoomKey(t *testing.T) {
	srv, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/rooms/" + testRoom + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
