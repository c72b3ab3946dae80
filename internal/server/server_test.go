package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/handler"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/mock"
	"github.com/MKhiriev/scene-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(t *testing.T) (*handler.Handlers, *mock.MockAppInfoService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	info := mock.NewMockAppInfoService(ctrl)

	handlers, err := handler.NewHandlers(&service.Services{
		SceneService:   mock.NewMockSceneService(ctrl),
		FileService:    mock.NewMockFileService(ctrl),
		AppInfoService: info,
	}, config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}, logger.Nop())
	require.NoError(t, err)

	return handlers, info
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers, _ := newTestHandlers(t)

	s, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHTTPServer)
	assert.Nil(t, s)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	handlers, info := newTestHandlers(t)
	info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	info.EXPECT().GetStoreBackend(gomock.Any()).Return("memory")

	s, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	var addr net.Addr
	require.Eventually(t, func() bool {
		addr = s.(*server).httpServer.listenAddr()
		return addr != nil
	}, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + addr.String() + "/api/version/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	handlers, _ := newTestHandlers(t)
	s, err := NewServer(handlers, config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())
	assert.Error(t, err)
}
