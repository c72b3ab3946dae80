package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/scene-keeper/internal/config"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	roomKeyHeader      = "X-Room-Key"
	connectionIDHeader = "X-Connection-ID"
)

type httpSceneAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	token  string
	connID models.ConnectionID

	logger *logger.Logger
}

// NewHTTPSceneAdapter constructs the REST implementation of [SceneAdapter].
// It normalises cfg.HTTPAddress and configures the client with the resolved
// base URL and request timeout.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed.
func NewHTTPSceneAdapter(cfg config.Adapter, logger *logger.Logger) (SceneAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpSceneAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SceneAdapter].
func (h *httpSceneAdapter) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// ConnectionID implements [SceneAdapter].
func (h *httpSceneAdapter) ConnectionID() models.ConnectionID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.connID
}

// Version implements [SceneAdapter].
func (h *httpSceneAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var out models.VersionResponse
	resp, err := h.request(ctx).
		SetResult(&out).
		Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}
	return out, nil
}

// LoadScene implements [SceneAdapter].
func (h *httpSceneAdapter) LoadScene(ctx context.Context, room models.RoomIdentity) (models.Elements, error) {
	var out models.SceneResponse
	resp, err := h.sceneRequest(ctx, room).
		SetResult(&out).
		Get(scenePath(room.RoomID))
	if err != nil {
		return nil, fmt.Errorf("load scene request: %w", err)
	}
	h.rememberConnection(resp)
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if out.Elements == nil {
		out.Elements = models.Elements{}
	}
	h.logger.Debug().
		Str("room_id", room.RoomID).
		Int("elements", len(out.Elements)).
		Msg("scene loaded")
	return out.Elements, nil
}

// SaveScene implements [SceneAdapter].
func (h *httpSceneAdapter) SaveScene(ctx context.Context, room models.RoomIdentity, req models.SaveSceneRequest) (models.SaveResult, error) {
	var out models.SaveResult
	resp, err := h.sceneRequest(ctx, room).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Put(scenePath(room.RoomID))
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("save scene request: %w", err)
	}
	h.rememberConnection(resp)
	if err = mapHTTPError(resp); err != nil {
		return models.SaveResult{}, err
	}

	if resp.StatusCode() == http.StatusNoContent {
		return models.SaveResult{Status: models.SaveStatusNotModified}, nil
	}
	h.logger.Debug().
		Str("room_id", room.RoomID).
		Str("status", string(out.Status)).
		Int64("scene_version", out.SceneVersion).
		Msg("scene saved")
	return out, nil
}

// IsSaved implements [SceneAdapter].
func (h *httpSceneAdapter) IsSaved(ctx context.Context, room models.RoomIdentity, elements models.Elements) (bool, error) {
	var out models.SceneSavedResponse
	resp, err := h.sceneRequest(ctx, room).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SceneSavedRequest{Elements: elements}).
		SetResult(&out).
		Post(scenePath(room.RoomID) + "/saved")
	if err != nil {
		return false, fmt.Errorf("scene saved request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}
	return out.Saved, nil
}

// SaveFiles implements [SceneAdapter].
func (h *httpSceneAdapter) SaveFiles(ctx context.Context, req models.SaveFilesRequest) (models.SaveFilesResponse, error) {
	var out models.SaveFilesResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/files/save")
	if err != nil {
		return models.SaveFilesResponse{}, fmt.Errorf("save files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveFilesResponse{}, err
	}
	return out, nil
}

// LoadFiles implements [SceneAdapter].
func (h *httpSceneAdapter) LoadFiles(ctx context.Context, key string, req models.LoadFilesRequest) (models.LoadFilesResponse, error) {
	var out models.LoadFilesResponse
	resp, err := h.request(ctx).
		SetHeader(roomKeyHeader, key).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/files/load")
	if err != nil {
		return models.LoadFilesResponse{}, fmt.Errorf("load files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadFilesResponse{}, err
	}
	return out, nil
}

func (h *httpSceneAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpSceneAdapter) sceneRequest(ctx context.Context, room models.RoomIdentity) *resty.Request {
	req := h.request(ctx).SetHeader(roomKeyHeader, room.RoomKey)
	if connID := h.ConnectionID(); connID != "" {
		req.SetHeader(connectionIDHeader, string(connID))
	}
	return req
}

// rememberConnection adopts the connection id assigned by the server on the
// first scene response.
func (h *httpSceneAdapter) rememberConnection(resp *resty.Response) {
	assigned := resp.Header().Get(connectionIDHeader)
	if assigned == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connID == "" {
		h.connID = models.ConnectionID(assigned)
	}
}

func scenePath(roomID string) string {
	return "/api/rooms/" + url.PathEscape(roomID) + "/scene"
}
