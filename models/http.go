package models

// SaveSceneRequest is the body of a scene save request.
type SaveSceneRequest struct {
	Elements     Elements     `json:"elements"`
	MergeContext MergeContext `json:"merge_context"`
}

// SceneResponse is returned by a scene load.
type SceneResponse struct {
	RoomID   string   `json:"room_id"`
	Elements Elements `json:"elements"`
}

// SceneSavedRequest asks whether the given elements are already persisted
// for the calling connection.
type SceneSavedRequest struct {
	Elements Elements `json:"elements"`
}

// SceneSavedResponse answers a [SceneSavedRequest].
type SceneSavedResponse struct {
	Saved bool `json:"saved"`
}

// SaveFilesRequest is the body of an attachment save batch.
type SaveFilesRequest struct {
	Prefix string       `json:"prefix"`
	Files  []FileUpload `json:"files"`
}

// SaveFilesResponse lists the stored and failed attachment ids.
type SaveFilesResponse struct {
	Saved   []FileID `json:"saved"`
	Errored []FileID `json:"errored"`
}

// LoadFilesRequest is the body of an attachment load batch.
type LoadFilesRequest struct {
	Prefix string   `json:"prefix"`
	IDs    []FileID `json:"ids"`
}

// LoadFilesResponse carries decrypted attachments and the ids that failed.
type LoadFilesResponse struct {
	Loaded  []FileRecord `json:"loaded"`
	Errored []FileID     `json:"errored"`
}

// PortalMessage is a websocket frame exchanged with a collaborating client.
type PortalMessage struct {
	Type         string       `json:"type"`
	Elements     Elements     `json:"elements,omitempty"`
	MergeContext MergeContext `json:"merge_context,omitempty"`
	SceneVersion int64        `json:"scene_version,omitempty"`
	Saved        bool         `json:"saved,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// Portal message types.
const (
	PortalSave        = "save"
	PortalLoad        = "load"
	PortalIsSaved     = "is-saved"
	PortalSaved       = "saved"
	PortalNotModified = "not-modified"
	PortalScene       = "scene"
	PortalStatus      = "status"
	PortalError       = "error"
)

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Store   string `json:"store"`
}
