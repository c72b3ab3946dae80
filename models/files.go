package models

import (
	"slices"
)

// FileID identifies a binary attachment referenced by scene elements.
type FileID string

// MimeTypeBinary is the fallback mime type for attachments stored without one.
const MimeTypeBinary = "application/octet-stream"

// FileUpload is one attachment in a save batch. Data is the already
// compressed and encrypted payload produced by the client.
type FileUpload struct {
	ID   FileID `json:"id"`
	Data []byte `json:"data"`
}

// FileMetadata is stored encrypted alongside the attachment bytes.
type FileMetadata struct {
	MimeType string `json:"mimeType,omitempty"`
	Created  int64  `json:"created,omitempty"`
}

// FileRecord is a decrypted attachment returned by a load batch.
type FileRecord struct {
	ID       FileID `json:"id"`
	MimeType string `json:"mime_type"`
	DataURL  string `json:"data_url"`
	Created  int64  `json:"created"`
}

// FileIDSet is a set of attachment ids.
type FileIDSet map[FileID]struct{}

// Add inserts id into the set.
func (s FileIDSet) Add(id FileID) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s FileIDSet) Has(id FileID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the set members in ascending order.
func (s FileIDSet) Sorted() []FileID {
	ids := make([]FileID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// FileSaveResult partitions a save batch into stored and failed ids.
type FileSaveResult struct {
	Saved   FileIDSet
	Errored FileIDSet
}

// FileLoadResult holds the attachments that were loaded and the ids that
// were missing or could not be decrypted.
type FileLoadResult struct {
	Loaded  []FileRecord
	Errored FileIDSet
}
