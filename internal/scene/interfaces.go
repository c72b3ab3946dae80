// Package scene holds the pluggable collaborators the persistence layer
// consults but does not own: how a scene version is derived, how two
// diverged element collections are merged, and how loaded elements are
// normalized.
//
// The defaults mirror the behavior of collaborating drawing clients so that
// a scene merged on the server is identical to one merged in a browser.
package scene

import "github.com/MKhiriev/scene-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/scene_mock.go -package=mock

// Versioner derives a scene version from element content. It must be a pure
// function: structurally equal collections yield the same version in any
// process.
type Versioner interface {
	Version(elements models.Elements) int64
}

// Reconciler merges the local elements of a saving client with the elements
// found in the store.
//
// Implementations must be deterministic and idempotent
// (Reconcile(A, A, ctx) equals A), and must resolve true conflicts per
// element by each element's own modification marker.
type Reconciler interface {
	Reconcile(local, remote models.Elements, mctx models.MergeContext) models.Elements
}

// Restorer validates and normalizes elements read from the store before they
// are handed to a client.
type Restorer interface {
	Restore(elements models.Elements) models.Elements
}
