package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/scene-keeper/internal/codec"
	"github.com/MKhiriev/scene-keeper/internal/crypto"
	"github.com/MKhiriev/scene-keeper/internal/service"
	"github.com/MKhiriev/scene-keeper/internal/store"
	"github.com/MKhiriev/scene-keeper/internal/utils"
	"github.com/MKhiriev/scene-keeper/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched in order: a failed save wraps several sentinels,
// so the more specific ones come first.
var errorStatuses = []errorStatus{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidToken, http.StatusUnauthorized},
	{ErrRoomNotAuthorized, http.StatusForbidden},
	{ErrMissingRoomKey, http.StatusBadRequest},
	{ErrSceneNotFound, http.StatusNotFound},
	{utils.ErrInvalidJSONBody, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{validators.ErrInvalidRoomID, http.StatusBadRequest},
	{validators.ErrEmptyRoomKey, http.StatusBadRequest},
	{validators.ErrTooManyElements, http.StatusRequestEntityTooLarge},
	{validators.ErrInvalidElementID, http.StatusBadRequest},
	{validators.ErrInvalidPrefix, http.StatusBadRequest},
	{validators.ErrEmptyFiles, http.StatusBadRequest},
	{validators.ErrInvalidFileID, http.StatusBadRequest},
	{validators.ErrEmptyFileData, http.StatusBadRequest},
	{validators.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{validators.ErrEmptyIDs, http.StatusBadRequest},
	{validators.ErrTooManyFiles, http.StatusRequestEntityTooLarge},

	{crypto.ErrInvalidKey, http.StatusBadRequest},
	{crypto.ErrDecryption, http.StatusForbidden},
	{codec.ErrSerialization, http.StatusUnprocessableEntity},
	{codec.ErrMalformedPayload, http.StatusUnprocessableEntity},

	{store.ErrSceneConflict, http.StatusConflict},
	{store.ErrStoreDisabled, http.StatusServiceUnavailable},
	{store.ErrInvalidConfig, http.StatusServiceUnavailable},
	{store.ErrConnecting, http.StatusServiceUnavailable},
	{store.ErrConnectorClosed, http.StatusServiceUnavailable},
	{store.ErrCommittingTransaction, http.StatusServiceUnavailable},
	{store.ErrTransactionAborted, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code. Server-side failures get a generic
// message so storage details do not leak to clients.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
