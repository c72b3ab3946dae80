package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/scene-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldRoomID targets the room identifier.
	FieldRoomID = "room_id"

	// FieldRoomKey targets the room key. It is checked for presence only.
	FieldRoomKey = "room_key"

	// FieldElements targets the element list of a scene request.
	FieldElements = "elements"

	// FieldPrefix targets the storage prefix of a file batch.
	FieldPrefix = "prefix"

	// FieldFiles targets the uploads of a file save batch.
	FieldFiles = "files"

	// FieldIDs targets the ids of a file load batch.
	FieldIDs = "ids"
)

// Limits applied to incoming requests.
const (
	MaxRoomIDLength  = 128
	MaxPrefixLength  = 512
	MaxFileIDLength  = 128
	MaxElements      = 100_000
	MaxFilesPerBatch = 256
	MaxFileSize      = 4 << 20
)

// SceneValidator implements [Validator] for room identities, scene requests
// and file batches. Both value and pointer forms are accepted.
type SceneValidator struct{}

// NewSceneValidator constructs a SceneValidator.
func NewSceneValidator() Validator {
	return &SceneValidator{}
}

// Validate dispatches on the type of obj.
func (v *SceneValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RoomIdentity:
		return v.validateRoom(value, fields...)
	case *models.RoomIdentity:
		return v.validateRoom(*value, fields...)

	case models.SaveSceneRequest:
		return v.validateElements(value.Elements)
	case *models.SaveSceneRequest:
		return v.validateElements(value.Elements)

	case models.SaveFilesRequest:
		return v.validateSaveFiles(value, fields...)
	case *models.SaveFilesRequest:
		return v.validateSaveFiles(*value, fields...)

	case models.LoadFilesRequest:
		return v.validateLoadFiles(value, fields...)
	case *models.LoadFilesRequest:
		return v.validateLoadFiles(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SceneValidator) validateRoom(room models.RoomIdentity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoomID, FieldRoomKey}
	}

	for _, f := range fields {
		switch f {
		case FieldRoomID:
			if err := validateRoomID(room.RoomID); err != nil {
				return err
			}
		case FieldRoomKey:
			if room.RoomKey == "" {
				return ErrEmptyRoomKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SceneValidator) validateElements(elements models.Elements) error {
	if len(elements) > MaxElements {
		return ErrTooManyElements
	}
	for i, el := range elements {
		if el.ID == "" {
			return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidElementID)
		}
	}
	return nil
}

func (v *SceneValidator) validateSaveFiles(request models.SaveFilesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrefix, FieldFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldPrefix:
			if err := validatePrefix(request.Prefix); err != nil {
				return err
			}
		case FieldFiles:
			if len(request.Files) == 0 {
				return ErrEmptyFiles
			}
			if len(request.Files) > MaxFilesPerBatch {
				return ErrTooManyFiles
			}
			for i, file := range request.Files {
				if err := validateFileID(file.ID); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if len(file.Data) == 0 {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyFileData)
				}
				if len(file.Data) > MaxFileSize {
					return fmt.Errorf("validation error at index %d: %w", i, ErrFileTooLarge)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SceneValidator) validateLoadFiles(request models.LoadFilesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrefix, FieldIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldPrefix:
			if err := validatePrefix(request.Prefix); err != nil {
				return err
			}
		case FieldIDs:
			if len(request.IDs) == 0 {
				return ErrEmptyIDs
			}
			if len(request.IDs) > MaxFilesPerBatch {
				return ErrTooManyFiles
			}
			for i, id := range request.IDs {
				if err := validateFileID(id); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateRoomID(roomID string) error {
	if roomID == "" || len(roomID) > MaxRoomIDLength || strings.ContainsAny(roomID, "/ \t\n") {
		return ErrInvalidRoomID
	}
	return nil
}

func validatePrefix(prefix string) error {
	if prefix == "" || len(prefix) > MaxPrefixLength ||
		strings.HasSuffix(prefix, "/") || strings.Contains(prefix, "..") {
		return ErrInvalidPrefix
	}
	return nil
}

func validateFileID(id models.FileID) error {
	if id == "" || len(id) > MaxFileIDLength || strings.ContainsAny(string(id), "/ ") {
		return ErrInvalidFileID
	}
	return nil
}
