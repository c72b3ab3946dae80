package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRoomID     = errors.New("invalid room ID")
	ErrEmptyRoomKey      = errors.New("room key is required")
	ErrTooManyElements   = errors.New("too many elements")
	ErrInvalidElementID  = errors.New("element without id")
	ErrInvalidPrefix     = errors.New("invalid file prefix")
	ErrEmptyFiles        = errors.New("files list cannot be empty")
	ErrInvalidFileID     = errors.New("invalid file ID")
	ErrEmptyFileData     = errors.New("file data is required")
	ErrFileTooLarge      = errors.New("file is too large")
	ErrEmptyIDs          = errors.New("IDs list cannot be empty")
	ErrTooManyFiles      = errors.New("too many files in one batch")
)
