package client

import "errors"

var (
	ErrNoAdapter        = errors.New("no scene adapter provided")
	ErrUsage            = errors.New("usage error")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingRoom      = errors.New("room id is required")
	ErrMissingRoomKey   = errors.New("room key is required")
	ErrTokensDisabled   = errors.New("token sign key is not configured")
	ErrInvalidSceneFile = errors.New("invalid scene input")
)
