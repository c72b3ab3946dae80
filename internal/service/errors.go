package service

import "errors"

var (
	// ErrSaveFailed is wrapped around every error of a scene save. The
	// stored envelope is unchanged when it is returned.
	ErrSaveFailed = errors.New("scene save failed")

	// ErrLoadFailed is wrapped around every error of a scene load other
	// than an absent room.
	ErrLoadFailed = errors.New("scene load failed")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
