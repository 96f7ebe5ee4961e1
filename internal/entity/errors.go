package entity

import "errors"

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidInput         = errors.New("invalid input")

	// ErrBackendRejected is an explicit success:false reported by the
	// backend, as opposed to a transport-level failure.
	ErrBackendRejected = errors.New("backend rejected")

	// ErrEmptyPayload is a zero-byte backend response, treated as a soft
	// failure distinct from a transport error.
	ErrEmptyPayload = errors.New("empty payload")
)
