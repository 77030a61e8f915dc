package storage

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidURL     = errors.New("bookmark URL is empty")
	ErrUnknownBackend = errors.New("unknown storage backend")
)
