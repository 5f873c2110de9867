package core

import (
	"errors"
	"strings"
)

// Common errors.
var (
	ErrReadOnly           = errors.New("store is in read-only mode")
	ErrKeyNotFound        = errors.New("key not found")
	ErrNotFound           = errors.New("note not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageCorrupt     = errors.New("stored data is corrupt")
	ErrSaveFailed         = errors.New("save failed")
	ErrDeleteFailed       = errors.New("delete failed")
)

// ValidationError lists every rule a draft violates.
// It never reaches the store: the controller rejects the draft first.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
