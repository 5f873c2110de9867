package notes

import (
	"github.com/google/uuid"
)

// GenerateID returns a new note identifier.
// IDs are UUIDv7: a millisecond timestamp followed by random bits, so they sort
// by creation time and collide only with negligible probability.
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
