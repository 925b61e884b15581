package store

import (
	"errors"

	"vsl-api/pkg/models"
)

// ErrUserNotFound is returned by UserStore lookups for unknown usernames.
var ErrUserNotFound = errors.New("user not found")

// UserStore holds login accounts. The server only ever reads from it; the
// single admin account is seeded when the store is constructed.
type UserStore interface {
	FindByUsername(username string) (models.User, error)
}

// VideoStore is the append-only registry of uploaded videos.
type VideoStore interface {
	Append(video models.Video) error
	ListAll() ([]models.Video, error)
}
