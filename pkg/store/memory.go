package store

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"vsl-api/pkg/models"
)

// MemoryUserStore keeps users in memory. It is read-only after construction
// and therefore safe for concurrent use.
type MemoryUserStore struct {
	users []models.User
}

// NewMemoryUserStore constructs a user store seeded with the given users.
func NewMemoryUserStore(users ...models.User) *MemoryUserStore {
	return &MemoryUserStore{users: users}
}

// FindByUsername returns the user with the given name or ErrUserNotFound.
func (s *MemoryUserStore) FindByUsername(username string) (models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// MemoryVideoStore keeps the video registry in process memory, in insertion
// order. It is safe for concurrent use; everything is lost on restart.
type MemoryVideoStore struct {
	mu     sync.RWMutex
	videos []models.Video
}

// NewMemoryVideoStore constructs an empty in-memory registry.
func NewMemoryVideoStore() *MemoryVideoStore {
	return &MemoryVideoStore{}
}

// Append adds the record to the end of the registry.
func (s *MemoryVideoStore) Append(video models.Video) error {
	s.mu.Lock()
	s.videos = append(s.videos, video)
	s.mu.Unlock()
	return nil
}

// ListAll returns a copy of the registry in insertion order.
func (s *MemoryVideoStore) ListAll() ([]models.Video, error) {
	s.mu.RLock()
	out := make([]models.Video, len(s.videos))
	copy(out, s.videos)
	s.mu.RUnlock()
	return out, nil
}

// SeedAdmin returns the single built-in account. Login requires knowing the
// plaintext; only the bcrypt hash is held in memory.
func SeedAdmin() (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	return models.User{ID: 1, Username: "admin", PasswordHash: string(hash)}, nil
}
