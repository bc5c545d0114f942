package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

// InMemoryRepository is a map-backed account store with the same contract as
// the Postgres implementation. It backs tests and local experiments.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
}

// NewInMemoryRepository constructs an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, common.ErrEmailTaken
	}

	stored := user.Clone()
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID

	return stored.Clone(), nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return user.Clone(), nil
}

func (r *InMemoryRepository) UpdateLoginStamp(ctx context.Context, id string, at time.Time, daysLeft int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	user.LastLoggedIn = at
	user.PasswordDaysLeft = daysLeft
	return nil
}

func (r *InMemoryRepository) UpdatePassword(ctx context.Context, id string, passwordHash string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	user.PasswordHash = passwordHash
	user.LastPasswordChanged = at
	user.LastLoggedIn = at
	user.PasswordDaysLeft = 30
	return nil
}

func (r *InMemoryRepository) UpdatePhotoURL(ctx context.Context, id string, photoURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	user.PhotoURL = photoURL
	return nil
}
