package pictures

import (
	"context"
	"sync"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

// InMemoryRepository is a map-backed picture store used by tests.
type InMemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.ProfilePicture
}

// NewInMemoryRepository constructs an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*models.ProfilePicture)}
}

func (r *InMemoryRepository) Create(ctx context.Context, pic *models.ProfilePicture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[pic.ID] = pic.Clone()
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.ProfilePicture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pic, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return pic.Clone(), nil
}
