package repomanager

import (
	"context"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/dbx"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/pictures"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends map-backed repositories. InTx offers no
// isolation beyond the per-record atomicity of the repositories themselves,
// which matches what the document-store deployment provides.
type InMemoryRepositoryManager struct {
	users    *users.InMemoryRepository
	pictures *pictures.InMemoryRepository
}

// NewInMemoryRepositoryManager constructs a manager with empty stores.
func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		pictures: pictures.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Pictures(db dbx.DBTX) pictures.Repository {
	return m.pictures
}
