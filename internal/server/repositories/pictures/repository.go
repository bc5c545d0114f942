// Package pictures defines the persistence abstraction for profile picture
// metadata.
package pictures

import (
	"context"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

// Repository stores profile picture records. The record id is generated by
// the caller before the binary is written, so the storage key exists first
// and a failed write never leaves a dangling record.
type Repository interface {
	Create(ctx context.Context, pic *models.ProfilePicture) error
	GetByID(ctx context.Context, id string) (*models.ProfilePicture, error)
}
