// Package users defines the persistence abstraction for account records.
package users

import (
	"context"
	"time"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

// Repository is the credential store for accounts. Lookups that find nothing
// return common.ErrNotFound; Create returns common.ErrEmailTaken when the
// email is already registered.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdateLoginStamp records a successful sign-in: last_logged_in and the
	// mirrored day counter.
	UpdateLoginStamp(ctx context.Context, id string, at time.Time, daysLeft int) error

	// UpdatePassword replaces the credential and stamps both timestamps;
	// the day counter resets to its initial value.
	UpdatePassword(ctx context.Context, id string, passwordHash string, at time.Time) error

	// UpdatePhotoURL points the account at its current profile picture.
	UpdatePhotoURL(ctx context.Context, id string, photoURL string) error
}
