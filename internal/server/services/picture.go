package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/logging"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/repomanager"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/storage"
)

// PictureService stores profile picture binaries through a FileStore and
// records their metadata.
type PictureService struct {
	repomanager repomanager.RepositoryManager
	files       storage.FileStore
	logger      logging.Logger
}

// NewPictureService constructs a PictureService.
func NewPictureService(m repomanager.RepositoryManager, files storage.FileStore, logger logging.Logger) *PictureService {
	return &PictureService{repomanager: m, files: files, logger: logger}
}

// Upload stores a new profile picture for the user and returns the created
// record. The storage key is a fresh UUID plus the extension taken from the
// last dot segment of the client file name. The binary is written before any
// metadata, so a failed write never leaves a record pointing at nothing. The
// owning account's photoUrl is repointed as the final step.
func (s *PictureService) Upload(ctx context.Context, userID, fileName string, src io.Reader) (*models.ProfilePicture, error) {
	if src == nil || fileName == "" {
		return nil, common.ErrNoFile
	}

	usersRepo := s.repomanager.Users(nil)
	user, err := usersRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "looking up user", "error", err)
		return nil, common.ErrInternal
	}

	id := uuid.NewString()
	key := id + filepath.Ext(fileName)

	if err := s.files.Save(ctx, key, src); err != nil {
		s.logger.Error(ctx, "saving picture", "error", err, "key", key)
		return nil, common.ErrInternal
	}
	photoURL := s.files.URL(key)

	pic := &models.ProfilePicture{
		ID:          id,
		Title:       fileName,
		PhotoURL:    photoURL,
		UserID:      user.ID,
		CreatedDate: time.Now().UTC(),
	}
	if err := s.repomanager.Pictures(nil).Create(ctx, pic); err != nil {
		s.logger.Error(ctx, "recording picture", "error", err, "id", id)
		return nil, common.ErrInternal
	}

	if err := usersRepo.UpdatePhotoURL(ctx, user.ID, photoURL); err != nil {
		s.logger.Error(ctx, "updating photo url", "error", err)
		return nil, common.ErrInternal
	}

	return pic, nil
}
