package pictures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/dbx"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

// PostgresRepository implements picture metadata storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, pic *models.ProfilePicture) error {
	query := `
		INSERT INTO profile_pictures (id, title, photo_url, user_id, created_date)
		VALUES ($1, $2, $3, $4, $5)
		`

	_, err := r.db.ExecContext(ctx, query,
		pic.ID, pic.Title, pic.PhotoURL, pic.UserID, pic.CreatedDate)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.ProfilePicture, error) {
	query := `
		SELECT id, title, photo_url, user_id, created_date
		FROM profile_pictures
		WHERE id = $1
		`

	pic := &models.ProfilePicture{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pic.ID, &pic.Title, &pic.PhotoURL, &pic.UserID, &pic.CreatedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return pic, nil
}
