package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/dbx"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

const uniqueViolation = "23505"

// PostgresRepository implements the account store over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, password_hash, photo_url,
	last_logged_in, last_password_changed, password_days_left, is_disabled,
	date_of_birth, security_question, security_answer_hash, created_at`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, photo_url,
			last_logged_in, last_password_changed, password_days_left,
			is_disabled, date_of_birth, security_question, security_answer_hash)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
		`

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.PhotoURL,
		user.LastLoggedIn, user.LastPasswordChanged, user.PasswordDaysLeft,
		user.IsDisabled, user.DateOfBirth, user.SecurityQuestion,
		user.SecurityAnswerHash,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var photoURL sql.NullString

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &photoURL,
		&user.LastLoggedIn, &user.LastPasswordChanged, &user.PasswordDaysLeft,
		&user.IsDisabled, &user.DateOfBirth, &user.SecurityQuestion,
		&user.SecurityAnswerHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.PhotoURL = photoURL.String
	return user, nil
}

func (r *PostgresRepository) UpdateLoginStamp(ctx context.Context, id string, at time.Time, daysLeft int) error {
	query := `UPDATE users SET last_logged_in = $2, password_days_left = $3 WHERE id = $1`

	return r.exec(ctx, query, id, at, daysLeft)
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id string, passwordHash string, at time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $2,
			last_password_changed = $3,
			last_logged_in = $3,
			password_days_left = 30
		WHERE id = $1
		`

	return r.exec(ctx, query, id, passwordHash, at)
}

func (r *PostgresRepository) UpdatePhotoURL(ctx context.Context, id string, photoURL string) error {
	query := `UPDATE users SET photo_url = $2 WHERE id = $1`

	return r.exec(ctx, query, id, photoURL)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
