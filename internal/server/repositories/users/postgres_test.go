package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleUser() *models.User {
	return &models.User{
		Name:                "Alice",
		Email:               "a@x.com",
		PasswordHash:        "$2a$12$hash",
		LastLoggedIn:        time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC),
		LastPasswordChanged: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		PasswordDaysLeft:    30,
		DateOfBirth:         time.Date(1994, 2, 12, 0, 0, 0, 0, time.UTC),
		SecurityQuestion:    "first pet",
		SecurityAnswerHash:  "$2a$12$answer",
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at"}).
		AddRow("u-1", time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+users`).WillReturnRows(rows)

	got, err := repo.Create(context.Background(), sampleUser())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), sampleUser())
	if !errors.Is(err, common.ErrEmailTaken) {
		t.Fatalf("expected common.ErrEmailTaken, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), sampleUser())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func userRows(u *models.User, id string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "photo_url",
		"last_logged_in", "last_password_changed", "password_days_left",
		"is_disabled", "date_of_birth", "security_question",
		"security_answer_hash", "created_at",
	}).AddRow(
		id, u.Name, u.Email, u.PasswordHash, nil,
		u.LastLoggedIn, u.LastPasswordChanged, u.PasswordDaysLeft,
		u.IsDisabled, u.DateOfBirth, u.SecurityQuestion,
		u.SecurityAnswerHash, time.Now(),
	)
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := sampleUser()
	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1`).
		WithArgs("a@x.com").
		WillReturnRows(userRows(u, "u-1"))

	got, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "a@x.com" || got.PhotoURL != "" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestUpdateLoginStamp_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now().UTC()
	mock.ExpectExec(`UPDATE\s+users\s+SET\s+last_logged_in`).
		WithArgs("u-1", at, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateLoginStamp(context.Background(), "u-1", at, 10); err != nil {
		t.Fatalf("UpdateLoginStamp error: %v", err)
	}
}

func TestUpdatePassword_MissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE\s+users\s+SET\s+password_hash`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), "missing", "$2a$12$new", time.Now())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestUpdatePhotoURL_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET\s+photo_url`).
		WithArgs("u-1", "http://localhost:5000/uploads/p-1.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePhotoURL(context.Background(), "u-1", "http://localhost:5000/uploads/p-1.png"); err != nil {
		t.Fatalf("UpdatePhotoURL error: %v", err)
	}
}
