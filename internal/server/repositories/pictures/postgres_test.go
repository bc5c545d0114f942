package pictures

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	pic := &models.ProfilePicture{
		ID:          "p-1",
		Title:       "avatar.png",
		PhotoURL:    "http://localhost:5000/uploads/p-1.png",
		UserID:      "u-1",
		CreatedDate: time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+profile_pictures`).
		WithArgs(pic.ID, pic.Title, pic.PhotoURL, pic.UserID, pic.CreatedDate).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), pic); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "photo_url", "user_id", "created_date"}).
		AddRow("p-1", "avatar.png", "http://localhost:5000/uploads/p-1.png", "u-1", time.Now())

	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+profile_pictures\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("p-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "p-1" || got.UserID != "u-1" {
		t.Fatalf("unexpected picture: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*FROM\s+profile_pictures\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}
