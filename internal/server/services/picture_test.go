package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/logging"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/repomanager"
)

// fakeFileStore records writes in memory.
type fakeFileStore struct {
	saved   map[string][]byte
	saveErr error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: make(map[string][]byte)}
}

func (f *fakeFileStore) Save(ctx context.Context, key string, r io.Reader) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return err
	}
	f.saved[key] = buf.Bytes()
	return nil
}

func (f *fakeFileStore) URL(key string) string {
	return "http://localhost:5000/uploads/" + key
}

func seedUser(t *testing.T, rm repomanager.RepositoryManager) string {
	t.Helper()
	s := newAccountService(t, rm, time.Date(2022, time.April, 15, 12, 0, 0, 0, time.UTC))
	res, err := s.SignUp(context.Background(), validSignUp())
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return res.User.ID
}

func TestUpload_Success(t *testing.T) {
	rm := repomanager.NewInMemoryRepositoryManager()
	userID := seedUser(t, rm)
	files := newFakeFileStore()
	s := NewPictureService(rm, files, logging.NewJSON(io.Discard))

	pic, err := s.Upload(context.Background(), userID, "me.final.png", strings.NewReader("imagebytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if pic.ID == "" {
		t.Fatalf("picture record has no id")
	}
	if pic.Title != "me.final.png" {
		t.Fatalf("title = %q, want the original file name", pic.Title)
	}
	if pic.UserID != userID {
		t.Fatalf("userId = %q, want %q", pic.UserID, userID)
	}
	if pic.CreatedDate.IsZero() {
		t.Fatalf("createdDate not set")
	}
	if pic.PhotoURL == "" {
		t.Fatalf("photo URL not set")
	}

	// exactly one binary, keyed by uuid plus the last dot segment
	if len(files.saved) != 1 {
		t.Fatalf("saved %d files, want 1", len(files.saved))
	}
	for key, data := range files.saved {
		if !strings.HasSuffix(key, ".png") {
			t.Fatalf("key %q should keep only the last extension", key)
		}
		if strings.Contains(key, "me.final") {
			t.Fatalf("key %q must not reuse the client file name", key)
		}
		if string(data) != "imagebytes" {
			t.Fatalf("stored bytes = %q", data)
		}
		if pic.PhotoURL != files.URL(key) {
			t.Fatalf("photo URL %q does not match stored key %q", pic.PhotoURL, key)
		}
	}

	// metadata retrievable by the record id
	saved, err := rm.Pictures(nil).GetByID(context.Background(), pic.ID)
	if err != nil {
		t.Fatalf("Pictures.GetByID: %v", err)
	}
	if saved.Title != pic.Title || saved.PhotoURL != pic.PhotoURL {
		t.Fatalf("stored picture = %+v, want %+v", saved, pic)
	}

	// account record repointed
	stored, err := rm.Users(nil).GetByID(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.PhotoURL != pic.PhotoURL {
		t.Fatalf("stored photo URL = %q, want %q", stored.PhotoURL, pic.PhotoURL)
	}
}

func TestUpload_NoFile(t *testing.T) {
	rm := repomanager.NewInMemoryRepositoryManager()
	userID := seedUser(t, rm)
	s := NewPictureService(rm, newFakeFileStore(), logging.NewJSON(io.Discard))

	if _, err := s.Upload(context.Background(), userID, "", strings.NewReader("x")); !errors.Is(err, common.ErrNoFile) {
		t.Fatalf("empty name: want ErrNoFile, got %v", err)
	}
	if _, err := s.Upload(context.Background(), userID, "me.png", nil); !errors.Is(err, common.ErrNoFile) {
		t.Fatalf("nil reader: want ErrNoFile, got %v", err)
	}
}

func TestUpload_UnknownUser(t *testing.T) {
	rm := repomanager.NewInMemoryRepositoryManager()
	s := NewPictureService(rm, newFakeFileStore(), logging.NewJSON(io.Discard))

	_, err := s.Upload(context.Background(), "no-such-id", "me.png", strings.NewReader("x"))
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpload_SaveFailureLeavesNoRecord(t *testing.T) {
	rm := repomanager.NewInMemoryRepositoryManager()
	userID := seedUser(t, rm)
	files := newFakeFileStore()
	files.saveErr = errBoom{}
	s := NewPictureService(rm, files, logging.NewJSON(io.Discard))

	_, err := s.Upload(context.Background(), userID, "me.png", strings.NewReader("x"))
	if !errors.Is(err, common.ErrInternal) {
		t.Fatalf("want ErrInternal, got %v", err)
	}

	// a failed binary write must not touch the account
	stored, _ := rm.Users(nil).GetByID(context.Background(), userID)
	if stored.PhotoURL != "" {
		t.Fatalf("photo URL set after failed save: %q", stored.PhotoURL)
	}
}
