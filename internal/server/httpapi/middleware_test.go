package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/auth"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

func protectedProbe(t *testing.T, secret []byte) http.Handler {
	t.Helper()
	return requireAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())
		require.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(claims.UserID))
	}))
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	h := protectedProbe(t, []byte("k"))

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, authFailedMessage, env.Error.Message)
	assert.Equal(t, "Fail", env.Error.RequestStatus)
}

func TestRequireAuth_BadTokens(t *testing.T) {
	secret := []byte("k")
	h := protectedProbe(t, secret)

	user := &models.User{ID: "u1", Email: "a@b.c", Name: "A"}
	valid, err := auth.GenerateToken(user, secret, time.Hour)
	require.NoError(t, err)
	expired, err := auth.GenerateToken(user, secret, -time.Hour)
	require.NoError(t, err)
	otherKey, err := auth.GenerateToken(user, []byte("other"), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"not bearer", "Basic abc", http.StatusForbidden},
		{"garbage", "Bearer not.a.token", http.StatusForbidden},
		{"expired", "Bearer " + expired, http.StatusForbidden},
		{"wrong key", "Bearer " + otherKey, http.StatusForbidden},
		{"valid", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "u1", rec.Body.String())
			}
		})
	}
}

func TestRequireAuth_ProtectedRoutesNeedToken(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/app/v1/auth/updatepassword",
		"/app/v1/auth/upload/userprofilepic",
	} {
		resp, err := srv.Client().Post(srv.URL+path, "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
}
