// Package httpapi exposes the authentication service over HTTP: JSON
// endpoints under /app/v1/auth, a multipart picture upload, and static
// serving of locally stored uploads.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/logging"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/services"
)

// maxUploadBytes caps the in-memory part of a multipart upload.
const maxUploadBytes = 10 << 20

type userResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PhotoURL            string    `json:"photoUrl"`
	LastLoggedIn        time.Time `json:"lastLoggedIn"`
	LastPasswordChanged time.Time `json:"lastPasswordChanged"`
	IsDisabled          bool      `json:"isDisabled"`
	DaysLeft            int       `json:"noOfDaysLeftToChangePassword"`
}

type authResponse struct {
	userResponse
	Token                  string `json:"token,omitempty"`
	ExpiresIn              int64  `json:"expiresIn,omitempty"`
	PasswordChangeRequired bool   `json:"passwordChangeRequired"`
}

type pictureResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PhotoURL    string    `json:"photoUrl"`
	UserID      string    `json:"userId"`
	CreatedDate time.Time `json:"createdDate"`
}

func toPictureResponse(p *models.ProfilePicture) pictureResponse {
	return pictureResponse{
		ID:          p.ID,
		Title:       p.Title,
		PhotoURL:    p.PhotoURL,
		UserID:      p.UserID,
		CreatedDate: p.CreatedDate,
	}
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		PhotoURL:            u.PhotoURL,
		LastLoggedIn:        u.LastLoggedIn,
		LastPasswordChanged: u.LastPasswordChanged,
		IsDisabled:          u.IsDisabled,
		DaysLeft:            u.PasswordDaysLeft,
	}
}

func (h *Handlers) toAuthResponse(res *services.AuthResult) authResponse {
	out := authResponse{
		userResponse:           toUserResponse(res.User),
		Token:                  res.Token,
		PasswordChangeRequired: res.PasswordChangeRequired,
	}
	if res.Token != "" {
		out.ExpiresIn = int64(h.tokenTTL.Seconds())
	}
	return out
}

// Handlers holds the HTTP handlers for the authentication endpoints.
type Handlers struct {
	accounts *services.AccountService
	pictures *services.PictureService
	logger   logging.Logger
	tokenTTL time.Duration
}

// NewHandlers constructs the handler set.
func NewHandlers(accounts *services.AccountService, pictures *services.PictureService, tokenTTL time.Duration, logger logging.Logger) *Handlers {
	return &Handlers{
		accounts: accounts,
		pictures: pictures,
		tokenTTL: tokenTTL,
		logger:   logger.With("module", "httpapi"),
	}
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// SignUp handles POST /app/v1/auth/signup.
func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decode(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.accounts.SignUp(r.Context(), services.SignUpParams{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		ConfirmPassword:  req.ConfirmPassword,
		PhotoURL:         req.PhotoURL,
		DateOfBirth:      req.dateOfBirth(),
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toAuthResponse(res))
}

// SignIn handles POST /app/v1/auth/signin.
func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decode(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.accounts.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toAuthResponse(res))
}

// UpdatePassword handles POST /app/v1/auth/updatepassword. The route sits
// behind requireAuth; the token must belong to the account being changed.
func (h *Handlers) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if err := decode(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := claimsFrom(r.Context())
	if claims == nil || claims.UserID != req.UserID || claims.Email != req.Email {
		writeErrorMessage(w, http.StatusForbidden, authFailedMessage)
		return
	}

	res, err := h.accounts.ChangePassword(r.Context(), req.UserID, req.CurrentPassword, req.Password, req.ConfirmPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toAuthResponse(res))
}

// ForgotPassword handles POST /app/v1/auth/forgotpassword. On success the
// password is replaced and the user signs in with it; no token is returned.
func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decode(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.accounts.ResetPassword(r.Context(), services.ResetPasswordParams{
		Email:            req.Email,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
		DateOfBirth:      req.dateOfBirth(),
		NewPassword:      req.NewPassword,
		ConfirmPassword:  req.ConfirmPassword,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"requestStatus": "Success",
		"message":       "password updated, please sign in",
	})
}

// UploadProfilePic handles POST /app/v1/auth/upload/userprofilepic. The
// multipart form carries the target userId and the image; the bearer token
// must belong to that user.
func (h *Handlers) UploadProfilePic(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	userID := r.FormValue("userId")
	claims := claimsFrom(r.Context())
	if claims == nil || userID == "" || claims.UserID != userID {
		writeErrorMessage(w, http.StatusForbidden, authFailedMessage)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, common.ErrNoFile)
		return
	}
	defer file.Close()

	pic, err := h.pictures.Upload(r.Context(), userID, header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPictureResponse(pic))
}

// Ping handles GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
