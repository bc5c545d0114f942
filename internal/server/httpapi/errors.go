package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
)

// errorBody is the wire shape every failure uses.
type errorBody struct {
	Message       string `json:"message"`
	StatusCode    int    `json:"statusCode"`
	RequestStatus string `json:"requestStatus"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// statusFor maps service-level sentinels to HTTP status codes. Anything
// unmapped is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrEmailTaken),
		errors.Is(err, common.ErrSamePassword),
		errors.Is(err, common.ErrPasswordMismatch),
		errors.Is(err, common.ErrPasswordTooShort),
		errors.Is(err, common.ErrPasswordNoUpper),
		errors.Is(err, common.ErrPasswordNoDigit),
		errors.Is(err, common.ErrPasswordNoSpecial),
		errors.Is(err, common.ErrNoFile):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the error envelope. Internal errors never leak
// their cause to the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "something went wrong"
	}
	writeErrorMessage(w, status, msg)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: errorBody{
		Message:       msg,
		StatusCode:    status,
		RequestStatus: "Fail",
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
