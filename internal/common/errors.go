// Package common contains shared sentinel errors and small helpers used
// across the authentication backend. Callers should match the errors with
// errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("user already exists, try logging in")

	// Credential errors. Unknown email and wrong password deliberately
	// collapse into the same value so callers cannot probe which
	// addresses are registered.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrSamePassword       = errors.New("new password should be different from old")

	// Password policy errors, one per rule.
	ErrPasswordMismatch  = errors.New("passwords should match to register")
	ErrPasswordTooShort  = errors.New("password should have minimum of 8 characters")
	ErrPasswordNoUpper   = errors.New("password should have at least one capital letter")
	ErrPasswordNoDigit   = errors.New("password should have at least one number")
	ErrPasswordNoSpecial = errors.New("password should have at least one special character")

	// Token errors (invalid signature, malformed payload, expiry).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Upload errors.
	ErrNoFile = errors.New("no file uploaded")

	ErrInternal = errors.New("internal error")
)
