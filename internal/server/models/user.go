// Package models defines the server-side data models persisted in the
// database.
package models

import "time"

// User is a registered account: identity, credential material, the
// password-age bookkeeping, and the recovery metadata used by the
// forgotten-password flow.
//
// PasswordHash and SecurityAnswerHash only ever hold bcrypt digests; the raw
// values are never persisted or logged.
type User struct {
	ID    string
	Name  string
	Email string

	PasswordHash        string
	LastLoggedIn        time.Time
	LastPasswordChanged time.Time

	// PasswordDaysLeft is the stored day counter refreshed opportunistically
	// at sign-in. The authoritative age check is always recomputed from
	// LastPasswordChanged; this field only mirrors it for clients.
	PasswordDaysLeft int

	IsDisabled bool
	PhotoURL   string

	// Recovery metadata. The answer is stored hashed, same as the password.
	DateOfBirth        time.Time
	SecurityQuestion   string
	SecurityAnswerHash string

	CreatedAt time.Time
}

// Clone returns a copy of the user, so in-memory repositories can hand out
// records without sharing mutable state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
