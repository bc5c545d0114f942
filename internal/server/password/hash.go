package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor used for passwords and security
// answers. Changing it only affects newly generated digests.
const hashCost = 12

// ErrEmptyPlaintext is returned when an empty string is offered for hashing.
var ErrEmptyPlaintext = errors.New("refusing to hash an empty string")

// Hash generates a salted bcrypt digest of the plaintext.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether the plaintext matches the stored digest. The
// comparison inside bcrypt is constant time.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
