// Package password implements the password strength policy and the bcrypt
// credential hasher.
package password

import (
	"strings"
	"unicode"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
)

// SpecialChars is the fixed set of characters accepted by the special
// character rule.
const SpecialChars = "$&+,:;=?@#|'<>.^*()%!-"

// Validate checks a password/confirmation pair against the policy. Rules are
// checked in order and the first failure wins:
//
//	match, min length 8, an uppercase letter, a digit, a special character.
//
// Returns nil only when every rule passes.
func Validate(password, confirmPassword string) error {
	if password != confirmPassword {
		return common.ErrPasswordMismatch
	}
	if len(password) < 8 {
		return common.ErrPasswordTooShort
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return common.ErrPasswordNoUpper
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return common.ErrPasswordNoDigit
	}
	if !strings.ContainsAny(password, SpecialChars) {
		return common.ErrPasswordNoSpecial
	}
	return nil
}
