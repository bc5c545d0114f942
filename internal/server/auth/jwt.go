// Package auth issues and verifies the bearer tokens handed out by the
// account lifecycle engine. A token carries a signed snapshot of the account
// state at issuance time, not just an identifier.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
)

// Claims embeds the registered JWT claims plus the account snapshot.
type Claims struct {
	jwt.RegisteredClaims
	UserID              string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	LastLoggedIn        time.Time `json:"lastLoggedIn"`
	LastPasswordChanged time.Time `json:"lastPasswordChanged"`
	IsDisabled          bool      `json:"isDisabled"`
}

// GenerateToken signs an HS256 token for the given account, valid for ttl.
func GenerateToken(user *models.User, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:              user.ID,
		Email:               user.Email,
		Name:                user.Name,
		LastLoggedIn:        user.LastLoggedIn,
		LastPasswordChanged: user.LastPasswordChanged,
		IsDisabled:          user.IsDisabled,
	})

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ParseToken verifies the signature and validity window and returns the
// embedded claims. It fails closed: a bad signature, a malformed payload, an
// unexpected signing algorithm, or expiry all yield an error. Expiry is
// distinguished as common.ErrTokenExpired, everything else maps to
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
