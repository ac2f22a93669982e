package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/faveomobile/helpdesk-client/internal/fakegateway/store"
)

const tokenTTL = 24 * time.Hour

// issueToken signs an HS256 bearer token for the given account.
func issueToken(u *store.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
