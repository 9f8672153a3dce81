package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

const defaultTokenTTL = 2 * time.Hour

// TokenService mints signed, time-bounded credentials asserting a user's
// identity and role. Tokens are self-contained (HS256 over a process-wide
// secret) so no server-side session state is needed.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed JWT carrying the user's id, username and role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.Itoa(user.ID),
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
