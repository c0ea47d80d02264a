package session

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenClaims is the client-visible view of the service's JWT. The client
// never verifies the signature; the token is opaque credential material
// and these fields exist purely for display (who am I, when does this
// expire).
type TokenClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Claims decodes the held token without verification. ErrNoSession when no
// token is held.
func (s *Store) Claims() (*TokenClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNoSession
	}
	var claims TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, errors.Wrap(err, "Store.Claims parse token")
	}
	return &claims, nil
}
