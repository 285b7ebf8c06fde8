package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yolp/account-service/internal/core/domain"
)

// TokenService mints and verifies HS256 bearer tokens carrying a Principal.
// It is stateless: a token is valid iff its signature checks out against
// the process-wide secret, so verification needs no storage.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService. A ttl of zero disables the expiry
// claim entirely; tokens then stay valid for the lifetime of the secret.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// GenerateToken encodes the principal's id, username and role into a signed
// compact JWT. Pure function of the principal, the secret and (when a ttl
// is set) the clock.
func (s *TokenService) GenerateToken(p domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"id":       p.ID,
		"username": p.Username,
		"role":     string(p.Role),
	}
	if s.ttl != 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// ExtractRequesterDetails verifies token and reconstructs the Principal it
// encodes. Any failure — malformed input, wrong algorithm, bad signature,
// expired claim, incomplete payload — yields nil; a non-nil result is
// always a complete Principal.
func (s *TokenService) ExtractRequesterDetails(token string) *domain.Principal {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if id == "" || username == "" || !domain.Role(role).Valid() {
		return nil
	}

	return &domain.Principal{ID: id, Username: username, Role: domain.Role(role)}
}
