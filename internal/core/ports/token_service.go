package ports

import "github.com/yolp/account-service/internal/core/domain"

// TokenService mints and verifies the bearer tokens that carry a Principal
// between requests. Verification is stateless: validity is established
// purely by the token's signature.
type TokenService interface {
	// GenerateToken encodes the principal into a signed, URL-safe string.
	GenerateToken(p domain.Principal) (string, error)
	// ExtractRequesterDetails verifies token and decodes the Principal it
	// carries. It returns nil for anything that was not produced by
	// GenerateToken with the same secret: malformed input, a bad signature,
	// an expired claim. It never panics on attacker-supplied garbage.
	ExtractRequesterDetails(token string) *domain.Principal
}
