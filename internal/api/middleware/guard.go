package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yolp/account-service/internal/api/metrics"
	"github.com/yolp/account-service/internal/core/domain"
	"github.com/yolp/account-service/internal/core/ports"
)

// principalKey is the echo context key under which Guard stores the
// requester's Principal.
const principalKey = "principal"

// Guard is the shared access check applied to every role-gated route:
//  1. read the bearer token from the authorization header; absent or empty
//     means "not signed in",
//  2. decode it through the token service; a nil Principal means the token
//     is forged, garbled or expired,
//  3. compare the Principal's role against required by exact equality — no
//     role outranks another.
//
// On success the Principal is stored in the request context for the handler.
func Guard(tokens ports.TokenService, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if header == "" {
				metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrNotSignedIn
			}

			principal := tokens.ExtractRequesterDetails(stripBearerPrefix(header))
			if principal == nil {
				metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			if principal.Role != required {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden_role").Inc()
				return domain.ErrNotAuthorized
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequesterPrincipal returns the Principal stored by Guard, or nil when the
// route is not guarded.
func RequesterPrincipal(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

// stripBearerPrefix accepts both a raw token and the conventional
// "Bearer <token>" form.
func stripBearerPrefix(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
