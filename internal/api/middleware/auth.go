package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/utilize/marketplace-api/internal/api/metrics"
	"github.com/utilize/marketplace-api/internal/core/domain"
)

// Keys under which Auth stores the verified identity on the echo.Context.
const (
	ContextKeyEmail     = "email"
	ContextKeyPrincipal = "principal"
)

// TokenVerifier checks a raw bearer token and returns its principal.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// Auth is the access gate. A request without an Authorization header is
// rejected with 401; a header whose bearer token fails verification (bad
// scheme, signature or expiry) is rejected with 403. On success the principal
// is attached to both the echo.Context and the request context.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AccessDeniedTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AccessDeniedTotal.WithLabelValues("invalid_credential").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}

			principal, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.AccessDeniedTotal.WithLabelValues("invalid_credential").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}

			c.Set(ContextKeyEmail, principal.Email)
			c.Set(ContextKeyPrincipal, principal)
			req := c.Request()
			c.SetRequest(req.WithContext(domain.WithPrincipal(req.Context(), principal)))

			return next(c)
		}
	}
}

// PrincipalFrom returns the principal attached by Auth.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(ContextKeyPrincipal).(domain.Principal)
	return p, ok && p.Email != ""
}
