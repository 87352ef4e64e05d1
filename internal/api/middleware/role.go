package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/utilize/marketplace-api/internal/api/metrics"
	"github.com/utilize/marketplace-api/internal/core/domain"
)

// RoleLookup fetches the stored user for a principal.
type RoleLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RequireRole lets the request through only when the stored role of the
// authenticated principal equals required. It must run after Auth.
//
// A principal with no user document is denied with 403. Other lookup errors
// are returned as-is and end up as 500.
func RequireRole(users RoleLookup, required domain.Role, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				metrics.AccessDeniedTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			}

			user, err := users.FindByEmail(c.Request().Context(), principal.Email)
			if errors.Is(err, domain.ErrUserNotFound) || (err == nil && user == nil) {
				metrics.AccessDeniedTotal.WithLabelValues("unknown_principal").Inc()
				log.Warn().Str("email", principal.Email).Str("required", required.String()).Msg("role check for unknown principal")
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			if err != nil {
				return fmt.Errorf("resolve role: %w", err)
			}

			if user.Role != required {
				metrics.AccessDeniedTotal.WithLabelValues("role_mismatch").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}

			return next(c)
		}
	}
}

// AdminOnly is RequireRole(users, domain.RoleAdmin, log).
func AdminOnly(users RoleLookup, log zerolog.Logger) echo.MiddlewareFunc {
	return RequireRole(users, domain.RoleAdmin, log)
}

// SellerOnly is RequireRole(users, domain.RoleSeller, log).
func SellerOnly(users RoleLookup, log zerolog.Logger) echo.MiddlewareFunc {
	return RequireRole(users, domain.RoleSeller, log)
}
