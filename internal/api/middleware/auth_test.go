package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/service"
)

func runAuth(t *testing.T, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth(service.NewTokenService("secret"))(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func mustNotReach(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	issued, err := service.NewTokenService("secret").Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	rec := runAuth(t, "Bearer "+issued.Token, func(c echo.Context) error {
		called = true
		if c.Get(ContextKeyEmail) != "a@b.com" {
			t.Fatalf("email not set")
		}
		if p, ok := PrincipalFrom(c); !ok || p.Email != "a@b.com" {
			t.Fatalf("principal not set on echo context")
		}
		if p, ok := domain.PrincipalFrom(c.Request().Context()); !ok || p.Email != "a@b.com" {
			t.Fatalf("principal not set on request context")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := runAuth(t, "", mustNotReach(t))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		rec := runAuth(t, header, mustNotReach(t))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("header %q: expected 403, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec := runAuth(t, "Bearer not-a-token", mustNotReach(t))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	issued, err := service.NewTokenService("someone-else").Issue("a@b.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := runAuth(t, "Bearer "+issued.Token, mustNotReach(t))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.com",
		"iat":   time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp":   time.Now().Add(-24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec := runAuth(t, "Bearer "+signed, mustNotReach(t))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
