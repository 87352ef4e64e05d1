package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

type stubRoleLookup struct {
	users map[string]domain.Role
	err   error
}

func (s stubRoleLookup) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	role, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{Email: email, Role: role}, nil
}

func runRole(t *testing.T, lookup RoleLookup, mw func(RoleLookup, zerolog.Logger) echo.MiddlewareFunc, email string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set(ContextKeyPrincipal, domain.Principal{Email: email})
	}

	called := false
	handler := mw(lookup, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

var lookup = stubRoleLookup{users: map[string]domain.Role{
	"admin@x.com":  domain.RoleAdmin,
	"seller@x.com": domain.RoleSeller,
	"buyer@x.com":  domain.RoleBuyer,
}}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	rec, called := runRole(t, lookup, AdminOnly, "admin@x.com")

	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminOnly_ForbidsSeller(t *testing.T) {
	rec, called := runRole(t, lookup, AdminOnly, "seller@x.com")

	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestSellerOnly_AllowsSellerForbidsOthers(t *testing.T) {
	if rec, called := runRole(t, lookup, SellerOnly, "seller@x.com"); !called || rec.Code != http.StatusOK {
		t.Fatalf("seller should pass, got %d", rec.Code)
	}
	for _, email := range []string{"admin@x.com", "buyer@x.com"} {
		if rec, called := runRole(t, lookup, SellerOnly, email); called || rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", email, rec.Code)
		}
	}
}

func TestRequireRole_UnknownPrincipalDenied(t *testing.T) {
	rec, called := runRole(t, lookup, AdminOnly, "ghost@x.com")

	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_NilUserDenied(t *testing.T) {
	rec, called := runRole(t, nilLookup{}, AdminOnly, "a@x.com")

	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_StoreErrorIsInternal(t *testing.T) {
	rec, called := runRole(t, stubRoleLookup{err: errors.New("mongo down")}, AdminOnly, "admin@x.com")

	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestRequireRole_WithoutPrincipal(t *testing.T) {
	rec, called := runRole(t, lookup, AdminOnly, "")

	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

type nilLookup struct{}

func (nilLookup) FindByEmail(context.Context, string) (*domain.User, error) { return nil, nil }
