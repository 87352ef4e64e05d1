package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/utilize/marketplace-api/internal/api/middleware"
	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

type stubUserService struct {
	loginFn       func(ctx context.Context, email string) (ports.IssuedToken, error)
	saveProfileFn func(ctx context.Context, p domain.UserProfile) (*ports.SaveProfileResult, error)
	updateRoleFn  func(ctx context.Context, in ports.UpdateRoleInput) (*domain.WriteResult, error)
	getFn         func(ctx context.Context, email string) (*domain.User, error)
	listByRoleFn  func(ctx context.Context, role domain.Role) ([]domain.User, error)
	deleteFn      func(ctx context.Context, id string) (*domain.WriteResult, error)
}

func (s *stubUserService) Login(ctx context.Context, email string) (ports.IssuedToken, error) {
	return s.loginFn(ctx, email)
}

func (s *stubUserService) SaveProfile(ctx context.Context, p domain.UserProfile) (*ports.SaveProfileResult, error) {
	return s.saveProfileFn(ctx, p)
}

func (s *stubUserService) UpdateRole(ctx context.Context, in ports.UpdateRoleInput) (*domain.WriteResult, error) {
	return s.updateRoleFn(ctx, in)
}

func (s *stubUserService) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.getFn(ctx, email)
}

func (s *stubUserService) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.listByRoleFn(ctx, role)
}

func (s *stubUserService) Delete(ctx context.Context, id string) (*domain.WriteResult, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) EnsureAdmin(context.Context, string) error { return nil }

type stubCatalogService struct {
	categoriesFn func(ctx context.Context) ([]domain.Category, error)
	productsFn   func(ctx context.Context, filter string) ([]domain.Product, error)
	createFn     func(ctx context.Context, p *domain.Product) (*domain.WriteResult, error)
	advertiseFn  func(ctx context.Context, id string) (*domain.WriteResult, error)
	deleteFn     func(ctx context.Context, id string) (*domain.WriteResult, error)
}

func (s *stubCatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categoriesFn(ctx)
}

func (s *stubCatalogService) ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return s.productsFn(ctx, "category:"+categoryID)
}

func (s *stubCatalogService) ProductsBySeller(ctx context.Context, seller string) ([]domain.Product, error) {
	return s.productsFn(ctx, "seller:"+seller)
}

func (s *stubCatalogService) AdvertisedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productsFn(ctx, "advertised")
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.WriteResult, error) {
	return s.createFn(ctx, p)
}

func (s *stubCatalogService) Advertise(ctx context.Context, id string) (*domain.WriteResult, error) {
	return s.advertiseFn(ctx, id)
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, id string) (*domain.WriteResult, error) {
	return s.deleteFn(ctx, id)
}

type stubPurchaseService struct {
	createFn func(ctx context.Context, p *domain.Purchase, key ports.IdempotencyKey) (*ports.CreatePurchaseResult, error)
	listFn   func(ctx context.Context, buyer string) ([]domain.Purchase, error)
	deleteFn func(ctx context.Context, id string) (*domain.WriteResult, error)
}

func (s *stubPurchaseService) Create(ctx context.Context, p *domain.Purchase, key ports.IdempotencyKey) (*ports.CreatePurchaseResult, error) {
	return s.createFn(ctx, p, key)
}

func (s *stubPurchaseService) ListByBuyer(ctx context.Context, buyer string) ([]domain.Purchase, error) {
	return s.listFn(ctx, buyer)
}

func (s *stubPurchaseService) Delete(ctx context.Context, id string) (*domain.WriteResult, error) {
	return s.deleteFn(ctx, id)
}

type stubWishlistService struct {
	addFn  func(ctx context.Context, item *domain.WishlistItem) (*domain.WriteResult, error)
	listFn func(ctx context.Context, user string) ([]domain.WishlistItem, error)
}

func (s *stubWishlistService) Add(ctx context.Context, item *domain.WishlistItem) (*domain.WriteResult, error) {
	return s.addFn(ctx, item)
}

func (s *stubWishlistService) ListByUser(ctx context.Context, user string) ([]domain.WishlistItem, error) {
	return s.listFn(ctx, user)
}

// testRequest describes a single handler invocation.
type testRequest struct {
	method    string
	target    string
	body      io.Reader
	params    map[string]string
	principal string
	header    map[string]string
}

func newTestContext(t *testing.T, r testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(r.method, r.target, r.body)
	if r.body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range r.header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(r.params))
	values := make([]string, 0, len(r.params))
	for k, v := range r.params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if r.principal != "" {
		c.Set(middleware.ContextKeyPrincipal, domain.Principal{Email: r.principal})
	}
	return c, rec
}

// httpCode extracts the status of an *echo.HTTPError, or 0.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
