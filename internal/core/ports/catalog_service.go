package ports

import (
	"context"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// CatalogService defines the category and product use cases.
type CatalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	ProductsBySeller(ctx context.Context, seller string) ([]domain.Product, error)
	AdvertisedProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.WriteResult, error)
	Advertise(ctx context.Context, id string) (*domain.WriteResult, error)
	DeleteProduct(ctx context.Context, id string) (*domain.WriteResult, error)
}
