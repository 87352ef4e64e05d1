package ports

import (
	"context"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// CategoryRepository reads the category collection.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// ProductFilter selects products by equality. Zero-valued fields are ignored.
type ProductFilter struct {
	CategoryID     string
	Seller         string
	AdvertisedOnly bool
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.WriteResult, error)
	Find(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	// MarkAdvertised sets ad=true. Returns domain.ErrProductNotFound when no document matched.
	MarkAdvertised(ctx context.Context, id string) (*domain.WriteResult, error)
	DeleteByID(ctx context.Context, id string) (*domain.WriteResult, error)
}
