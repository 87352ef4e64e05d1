package ports

import (
	"context"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// PurchaseRepository defines persistence operations for purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.Purchase) (*domain.WriteResult, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Purchase, error)
	DeleteByID(ctx context.Context, id string) (*domain.WriteResult, error)
}

// WishlistRepository defines persistence operations for wishlist entries.
type WishlistRepository interface {
	Create(ctx context.Context, item *domain.WishlistItem) (*domain.WriteResult, error)
	ListByUser(ctx context.Context, user string) ([]domain.WishlistItem, error)
}
