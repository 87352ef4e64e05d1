package ports

import (
	"context"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// CreatePurchaseResult is returned by PurchaseService.Create.
type CreatePurchaseResult struct {
	Result *domain.WriteResult
	// AlreadyExisted is true when the Idempotency-Key matched an earlier purchase.
	AlreadyExisted bool
}

// IdempotencyKey is a client-supplied Idempotency-Key scoped to the caller
// that sent it. Two callers using the same Key never share a purchase.
type IdempotencyKey struct {
	Owner string
	Key   string
}

// Empty reports whether the key should be ignored.
func (k IdempotencyKey) Empty() bool {
	return k.Owner == "" || k.Key == ""
}

// PurchaseService defines the order use cases.
type PurchaseService interface {
	Create(ctx context.Context, p *domain.Purchase, key IdempotencyKey) (*CreatePurchaseResult, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Purchase, error)
	Delete(ctx context.Context, id string) (*domain.WriteResult, error)
}

// WishlistService defines the wishlist use cases.
type WishlistService interface {
	Add(ctx context.Context, item *domain.WishlistItem) (*domain.WriteResult, error)
	ListByUser(ctx context.Context, user string) ([]domain.WishlistItem, error)
}
