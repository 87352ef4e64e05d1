package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// PurchaseRepository implements ports.PurchaseRepository using MongoDB.
type PurchaseRepository struct {
	col *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{col: db.Collection(collectionPurchases)}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *domain.Purchase) (*domain.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert purchase: %w", err)
	}
	return insertResult(res), nil
}

func (r *PurchaseRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Purchase, error) {
	items, err := findAll[domain.Purchase](ctx, r.col, bson.M{"buyerEmail": buyerEmail})
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return items, nil
}

func (r *PurchaseRepository) DeleteByID(ctx context.Context, id string) (*domain.WriteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete purchase: %w", err)
	}
	return deleteResult(res), nil
}

// WishlistRepository implements ports.WishlistRepository using MongoDB.
type WishlistRepository struct {
	col *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{col: db.Collection(collectionWishlist)}
}

func (r *WishlistRepository) Create(ctx context.Context, item *domain.WishlistItem) (*domain.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert wishlist item: %w", err)
	}
	return insertResult(res), nil
}

func (r *WishlistRepository) ListByUser(ctx context.Context, user string) ([]domain.WishlistItem, error) {
	items, err := findAll[domain.WishlistItem](ctx, r.col, bson.M{"user": user})
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return items, nil
}
