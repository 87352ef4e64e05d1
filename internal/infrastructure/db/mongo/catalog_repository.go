package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// CategoryRepository implements ports.CategoryRepository using MongoDB.
type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(collectionCategories)}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	cats, err := findAll[domain.Category](ctx, r.col, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// ProductRepository implements ports.ProductRepository using MongoDB.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return insertResult(res), nil
}

// Find returns products matching every non-zero field of f.
func (r *ProductRepository) Find(ctx context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	products, err := findAll[domain.Product](ctx, r.col, productFilter(f))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return products, nil
}

func productFilter(f ports.ProductFilter) bson.M {
	filter := bson.M{}
	if f.CategoryID != "" {
		filter["category_id"] = f.CategoryID
	}
	if f.Seller != "" {
		filter["seller"] = f.Seller
	}
	if f.AdvertisedOnly {
		filter["ad"] = true
	}
	return filter
}

func (r *ProductRepository) MarkAdvertised(ctx context.Context, id string) (*domain.WriteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"ad": true}})
	if err != nil {
		return nil, fmt.Errorf("advertise product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}
	return updateResult(res), nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id string) (*domain.WriteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return deleteResult(res), nil
}
