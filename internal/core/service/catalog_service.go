package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/utilize/marketplace-api/internal/api/metrics"
	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// CatalogService serves categories and product listings.
type CatalogService struct {
	categories ports.CategoryRepository
	products   ports.ProductRepository
	log        zerolog.Logger
}

func NewCatalogService(categories ports.CategoryRepository, products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{categories: categories, products: products, log: log}
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return s.products.Find(ctx, ports.ProductFilter{CategoryID: categoryID})
}

func (s *CatalogService) ProductsBySeller(ctx context.Context, seller string) ([]domain.Product, error) {
	return s.products.Find(ctx, ports.ProductFilter{Seller: seller})
}

func (s *CatalogService) AdvertisedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.Find(ctx, ports.ProductFilter{AdvertisedOnly: true})
}

// CreateProduct stores a new listing. Listings start unadvertised.
func (s *CatalogService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.WriteResult, error) {
	p.ID = ""
	p.Advertised = false
	p.CreatedAt = time.Now().UTC()

	res, err := s.products.Create(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Str("seller", p.Seller).Msg("failed to create product")
		return nil, fmt.Errorf("create product: %w", err)
	}

	metrics.ProductsCreatedTotal.Inc()
	s.log.Info().Str("product_id", res.InsertedID).Str("seller", p.Seller).Msg("product created")
	return res, nil
}

func (s *CatalogService) Advertise(ctx context.Context, id string) (*domain.WriteResult, error) {
	res, err := s.products.MarkAdvertised(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", id).Msg("product advertised")
	return res, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) (*domain.WriteResult, error) {
	res, err := s.products.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", id).Int64("deleted", res.DeletedCount).Msg("product deleted")
	return res, nil
}
