package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

type WishlistService struct {
	repo ports.WishlistRepository
	log  zerolog.Logger
}

func NewWishlistService(repo ports.WishlistRepository, log zerolog.Logger) *WishlistService {
	return &WishlistService{repo: repo, log: log}
}

func (s *WishlistService) Add(ctx context.Context, item *domain.WishlistItem) (*domain.WriteResult, error) {
	item.ID = ""
	item.CreatedAt = time.Now().UTC()

	res, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("add wishlist item: %w", err)
	}
	s.log.Debug().Str("user", item.User).Str("product_id", item.ProductID).Msg("wishlist item added")
	return res, nil
}

func (s *WishlistService) ListByUser(ctx context.Context, user string) ([]domain.WishlistItem, error) {
	return s.repo.ListByUser(ctx, user)
}
