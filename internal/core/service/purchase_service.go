package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/utilize/marketplace-api/internal/api/metrics"
	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// IdempotencyStore reserves Idempotency-Keys for purchases (Redis).
//
// Claim atomically reserves key for the caller. When the key is already taken
// it returns the purchase id recorded for it, or domain.ErrPurchaseInProgress
// while the owning request is still running.
type IdempotencyStore interface {
	Claim(ctx context.Context, key ports.IdempotencyKey) (purchaseID string, claimed bool, err error)
	Complete(ctx context.Context, key ports.IdempotencyKey, purchaseID string) error
	Release(ctx context.Context, key ports.IdempotencyKey) error
}

// PurchaseService places, lists and cancels orders.
type PurchaseService struct {
	repo        ports.PurchaseRepository
	idempotency IdempotencyStore
	log         zerolog.Logger
}

// NewPurchaseService returns a PurchaseService. idempotency may be nil, in
// which case Idempotency-Key headers are ignored.
func NewPurchaseService(repo ports.PurchaseRepository, idempotency IdempotencyStore, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{repo: repo, idempotency: idempotency, log: log}
}

// Create inserts a purchase. A repeated idempotency key returns the purchase
// created by the first request without writing again; a concurrent repeat is
// rejected with domain.ErrPurchaseInProgress.
func (s *PurchaseService) Create(ctx context.Context, p *domain.Purchase, key ports.IdempotencyKey) (*ports.CreatePurchaseResult, error) {
	useKey := !key.Empty() && s.idempotency != nil

	if useKey {
		id, claimed, err := s.idempotency.Claim(ctx, key)
		switch {
		case errors.Is(err, domain.ErrPurchaseInProgress):
			return nil, err
		case err != nil:
			s.log.Warn().Err(err).Str("idempotency_key", key.Key).Msg("idempotency claim failed, creating anyway")
			useKey = false
		case !claimed:
			metrics.IdempotentReplaysTotal.Inc()
			s.log.Info().Str("idempotency_key", key.Key).Str("purchase_id", id).Msg("idempotent replay")
			return &ports.CreatePurchaseResult{
				Result:         &domain.WriteResult{InsertedID: id},
				AlreadyExisted: true,
			}, nil
		}
	}

	p.ID = ""
	p.CreatedAt = time.Now().UTC()

	res, err := s.repo.Create(ctx, p)
	if err != nil {
		if useKey {
			if rerr := s.idempotency.Release(ctx, key); rerr != nil {
				s.log.Warn().Err(rerr).Str("idempotency_key", key.Key).Msg("failed to release idempotency key")
			}
		}
		s.log.Error().Err(err).Str("buyer", p.BuyerEmail).Msg("failed to create purchase")
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	if useKey {
		if err := s.idempotency.Complete(ctx, key, res.InsertedID); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", key.Key).Msg("failed to record idempotency key")
		}
	}

	metrics.PurchasesCreatedTotal.Inc()
	s.log.Info().Str("purchase_id", res.InsertedID).Str("buyer", p.BuyerEmail).Msg("purchase created")
	return &ports.CreatePurchaseResult{Result: res}, nil
}

func (s *PurchaseService) ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Purchase, error) {
	return s.repo.ListByBuyer(ctx, buyerEmail)
}

func (s *PurchaseService) Delete(ctx context.Context, id string) (*domain.WriteResult, error) {
	res, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("purchase_id", id).Int64("deleted", res.DeletedCount).Msg("purchase deleted")
	return res, nil
}
