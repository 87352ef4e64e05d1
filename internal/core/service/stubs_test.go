package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[string]*domain.User
	findErr error
	upserts int
}

func newStubUserRepo(users ...domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for i := range users {
		u := users[i]
		r.users[u.Email] = &u
	}
	return r
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) upsert(email string) (*domain.User, *domain.WriteResult) {
	r.upserts++
	if u, ok := r.users[email]; ok {
		return u, &domain.WriteResult{MatchedCount: 1, ModifiedCount: 1}
	}
	u := &domain.User{ID: strconv.Itoa(len(r.users) + 1), Email: email, Role: domain.RoleBuyer}
	r.users[email] = u
	return u, &domain.WriteResult{UpsertedCount: 1, UpsertedID: u.ID}
}

func (r *stubUserRepo) UpsertProfile(_ context.Context, p domain.UserProfile) (*domain.WriteResult, error) {
	u, res := r.upsert(p.Email)
	u.Name, u.Image = p.Name, p.Image
	if p.Role != nil && res.UpsertedCount == 1 {
		u.Role = *p.Role
	}
	return res, nil
}

func (r *stubUserRepo) UpsertRole(_ context.Context, email string, role domain.Role) (*domain.WriteResult, error) {
	u, res := r.upsert(email)
	u.Role = role
	return res, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) (*domain.WriteResult, error) {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return &domain.WriteResult{DeletedCount: 1}, nil
		}
	}
	return &domain.WriteResult{}, nil
}

type stubPurchaseRepo struct {
	items     []domain.Purchase
	createErr error
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *domain.Purchase) (*domain.WriteResult, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *p
	clone.ID = "p" + strconv.Itoa(len(r.items)+1)
	r.items = append(r.items, clone)
	return &domain.WriteResult{InsertedID: clone.ID}, nil
}

func (r *stubPurchaseRepo) ListByBuyer(_ context.Context, buyerEmail string) ([]domain.Purchase, error) {
	var out []domain.Purchase
	for _, p := range r.items {
		if p.BuyerEmail == buyerEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPurchaseRepo) DeleteByID(_ context.Context, id string) (*domain.WriteResult, error) {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &domain.WriteResult{DeletedCount: 1}, nil
		}
	}
	return &domain.WriteResult{}, nil
}

const stubPending = "pending"

type stubIdempotency struct {
	mu       sync.Mutex
	keys     map[ports.IdempotencyKey]string
	claimErr error
	released int
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[ports.IdempotencyKey]string)}
}

func (s *stubIdempotency) Claim(_ context.Context, key ports.IdempotencyKey) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimErr != nil {
		return "", false, s.claimErr
	}
	id, ok := s.keys[key]
	switch {
	case !ok:
		s.keys[key] = stubPending
		return "", true, nil
	case id == stubPending:
		return "", false, domain.ErrPurchaseInProgress
	default:
		return id, false, nil
	}
}

func (s *stubIdempotency) Complete(_ context.Context, key ports.IdempotencyKey, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = id
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, key ports.IdempotencyKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	s.released++
	return nil
}

type stubCategoryRepo struct{ items []domain.Category }

func (r *stubCategoryRepo) List(context.Context) ([]domain.Category, error) { return r.items, nil }

type stubProductRepo struct {
	items      []domain.Product
	lastFilter ports.ProductFilter
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.WriteResult, error) {
	clone := *p
	clone.ID = "prod" + strconv.Itoa(len(r.items)+1)
	r.items = append(r.items, clone)
	return &domain.WriteResult{InsertedID: clone.ID}, nil
}

func (r *stubProductRepo) Find(_ context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	r.lastFilter = f
	var out []domain.Product
	for _, p := range r.items {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.Seller != "" && p.Seller != f.Seller {
			continue
		}
		if f.AdvertisedOnly && !p.Advertised {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) MarkAdvertised(_ context.Context, id string) (*domain.WriteResult, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Advertised = true
			return &domain.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) DeleteByID(_ context.Context, id string) (*domain.WriteResult, error) {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &domain.WriteResult{DeletedCount: 1}, nil
		}
	}
	return &domain.WriteResult{}, nil
}

var errStore = errors.New("store unavailable")
