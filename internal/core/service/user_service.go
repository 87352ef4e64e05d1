package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// TokenIssuer mints credentials for a principal.
type TokenIssuer interface {
	Issue(email string) (ports.IssuedToken, error)
}

// UserService implements login, profile upserts and role management.
type UserService struct {
	repo   ports.UserRepository
	tokens TokenIssuer
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens TokenIssuer, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, log: log}
}

// Login issues a credential for email. No password is involved: identity is
// established upstream by the client's identity provider.
func (s *UserService) Login(_ context.Context, email string) (ports.IssuedToken, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return ports.IssuedToken{}, domain.ErrUnauthenticated
	}
	return s.tokens.Issue(email)
}

// SaveProfile upserts the user's profile and returns a fresh credential. A
// requested role only applies when the user is created.
func (s *UserService) SaveProfile(ctx context.Context, profile domain.UserProfile) (*ports.SaveProfileResult, error) {
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Email == "" {
		return nil, domain.ErrUnauthenticated
	}
	if profile.Role != nil && !profile.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	res, err := s.repo.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	token, err := s.tokens.Issue(profile.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", profile.Email).Int64("upserted", res.UpsertedCount).Msg("user profile saved")
	return &ports.SaveProfileResult{Result: res, Token: token}, nil
}

// UpdateRole assigns a role. Callers may switch themselves between Buyer and
// Seller; granting Admin or touching another account requires an Admin caller.
func (s *UserService) UpdateRole(ctx context.Context, in ports.UpdateRoleInput) (*domain.WriteResult, error) {
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if in.Requester == "" {
		return nil, domain.ErrUnauthenticated
	}

	if in.Requester != in.Email || in.Role == domain.RoleAdmin {
		requester, err := s.repo.FindByEmail(ctx, in.Requester)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrForbidden
			}
			return nil, fmt.Errorf("update role: %w", err)
		}
		if requester.Role != domain.RoleAdmin {
			s.log.Warn().Str("requester", in.Requester).Str("target", in.Email).Str("role", in.Role.String()).Msg("role change denied")
			return nil, domain.ErrForbidden
		}
	}

	res, err := s.repo.UpsertRole(ctx, in.Email, in.Role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.log.Info().Str("requester", in.Requester).Str("email", in.Email).Str("role", in.Role.String()).Msg("role updated")
	return res, nil
}

func (s *UserService) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.repo.ListByRole(ctx, role)
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.WriteResult, error) {
	res, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Int64("deleted", res.DeletedCount).Msg("user deleted")
	return res, nil
}

// EnsureAdmin upserts email with the Admin role. Used at startup so a fresh
// deployment has someone able to grant roles.
func (s *UserService) EnsureAdmin(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := s.repo.UpsertRole(ctx, email, domain.RoleAdmin); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	s.log.Info().Str("email", email).Msg("bootstrap admin ensured")
	return nil
}
