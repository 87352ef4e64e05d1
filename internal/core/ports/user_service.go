package ports

import (
	"context"
	"time"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// IssuedToken is a freshly minted credential.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// SaveProfileResult is returned by UserService.SaveProfile.
type SaveProfileResult struct {
	Result *domain.WriteResult
	Token  IssuedToken
}

// UpdateRoleInput carries the parameters of a role assignment.
type UpdateRoleInput struct {
	Requester string // email of the authenticated caller
	Email     string // target user
	Role      domain.Role
}

// UserService defines the user and session use cases.
type UserService interface {
	Login(ctx context.Context, email string) (IssuedToken, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) (*SaveProfileResult, error)
	UpdateRole(ctx context.Context, in UpdateRoleInput) (*domain.WriteResult, error)
	Get(ctx context.Context, email string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Delete(ctx context.Context, id string) (*domain.WriteResult, error)
	EnsureAdmin(ctx context.Context, email string) error
}
