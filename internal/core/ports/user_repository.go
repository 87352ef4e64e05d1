package ports

import (
	"context"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence operations for marketplace users.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no document matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpsertProfile sets the profile fields of the user identified by email,
	// creating the document when missing.
	UpsertProfile(ctx context.Context, profile domain.UserProfile) (*domain.WriteResult, error)
	// UpsertRole sets email and role on the matching document, creating it when missing.
	UpsertRole(ctx context.Context, email string, role domain.Role) (*domain.WriteResult, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	DeleteByID(ctx context.Context, id string) (*domain.WriteResult, error)
}
