package ports

import (
	"context"

	"github.com/husen20ab/School/internal/core/domain"
)

// CreateUserInput is the admin-issued account creation payload.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// UpdateUserInput carries optional account mutations; nil fields are left
// unchanged.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
}

// UserService defines the admin-only account management operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes the target account. Deleting one's own account is
	// forbidden regardless of role.
	Delete(ctx context.Context, actingID, id string) error
}
