package ports

import (
	"context"

	"github.com/husen20ab/School/internal/core/domain"
)

// UserUpdate carries the mutable account fields. Nil pointers leave the
// stored value untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Role         *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByUsername looks up by the normalized (lowercase) username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound for malformed or unknown ids.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Create inserts the user and reads the persisted form back so the
	// caller receives the store-assigned id.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	Delete(ctx context.Context, id string) error
}
