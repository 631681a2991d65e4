package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/husen20ab/School/internal/core/domain"
	"github.com/husen20ab/School/internal/core/ports"
)

// UserService implements the admin-only account management surface.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create issues a new account with an admin-chosen role. Uniqueness is
// case-insensitive against the normalized username.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	username := normalizeUsername(input.Username)
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("create user: unknown role %q", input.Role)
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("create user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created by admin")
	return created, nil
}

// Update applies the provided account mutations. A rename re-checks
// case-insensitive uniqueness against other accounts.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := ports.UserUpdate{}

	if input.Username != nil {
		username := normalizeUsername(*input.Username)
		if username != current.Username {
			if _, err := s.repo.FindByUsername(ctx, username); err == nil {
				return nil, domain.ErrUsernameTaken
			} else if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, fmt.Errorf("update user: %w", err)
			}
		}
		update.Username = &username
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, fmt.Errorf("update user: unknown role %q", *input.Role)
		}
		update.Role = input.Role
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Delete removes the target account. The acting admin may not delete
// themselves; sessions already issued to the deleted account stay in the
// registry until restart.
func (s *UserService) Delete(ctx context.Context, actingID, id string) error {
	if !domain.CanDeleteUser(actingID, id) {
		return domain.ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Str("deleted_by", actingID).Msg("user deleted")
	return nil
}
