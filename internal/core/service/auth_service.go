package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/husen20ab/School/internal/core/domain"
	"github.com/husen20ab/School/internal/core/ports"
	"github.com/husen20ab/School/internal/core/session"
)

// LoginLimiter abstracts the failed-login throttle (Redis). A limiter
// outage must never lock users out, so callers treat limiter errors as
// advisory.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements login and signup against the credential store and
// the in-process session registry.
type AuthService struct {
	repo     ports.UserRepository
	sessions *session.Registry
	limiter  LoginLimiter
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions *session.Registry, limiter LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, limiter: limiter, log: log}
}

// Login validates credentials and mints a session. Unknown usernames and
// wrong passwords both fail with domain.ErrInvalidCredentials so the
// response never reveals whether an account exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	username = normalizeUsername(username)

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyFailures(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, allowing attempt")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}

	token, err := s.sessions.Create(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Signup creates an account with role "user" and auto-issues a session.
// The username check is case-insensitive: usernames are stored lowercase
// and looked up normalized.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	username = normalizeUsername(username)

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("signup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Create(created.ID, created.Username, created.Role)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.log.Info().Str("username", created.Username).Msg("account created via signup")
	return &ports.AuthResult{Token: token, User: created}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
