package ports

import (
	"context"

	"github.com/husen20ab/School/internal/core/domain"
)

// AuthResult is returned on successful login or signup: a freshly minted
// bearer token plus the authenticated account.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService validates credentials and issues sessions.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	// Signup creates an account with role "user" and auto-issues a
	// session, behaving like Login on success.
	Signup(ctx context.Context, username, password string) (*AuthResult, error)
}
