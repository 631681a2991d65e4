// Package session holds the in-process registry mapping bearer tokens to
// authenticated identities.
//
// The registry lives for the lifetime of the process: sessions are created
// at login/signup, resolved on every protected request, and lost on
// restart. There is no TTL and no revocation.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/husen20ab/School/internal/core/domain"
)

// tokenBytes is the entropy drawn per token: 32 random bytes, hex-encoded
// to 64 characters, which makes brute-force guessing infeasible.
const tokenBytes = 32

// Session is one live token mapping.
type Session struct {
	Token     string
	UserID    string
	Username  string
	Role      string
	CreatedAt time.Time
}

// Registry is a concurrency-safe token store. Construct with NewRegistry
// and inject it where sessions are minted or resolved; it is not a package
// global.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Session)}
}

// Create mints a fresh token for the given identity and stores the
// mapping. A new login never invalidates prior tokens for the same user;
// concurrent sessions are allowed.
func (r *Registry) Create(userID, username, role string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		token, err := newToken()
		if err != nil {
			return "", err
		}
		// Collisions are theoretical at this entropy, but regenerate
		// rather than silently replacing another caller's session.
		if _, exists := r.sessions[token]; exists {
			continue
		}
		r.sessions[token] = Session{
			Token:     token,
			UserID:    userID,
			Username:  username,
			Role:      role,
			CreatedAt: time.Now().UTC(),
		}
		return token, nil
	}
}

// Resolve returns the session for token, or domain.ErrInvalidSession when
// the token is unknown.
func (r *Registry) Resolve(token string) (Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return Session{}, domain.ErrInvalidSession
	}
	return s, nil
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
