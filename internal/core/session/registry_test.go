package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/husen20ab/School/internal/core/domain"
)

func TestRegistry_CreateAndResolve(t *testing.T) {
	r := NewRegistry()

	token, err := r.Create("user_1", "alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(token))
	}

	s, err := r.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if s.UserID != "user_1" || s.Username != "alice" || s.Role != domain.RoleUser {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestRegistry_ResolveUnknownToken(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Resolve("deadbeef"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestRegistry_MultipleSessionsPerUser(t *testing.T) {
	r := NewRegistry()

	t1, err := r.Create("user_1", "alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	t2, err := r.Create("user_1", "alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("tokens must be distinct")
	}

	// The first token must stay valid after a second login.
	if _, err := r.Resolve(t1); err != nil {
		t.Fatalf("first token invalidated by second login: %v", err)
	}
	if r.Count() != 2 {
		t.Fatalf("expected 2 live sessions, got %d", r.Count())
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := r.Create("user_1", "alice", domain.RoleUser)
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			if _, err := r.Resolve(token); err != nil {
				t.Errorf("Resolve: %v", err)
			}
		}()
	}
	wg.Wait()

	if r.Count() != 32 {
		t.Fatalf("expected 32 sessions, got %d", r.Count())
	}
}
