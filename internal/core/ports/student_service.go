package ports

import (
	"context"

	"github.com/husen20ab/School/internal/core/domain"
)

// StudentInput carries the caller-supplied record fields for create and
// update. The owner is never part of the payload; it is stamped from the
// caller's identity at creation time.
type StudentInput struct {
	Name    string
	Age     int
	Courses []string
}

// StudentService defines the scope-aware CRUD operations over student
// records. Every operation receives the already-resolved caller identity
// and role; ownership is enforced per record.
type StudentService interface {
	List(ctx context.Context, userID, role string) ([]*domain.Student, error)
	Get(ctx context.Context, id, userID, role string) (*domain.Student, error)
	Create(ctx context.Context, input StudentInput, ownerID string) (*domain.Student, error)
	Update(ctx context.Context, id string, input StudentInput, userID, role string) (*domain.Student, error)
	Delete(ctx context.Context, id, userID, role string) error
}
