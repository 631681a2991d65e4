package ports

import (
	"context"

	"github.com/husen20ab/School/internal/core/domain"
)

// StudentUpdate carries the mutable record fields. The owner is never part
// of an update.
type StudentUpdate struct {
	Name    string
	Age     int
	Courses []string
}

// StudentRepository defines persistence operations for student records.
//
// Any externally supplied id that is not a structurally valid store
// identifier resolves to domain.ErrStudentNotFound, deliberately
// indistinguishable from an absent record.
type StudentRepository interface {
	// List returns records visible under scope; an unrestricted scope
	// returns every record.
	List(ctx context.Context, scope domain.Scope) ([]*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	// Insert persists the record and returns the store-assigned id.
	Insert(ctx context.Context, s *domain.Student) (string, error)
	Update(ctx context.Context, id string, update StudentUpdate) error
	Delete(ctx context.Context, id string) error
}
