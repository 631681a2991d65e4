package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/husen20ab/School/internal/core/domain"
	"github.com/husen20ab/School/internal/core/ports"
)

// StudentService implements the scope-aware CRUD over student records.
type StudentService struct {
	repo  ports.StudentRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, users ports.UserRepository, log zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, users: users, log: log}
}

// List returns the records visible to the caller. Admin listings resolve
// each record's owner username for display; a failed lookup leaves the
// username empty rather than failing the whole listing.
func (s *StudentService) List(ctx context.Context, userID, role string) ([]*domain.Student, error) {
	scope := domain.ScopeForList(userID, role)

	records, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	if scope.All {
		s.resolveOwners(ctx, records)
	}
	return records, nil
}

// Get fetches a single record, enforcing ownership for non-admin callers.
func (s *StudentService) Get(ctx context.Context, id, userID, role string) (*domain.Student, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessStudent(userID, role, record) {
		return nil, domain.ErrForbidden
	}
	if role == domain.RoleAdmin {
		s.resolveOwners(ctx, []*domain.Student{record})
	}
	return record, nil
}

// Create persists a new record owned by ownerID and reads the stored form
// back so the caller receives canonical state. An empty read-back means
// the write silently failed and surfaces as an internal error.
func (s *StudentService) Create(ctx context.Context, input ports.StudentInput, ownerID string) (*domain.Student, error) {
	now := time.Now().UTC()
	record := &domain.Student{
		Name:      strings.TrimSpace(input.Name),
		Age:       input.Age,
		Courses:   cleanCourses(input.Courses),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Insert(ctx, record)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create student")
		return nil, fmt.Errorf("create student: %w", err)
	}

	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return nil, fmt.Errorf("create student: read-back of %s came up empty", id)
		}
		return nil, fmt.Errorf("create student: read-back: %w", err)
	}

	s.log.Info().Str("student_id", stored.ID).Str("owner_id", ownerID).Msg("student created")
	return stored, nil
}

// Update re-validates ownership exactly as Get, then applies the new
// fields. The owner is never part of the update. A matched-zero on the
// final write means the record vanished under a concurrent delete and is
// reported as not found.
func (s *StudentService) Update(ctx context.Context, id string, input ports.StudentInput, userID, role string) (*domain.Student, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessStudent(userID, role, current) {
		return nil, domain.ErrForbidden
	}

	err = s.repo.Update(ctx, id, ports.StudentUpdate{
		Name:    strings.TrimSpace(input.Name),
		Age:     input.Age,
		Courses: cleanCourses(input.Courses),
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleAdmin {
		s.resolveOwners(ctx, []*domain.Student{updated})
	}
	return updated, nil
}

// Delete removes a record after the same ownership check as Update.
func (s *StudentService) Delete(ctx context.Context, id, userID, role string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccessStudent(userID, role, current) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("student_id", id).Str("deleted_by", userID).Msg("student deleted")
	return nil
}

// resolveOwners annotates records with their owner's username. Lookup
// failures are tolerated: the username stays empty when the owning account
// no longer exists.
func (s *StudentService) resolveOwners(ctx context.Context, records []*domain.Student) {
	owners := make(map[string]string)
	for _, r := range records {
		username, seen := owners[r.OwnerID]
		if !seen {
			owner, err := s.users.FindByID(ctx, r.OwnerID)
			if err == nil {
				username = owner.Username
			}
			owners[r.OwnerID] = username
		}
		r.OwnerUsername = username
	}
}

// cleanCourses trims each entry and drops the ones that are empty or
// whitespace-only. The result is never nil so the field serializes as [].
func cleanCourses(courses []string) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
