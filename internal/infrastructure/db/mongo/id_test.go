package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/husen20ab/School/internal/core/domain"
	"github.com/husen20ab/School/internal/core/ports"
)

// malformedIDs are rejected during ObjectID parsing, before any command
// is issued. The driver connects lazily, so no server is needed here.
var malformedIDs = []string{
	"",
	"zzz",
	"not-a-hex-id",
	"68b0c5f2a7e4d9012345678",   // 23 hex chars, one short
	"68b0c5f2a7e4d90123456789a", // 25 hex chars, one long
	"68b0c5f2a7e4d9012345678g",  // right length, non-hex
	"'; db.students.drop(); //",
}

func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	if err != nil {
		t.Fatalf("client setup: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("school_test")
}

func TestStudentRepository_MalformedIDReadsAsNotFound(t *testing.T) {
	repo := NewStudentRepository(testDatabase(t))
	ctx := context.Background()

	for _, id := range malformedIDs {
		if _, err := repo.FindByID(ctx, id); !errors.Is(err, domain.ErrStudentNotFound) {
			t.Fatalf("FindByID(%q): expected ErrStudentNotFound, got %v", id, err)
		}
		if err := repo.Update(ctx, id, ports.StudentUpdate{Name: "x", Age: 1}); !errors.Is(err, domain.ErrStudentNotFound) {
			t.Fatalf("Update(%q): expected ErrStudentNotFound, got %v", id, err)
		}
		if err := repo.Delete(ctx, id); !errors.Is(err, domain.ErrStudentNotFound) {
			t.Fatalf("Delete(%q): expected ErrStudentNotFound, got %v", id, err)
		}
	}
}

func TestUserRepository_MalformedIDReadsAsNotFound(t *testing.T) {
	repo := NewUserRepository(testDatabase(t))
	ctx := context.Background()

	for _, id := range malformedIDs {
		if _, err := repo.FindByID(ctx, id); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("FindByID(%q): expected ErrUserNotFound, got %v", id, err)
		}
		if err := repo.Update(ctx, id, ports.UserUpdate{}); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("Update(%q): expected ErrUserNotFound, got %v", id, err)
		}
		if err := repo.Delete(ctx, id); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("Delete(%q): expected ErrUserNotFound, got %v", id, err)
		}
	}
}
