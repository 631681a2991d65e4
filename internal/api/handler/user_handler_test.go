package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/husen20ab/School/internal/core/domain"
	"github.com/husen20ab/School/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, actingID, id string) error
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, actingID, id string) error {
	return s.deleteFn(ctx, actingID, id)
}

func TestUserHandler_List_NoPasswordMaterial(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Username: "alice", Role: domain.RoleAdmin, PasswordHash: "$2a$10$secret"},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newStudentTestContext(t, http.MethodGet, "/api/users", "")
	asCaller(c, "u1", domain.RoleAdmin)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 user, got %d", len(resp))
	}
	for key := range resp[0] {
		if key == "password" || key == "password_hash" {
			t.Fatalf("password material leaked in response: %v", resp[0])
		}
	}
}

func TestUserHandler_Create_UnknownRoleRejected(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newStudentTestContext(t, http.MethodPost, "/api/users", `{"username":"bob","password":"xyz","role":"root"}`)
	asCaller(c, "u1", domain.RoleAdmin)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestUserHandler_Update_PartialPayload(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			if id != "u2" {
				t.Fatalf("unexpected id %q", id)
			}
			if input.Username != nil || input.Password != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			if input.Role == nil || *input.Role != domain.RoleAdmin {
				t.Fatalf("role not carried through")
			}
			return &domain.User{ID: id, Username: "john", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newStudentTestContext(t, http.MethodPut, "/api/users/u2", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u2")
	asCaller(c, "u1", domain.RoleAdmin)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_SelfPropagates(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, actingID, id string) error {
			if actingID != "u1" || id != "u1" {
				t.Fatalf("unexpected args: %s %s", actingID, id)
			}
			return domain.ErrSelfDelete
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newStudentTestContext(t, http.MethodDelete, "/api/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	asCaller(c, "u1", domain.RoleAdmin)

	if err := handler.Delete(c); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
}
