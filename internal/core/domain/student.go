package domain

import (
	"errors"
	"time"
)

var ErrStudentNotFound = errors.New("student not found")

// Student is the owned record type. OwnerID is stamped from the creating
// caller's identity and never changes afterwards.
type Student struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Courses []string `json:"courses"`
	OwnerID string   `json:"owner_id"`
	// OwnerUsername is resolved for admin callers only; empty when the
	// owning account no longer exists.
	OwnerUsername string    `json:"owner_username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
