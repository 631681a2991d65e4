package handler

import "time"

// studentRequest is the payload for both create and update. Courses may be
// omitted; empty and whitespace-only entries are stripped by the service.
// There is no owner field: ownership is stamped from the caller's session.
type studentRequest struct {
	Name    string   `json:"name"    validate:"required,min=1"`
	Age     int      `json:"age"     validate:"gte=0"`
	Courses []string `json:"courses"`
}

// studentResponse is the transport view of a record. OwnerUsername is only
// populated for admin callers.
type studentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Courses       []string  `json:"courses"`
	OwnerID       string    `json:"owner_id"`
	OwnerUsername string    `json:"owner_username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}
