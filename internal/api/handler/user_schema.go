package handler

import "time"

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Password string `json:"password" validate:"required,min=3,max=100"`
	Role     string `json:"role"     validate:"required,oneof=admin user"`
}

// updateUserRequest carries optional mutations; absent fields leave the
// account unchanged.
type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50,username"`
	Password *string `json:"password" validate:"omitempty,min=3,max=100"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin user"`
}

// userResponse never carries password material.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
