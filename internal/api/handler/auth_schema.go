package handler

// credentialsRequest is shared by login and signup. The username pattern
// and length bounds are checked here, before any store access.
type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Password string `json:"password" validate:"required,min=3,max=100"`
}

// authResponse is returned by both login and signup.
type authResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	UserID   string `json:"user_id"`
}
