package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserProfile is the subset of the auth response persisted with the session.
type UserProfile struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token string `json:"token"`
	UserProfile
}
