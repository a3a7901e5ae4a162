package transport

import "time"

type RegisterRequest struct {
	Username     string `json:"username" validate:"required,min=3"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	ProfileImage string `json:"profileImage" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Username     string `json:"username" validate:"omitempty,min=3"`
	Password     string `json:"password" validate:"omitempty,min=6"`
	ProfileImage string `json:"profileImage" validate:"omitempty"`
}

// UserResponse is the public projection of a user record. It structurally
// lacks the password hash, so no serialization path can leak it.
type UserResponse struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UpdatedUserResponse is the reduced projection returned by profile updates.
type UpdatedUserResponse struct {
	ID           string `json:"_id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
