package auth

import (
	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/internal/users"
)

// LoginRequest captures the user credentials sent to the login endpoint.
// GuestCartToken, when present, merges the anonymous cart into the account.
type LoginRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required"`
	GuestCartToken *string `json:"guest_cart_token,omitempty"`
}

// RegisterRequest contains the payload required to create a customer account.
type RegisterRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	GuestCartToken *string `json:"guest_cart_token,omitempty"`
}

// AuthResponse contains the tokens and user produced by a successful login or registration.
type AuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}
