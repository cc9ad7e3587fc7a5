package dto

import "time"

// RegisterRequest registration input (password is hashed in the use case).
type RegisterRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=200"`
	Phone            string `json:"phone" validate:"required"`
	Password         string `json:"password" validate:"required,min=6"`
	SubscriptionTier string `json:"subscription_tier" validate:"required,oneof=BASIC PROFESSIONAL"`
}

// LoginRequest login input.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse account output (no password hash).
type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	SubscriptionTier string    `json:"subscription_tier"`
	Active           bool      `json:"active"`
	HasOnlineMenu    bool      `json:"has_online_menu"`
	CafeImageURL     string    `json:"cafe_image_url,omitempty"`
	InstagramURL     string    `json:"instagram_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LoginResponse login output with session token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse tenant-facing profile fields.
type ProfileResponse struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	CafeImageURL string `json:"cafe_image_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
}

// UpdateProfileRequest profile patch input.
type UpdateProfileRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	CafeImageURL string `json:"cafe_image_url"`
	InstagramURL string `json:"instagram_url"`
}
