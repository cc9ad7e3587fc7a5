package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest menu item creation input.
type CreateMenuItemRequest struct {
	Name      string           `json:"name" validate:"required,min=1,max=200"`
	Price     decimal.Decimal  `json:"price" validate:"required"`
	Cost      *decimal.Decimal `json:"cost"`
	Category  string           `json:"category"`
	Materials []string         `json:"materials"`
}

// UpdateMenuItemRequest menu item patch.
type UpdateMenuItemRequest struct {
	Name      *string          `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Cost      *decimal.Decimal `json:"cost"`
	Category  *string          `json:"category"`
	Materials *[]string        `json:"materials"`
}

// MenuItemResponse menu item output.
type MenuItemResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	Cost      *decimal.Decimal `json:"cost,omitempty"`
	Category  string           `json:"category,omitempty"`
	Materials []string         `json:"materials"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ShareSlugResponse shareable public menu link metadata for the owner.
type ShareSlugResponse struct {
	ShareSlug    string `json:"share_slug"`
	CafeName     string `json:"cafe_name"`
	CafeImageURL string `json:"cafe_image_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
}

// PublicMenuResponse unauthenticated menu view for one cafe.
type PublicMenuResponse struct {
	CafeName     string             `json:"cafe_name"`
	CafeImageURL string             `json:"cafe_image_url,omitempty"`
	InstagramURL string             `json:"instagram_url,omitempty"`
	Items        []MenuItemResponse `json:"items"`
}
