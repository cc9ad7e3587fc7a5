package dto

import "time"

// CreateCustomerRequest loyalty customer input. An invalid phone is dropped,
// not rejected, matching sale recording.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone"`
}

// CustomerResponse loyalty customer output.
type CustomerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	LoyaltyPoints int64     `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
}
