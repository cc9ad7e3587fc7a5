package entity

import "time"

// Customer is a read-mostly loyalty record for a cafe's patron.
type Customer struct {
	ID            string
	UserID        string // owning tenant
	Name          string
	Phone         string // optional normalized phone, empty when absent
	LoyaltyPoints int64
	CreatedAt     time.Time
}
