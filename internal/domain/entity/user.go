package entity

import "time"

// Valid roles for User. Admin is a disjoint operating mode, not a superset of
// user capability.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Subscription tiers. Gating is set membership, never ordinal comparison.
const (
	TierBasic        = "BASIC"
	TierProfessional = "PROFESSIONAL"
)

// User represents a cafe account (a tenant). Non-admin accounts start inactive
// and require explicit admin activation; admins count as active regardless of
// the stored flag.
type User struct {
	ID               string
	Name             string
	Phone            string // normalized 09XXXXXXXXX, unique
	PasswordHash     string // bcrypt hash, never plaintext past registration
	Role             string // admin, user
	SubscriptionTier string // BASIC, PROFESSIONAL
	Active           bool
	HasOnlineMenu    bool   // public menu page enabled by an admin
	CafeImageURL     string
	InstagramURL     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.Active || u.Role == RoleAdmin
}
