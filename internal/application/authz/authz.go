// Package authz holds the pure authorization gate: plan and role decisions
// over a verified session payload, with no HTTP or storage dependencies.
package authz

import "github.com/sarvcafe/cafepos-api/internal/domain/entity"

// Gate failure reasons. Machine-checkable via Decision.Reason.
const (
	ReasonNoSession        = "no active session"
	ReasonPlanInsufficient = "plan insufficient"
	ReasonAdminRequired    = "admin role required"
	ReasonAdminExcluded    = "admin accounts use the admin console"
)

// Session is the verified token payload attached to a request.
type Session struct {
	UserID string
	Role   string
	Tier   string
}

// Decision is the tagged result of a gate check. Authorized=false always
// carries a Reason; callers must short-circuit without touching data.
type Decision struct {
	Authorized bool
	Session    *Session
	Reason     string
}

func deny(reason string) Decision {
	return Decision{Authorized: false, Reason: reason}
}

func allow(s *Session) Decision {
	return Decision{Authorized: true, Session: s}
}

// CheckPlan allows the session when its tier is a member of the allowed set.
// Tiers are compared by membership only; PROFESSIONAL does not imply BASIC.
func CheckPlan(s *Session, tiers ...string) Decision {
	if s == nil {
		return deny(ReasonNoSession)
	}
	for _, t := range tiers {
		if s.Tier == t {
			return allow(s)
		}
	}
	return deny(ReasonPlanInsufficient)
}

// CheckAdmin allows only admin sessions.
func CheckAdmin(s *Session) Decision {
	if s == nil {
		return deny(ReasonNoSession)
	}
	if s.Role != entity.RoleAdmin {
		return deny(ReasonAdminRequired)
	}
	return allow(s)
}

// CheckUser allows only non-admin sessions: admin is a disjoint mode and is
// kept out of tenant-facing surfaces.
func CheckUser(s *Session) Decision {
	if s == nil {
		return deny(ReasonNoSession)
	}
	if s.Role == entity.RoleAdmin {
		return deny(ReasonAdminExcluded)
	}
	return allow(s)
}
