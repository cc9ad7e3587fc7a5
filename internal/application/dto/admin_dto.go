package dto

// SetActiveRequest admin activation toggle.
type SetActiveRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Active bool   `json:"active"`
}

// SetPlanRequest admin plan change.
type SetPlanRequest struct {
	UserID           string `json:"user_id" validate:"required"`
	SubscriptionTier string `json:"subscription_tier" validate:"required,oneof=BASIC PROFESSIONAL"`
}

// SetOnlineMenuRequest admin online-menu toggle.
type SetOnlineMenuRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	HasOnlineMenu bool   `json:"has_online_menu"`
}

// PlanCheckRequest subscription check input for the current session.
type PlanCheckRequest struct {
	Plan string `json:"plan" validate:"required,oneof=BASIC PROFESSIONAL"`
}

// PlanCheckResponse subscription check outcome.
type PlanCheckResponse struct {
	Authorized       bool   `json:"authorized"`
	SubscriptionTier string `json:"subscription_tier,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// UpgradeRequest plan upgrade intent (admin approval required).
type UpgradeRequest struct {
	SubscriptionTier string `json:"subscription_tier" validate:"required,oneof=BASIC PROFESSIONAL"`
}
