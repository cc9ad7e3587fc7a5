package usecase

import (
	"fmt"

	"github.com/sarvcafe/cafepos-api/internal/application/authz"
	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
	"github.com/sarvcafe/cafepos-api/pkg/logger"
)

// SubscriptionUseCase tenant-facing plan checks and upgrade intents. The plan
// itself only changes through the admin console.
type SubscriptionUseCase struct {
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewSubscriptionUseCase builds the use case.
func NewSubscriptionUseCase(userRepo repository.UserRepository, log *logger.Logger) *SubscriptionUseCase {
	return &SubscriptionUseCase{userRepo: userRepo, log: log}
}

// Check evaluates the session against a required plan. Gate failures come
// back as a tagged result, never as an error.
func (uc *SubscriptionUseCase) Check(s *authz.Session, in dto.PlanCheckRequest) (*dto.PlanCheckResponse, error) {
	if in.Plan != entity.TierBasic && in.Plan != entity.TierProfessional {
		return nil, fmt.Errorf("%w: unknown plan", domain.ErrInvalidInput)
	}
	d := authz.CheckPlan(s, in.Plan)
	resp := &dto.PlanCheckResponse{Authorized: d.Authorized, Reason: d.Reason}
	if d.Session != nil {
		resp.SubscriptionTier = d.Session.Tier
	}
	return resp, nil
}

// RequestUpgrade records an upgrade intent for admin review. Downgrades and
// no-op requests are rejected; the stored tier is not touched here.
func (uc *SubscriptionUseCase) RequestUpgrade(userID string, in dto.UpgradeRequest) error {
	if in.SubscriptionTier != entity.TierProfessional {
		return fmt.Errorf("%w: only an upgrade to PROFESSIONAL can be requested", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.SubscriptionTier == entity.TierProfessional {
		return fmt.Errorf("%w: account is already on PROFESSIONAL", domain.ErrConflict)
	}
	uc.log.Info().
		Str("user_id", user.ID).
		Str("from", user.SubscriptionTier).
		Str("to", in.SubscriptionTier).
		Msg("plan upgrade requested")
	return nil
}
