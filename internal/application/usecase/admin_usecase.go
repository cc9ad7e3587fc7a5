package usecase

import (
	"fmt"
	"time"

	"github.com/sarvcafe/cafepos-api/internal/application/auth"
	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// AdminUseCase admin console operations over tenant accounts. Route guards
// ensure only admin sessions reach these.
type AdminUseCase struct {
	userRepo repository.UserRepository
}

// NewAdminUseCase builds the use case.
func NewAdminUseCase(userRepo repository.UserRepository) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo}
}

// ListUsers returns all accounts, newest first.
func (uc *AdminUseCase) ListUsers() ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// SetActive flips account activation. This is the only transition from
// inactive to active.
func (uc *AdminUseCase) SetActive(in dto.SetActiveRequest) (*dto.UserResponse, error) {
	user, err := uc.mustGet(in.UserID)
	if err != nil {
		return nil, err
	}
	user.Active = in.Active
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// SetPlan changes an account's subscription tier.
func (uc *AdminUseCase) SetPlan(in dto.SetPlanRequest) (*dto.UserResponse, error) {
	if in.SubscriptionTier != entity.TierBasic && in.SubscriptionTier != entity.TierProfessional {
		return nil, fmt.Errorf("%w: unknown subscription tier", domain.ErrInvalidInput)
	}
	user, err := uc.mustGet(in.UserID)
	if err != nil {
		return nil, err
	}
	user.SubscriptionTier = in.SubscriptionTier
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// SetOnlineMenu toggles the public menu page for an account.
func (uc *AdminUseCase) SetOnlineMenu(in dto.SetOnlineMenuRequest) (*dto.UserResponse, error) {
	user, err := uc.mustGet(in.UserID)
	if err != nil {
		return nil, err
	}
	user.HasOnlineMenu = in.HasOnlineMenu
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

func (uc *AdminUseCase) mustGet(userID string) (*entity.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
