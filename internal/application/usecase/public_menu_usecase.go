package usecase

import (
	"fmt"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
	"github.com/sarvcafe/cafepos-api/pkg/menushare"
)

// PublicMenuUseCase the unauthenticated shareable menu surface.
type PublicMenuUseCase struct {
	userRepo repository.UserRepository
	menuRepo repository.MenuItemRepository
}

// NewPublicMenuUseCase builds the use case.
func NewPublicMenuUseCase(userRepo repository.UserRepository, menuRepo repository.MenuItemRepository) *PublicMenuUseCase {
	return &PublicMenuUseCase{userRepo: userRepo, menuRepo: menuRepo}
}

// ShareSlug returns the owner's shareable link metadata. Tenants without the
// admin-set online-menu flag get ErrForbidden.
func (uc *PublicMenuUseCase) ShareSlug(userID string) (*dto.ShareSlugResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !user.HasOnlineMenu {
		return nil, fmt.Errorf("%w: online menu is not enabled for this account", domain.ErrForbidden)
	}
	return &dto.ShareSlugResponse{
		ShareSlug:    menushare.BuildSlug(user.Name, user.ID),
		CafeName:     user.Name,
		CafeImageURL: user.CafeImageURL,
		InstagramURL: user.InstagramURL,
	}, nil
}

// Resolve renders the public menu for a share slug. The user id is the part
// after the last "--"; menus render only for accounts with the online-menu
// flag set.
func (uc *PublicMenuUseCase) Resolve(slug string) (*dto.PublicMenuResponse, error) {
	_, userID, ok := menushare.ParseSlug(slug)
	if !ok {
		return nil, fmt.Errorf("%w: malformed menu link", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasOnlineMenu {
		// The flag and a missing account look the same from outside.
		return nil, domain.ErrNotFound
	}
	items, err := uc.menuRepo.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.PublicMenuResponse{
		CafeName:     user.Name,
		CafeImageURL: user.CafeImageURL,
		InstagramURL: user.InstagramURL,
		Items:        make([]dto.MenuItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, *toMenuItemResponse(item))
	}
	return resp, nil
}
