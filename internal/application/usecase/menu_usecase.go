package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// MenuUseCase CRUD for a cafe's menu items.
type MenuUseCase struct {
	repo repository.MenuItemRepository
}

// NewMenuUseCase builds the use case.
func NewMenuUseCase(repo repository.MenuItemRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

// Create adds a menu item. Name and price are required; price and cost must
// be non-negative.
func (uc *MenuUseCase) Create(userID string, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Name == "" || in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: name and a positive price are required", domain.ErrInvalidInput)
	}
	if in.Cost != nil && in.Cost.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: cost cannot be negative", domain.ErrInvalidInput)
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Price:     in.Price,
		Cost:      in.Cost,
		Category:  in.Category,
		Materials: in.Materials,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if item.Materials == nil {
		item.Materials = []string{}
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Update patches an owned menu item. Price changes here never touch already
// recorded sale lines.
func (uc *MenuUseCase) Update(userID, itemID string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
		}
		item.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: cost cannot be negative", domain.ErrInvalidInput)
		}
		item.Cost = in.Cost
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Materials != nil {
		item.Materials = *in.Materials
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Delete removes an owned menu item.
func (uc *MenuUseCase) Delete(userID, itemID string) error {
	if _, err := uc.ownedItem(userID, itemID); err != nil {
		return err
	}
	return uc.repo.Delete(itemID)
}

// List returns the tenant's menu items.
func (uc *MenuUseCase) List(userID string) ([]*dto.MenuItemResponse, error) {
	items, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResponse(item))
	}
	return out, nil
}

// Categories returns the tenant's distinct menu categories.
func (uc *MenuUseCase) Categories(userID string) ([]string, error) {
	return uc.repo.Categories(userID)
}

func (uc *MenuUseCase) ownedItem(userID, itemID string) (*entity.MenuItem, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: menu item id is required", domain.ErrInvalidInput)
	}
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func toMenuItemResponse(m *entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Cost:      m.Cost,
		Category:  m.Category,
		Materials: m.Materials,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
