package repository

import "github.com/sarvcafe/cafepos-api/internal/domain/entity"

// MenuItemRepository persistence port for menu items.
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	ListByUser(userID string) ([]*entity.MenuItem, error)
	// ListByIDs resolves the given ids scoped to the tenant; ids that do not
	// exist or belong to another tenant are simply absent from the result.
	ListByIDs(userID string, ids []string) ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	Delete(id string) error
	Categories(userID string) ([]string, error)
}
