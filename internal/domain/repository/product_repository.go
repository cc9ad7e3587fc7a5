package repository

import "github.com/sarvcafe/cafepos-api/internal/domain/entity"

// ProductRepository persistence port for raw materials.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByUser(userID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock applies a signed delta atomically and returns the new counter.
	AdjustStock(productID string, change int64) (int64, error)
	Delete(id string) error
}
