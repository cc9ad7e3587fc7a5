package repository

import (
	"github.com/shopspring/decimal"

	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
)

// SaleRepository persistence port for sale headers and their items.
type SaleRepository interface {
	// Create inserts the header only; items go through CreateItem so the use
	// case controls the transaction boundary.
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	// GetByID loads the header with its items.
	GetByID(id string) (*entity.Sale, error)
	ListByUser(userID string) ([]*entity.Sale, error)
	UpdatePaymentMethod(id, method string) error
	// CountItemsByProduct counts sale lines referencing a raw material,
	// guarding product deletion.
	CountItemsByProduct(productID string) (int64, error)
	// AggregateByUser returns total revenue and sale count for a tenant.
	AggregateByUser(userID string) (decimal.Decimal, int64, error)
}
