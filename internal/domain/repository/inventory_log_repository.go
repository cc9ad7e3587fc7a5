package repository

import "github.com/sarvcafe/cafepos-api/internal/domain/entity"

// InventoryLogRepository persistence port for the append-only stock ledger.
type InventoryLogRepository interface {
	Create(log *entity.InventoryLog) error
	ListByProduct(productID string) ([]*entity.InventoryLog, error)
	// ListByUser returns all entries for products owned by the tenant,
	// newest first.
	ListByUser(userID string) ([]*entity.InventoryLog, error)
	// SumByProduct folds the ledger into the reconstructed stock counter.
	SumByProduct(productID string) (int64, error)
	DeleteByProduct(productID string) error
}
