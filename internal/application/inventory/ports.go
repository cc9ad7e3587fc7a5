package inventory

import (
	"context"

	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// TxRunner executes a function inside one DB transaction, handing it
// repositories bound to that transaction. It is what makes the paired
// stock-update + ledger-append an all-or-nothing unit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
