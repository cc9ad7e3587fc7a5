package entity

import "time"

// Ledger reasons written by the inventory engine itself. Manual adjustments
// carry free-form reasons from the request.
const (
	ReasonInitialStock     = "initial stock"
	ReasonManualCorrection = "manual correction"
)

// InventoryLog is an immutable signed stock-change record. Entries are append
// only; they are never updated, and are deleted only when their product is
// deleted (which is allowed only for products without recorded sales).
type InventoryLog struct {
	ID        string
	ProductID string
	Change    int64 // signed delta applied to Product.Stock
	Reason    string
	CreatedAt time.Time
}
