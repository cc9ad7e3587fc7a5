package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a sellable item on a cafe's menu. Materials holds raw-material
// names referenced for informational costing only.
type MenuItem struct {
	ID        string
	UserID    string // owning tenant
	Name      string
	Price     decimal.Decimal  // sell price
	Cost      *decimal.Decimal // optional recorded cost; nil falls back to material price in reports
	Category  string
	Materials []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
