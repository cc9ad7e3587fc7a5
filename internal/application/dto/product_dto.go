package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest raw material creation input. A non-zero initial stock
// produces one "initial stock" ledger entry in the same transaction.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	Stock          int64           `json:"stock"`
	StockUnit      string          `json:"stock_unit"`
	Category       string          `json:"category" validate:"required"`
	PurchaseDate   string          `json:"purchase_date"`
	ExpirationDate string          `json:"expiration_date"`
}

// UpdateProductRequest raw material patch. A present Stock that differs from
// the current counter is logged as a "manual correction" ledger entry.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Price          *decimal.Decimal `json:"price"`
	Stock          *int64           `json:"stock"`
	StockUnit      *string          `json:"stock_unit"`
	Category       *string          `json:"category"`
	ExpirationDate *string          `json:"expiration_date"`
}

// AdjustStockRequest manual stock delta with an audit reason.
type AdjustStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Change    int64  `json:"change" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

// ProductResponse raw material output.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Stock          int64           `json:"stock"`
	StockUnit      string          `json:"stock_unit,omitempty"`
	Category       string          `json:"category"`
	PurchaseDate   string          `json:"purchase_date,omitempty"`
	ExpirationDate string          `json:"expiration_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InventoryLogResponse one ledger entry.
type InventoryLogResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Change    int64     `json:"change"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
