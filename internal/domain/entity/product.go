package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a raw material in a cafe's inventory. Stock is a running
// counter reconstructable as the sum of the product's ledger entries; every
// mutation goes through the paired stock-update + ledger-append operation.
type Product struct {
	ID             string
	UserID         string // owning tenant
	Name           string
	Price          decimal.Decimal // purchase price per unit
	Stock          int64
	StockUnit      string // free-form unit label (kg, pack, ...)
	Category       string
	PurchaseDate   string // Persian calendar date string, informational
	ExpirationDate string // Persian calendar date string, informational
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
