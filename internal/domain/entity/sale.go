package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods.
const (
	PaymentCash       = "CASH"
	PaymentCardToCard = "CARD_TO_CARD"
	PaymentPOS        = "POS"
)

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCardToCard, PaymentPOS:
		return true
	}
	return false
}

// Sale is an invoice header. Total is always the exact sum of its items'
// qty × price, with prices frozen at creation time.
type Sale struct {
	ID            string
	UserID        string // owning tenant
	Total         decimal.Decimal
	Tax           decimal.Decimal
	Phone         string // optional normalized customer phone, empty when absent
	PaymentMethod string
	CreatedAt     time.Time
	Items         []SaleItem
}

// SaleItem is one invoice line. Price is the menu item's price captured at
// sale time and immutable afterward. ProductID optionally links the line to a
// raw material for costing fallbacks.
type SaleItem struct {
	ID         string
	SaleID     string
	MenuItemID string
	ProductID  string // optional, empty when not linked
	Qty        int64
	Price      decimal.Decimal
}
