package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest one requested invoice line. The price is never supplied by
// the client; it is snapshotted from the menu item at creation time.
type SaleLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Qty        int64  `json:"qty" validate:"required,min=1"`
}

// CreateSaleRequest sale creation input.
type CreateSaleRequest struct {
	Items         []SaleLineRequest `json:"items" validate:"required,min=1"`
	Phone         string            `json:"phone"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=CASH CARD_TO_CARD POS"`
}

// UpdatePaymentMethodRequest replaces the payment method of an existing sale.
type UpdatePaymentMethodRequest struct {
	SaleID        string `json:"sale_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=CASH CARD_TO_CARD POS"`
}

// SaleItemResponse one frozen invoice line.
type SaleItemResponse struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menu_item_id"`
	Qty        int64           `json:"qty"`
	Price      decimal.Decimal `json:"price"`
}

// SaleResponse invoice output. InvoicePath is set only when the best-effort
// PDF generation succeeded.
type SaleResponse struct {
	ID            string             `json:"id"`
	Total         decimal.Decimal    `json:"total"`
	Tax           decimal.Decimal    `json:"tax"`
	Phone         string             `json:"phone,omitempty"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items"`
	InvoicePath   string             `json:"invoice_path,omitempty"`
}
