package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// TxRunner executes a function inside one DB transaction with a sale
// repository bound to it, so the header and its items persist as a unit.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}

// InvoiceLine one printable invoice line.
type InvoiceLine struct {
	Name  string
	Qty   int64
	Price decimal.Decimal
}

// InvoiceData everything the PDF generator needs for one invoice.
type InvoiceData struct {
	InvoiceID string
	CafeName  string
	Phone     string
	Total     decimal.Decimal
	Lines     []InvoiceLine
}

// InvoiceGenerator renders an invoice PDF. Implemented by the maroto adapter.
type InvoiceGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data InvoiceData) ([]byte, error)
}
