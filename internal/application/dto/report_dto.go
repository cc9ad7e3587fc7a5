package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryResponse dashboard totals for one tenant.
type SummaryResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	SaleCount    int64           `json:"sale_count"`
}

// SegmentResponse one period bucket of the accounting report.
type SegmentResponse struct {
	Key     string          `json:"key"`
	Period  string          `json:"period"`
	Start   time.Time       `json:"start"`
	End     time.Time       `json:"end"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
	Orders  int             `json:"orders"`
}

// TimeframeReportResponse the full accounting report for a timeframe.
// Margin is nil when revenue is zero and renders as "no data".
type TimeframeReportResponse struct {
	Segments []SegmentResponse `json:"segments"`
	Revenue  decimal.Decimal   `json:"revenue"`
	Expense  decimal.Decimal   `json:"expense"`
	Profit   decimal.Decimal   `json:"profit"`
	Orders   int               `json:"orders"`
	Margin   *decimal.Decimal  `json:"margin"`
}

// TopMenuItemResponse quantity ranking entry for the analytics view.
type TopMenuItemResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	TotalQty   int64  `json:"total_qty"`
}

// AnalyticsResponse PROFESSIONAL-plan analytics output.
type AnalyticsResponse struct {
	Sales        []SaleResponse        `json:"sales"`
	TopItems     []TopMenuItemResponse `json:"top_items"`
	TotalRevenue decimal.Decimal       `json:"total_revenue"`
	SaleCount    int64                 `json:"sale_count"`
}

// MaterialsSpendRowResponse per-product purchase totals built from positive
// ledger entries.
type MaterialsSpendRowResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	StockUnit    string          `json:"stock_unit,omitempty"`
	TotalQty     int64           `json:"total_qty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Entries      int             `json:"entries"`
	LastPurchase time.Time       `json:"last_purchase"`
}
