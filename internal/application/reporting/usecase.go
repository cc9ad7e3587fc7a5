package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// Timeframe presets offered by the accounting report.
var timeframes = map[string]SegmentOptions{
	"week":      {Period: PeriodDay, Count: 7},
	"month":     {Period: PeriodWeek, Count: 4},
	"sixMonths": {Period: PeriodMonth, Count: 6},
	"year":      {Period: PeriodMonth, Count: 12},
	"all":       {Period: PeriodYear, Historical: true},
}

// ReportUseCase read-side aggregation: loads one tenant's sales and ledger,
// then folds them in memory. No writes ever happen here.
type ReportUseCase struct {
	saleRepo     repository.SaleRepository
	menuItemRepo repository.MenuItemRepository
	productRepo  repository.ProductRepository
	logRepo      repository.InventoryLogRepository
}

// NewReportUseCase builds the use case.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	menuItemRepo repository.MenuItemRepository,
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) *ReportUseCase {
	return &ReportUseCase{
		saleRepo:     saleRepo,
		menuItemRepo: menuItemRepo,
		productRepo:  productRepo,
		logRepo:      logRepo,
	}
}

// Summary returns total revenue and sale count for the tenant.
func (uc *ReportUseCase) Summary(userID string) (*dto.SummaryResponse, error) {
	revenue, count, err := uc.saleRepo.AggregateByUser(userID)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{TotalRevenue: revenue, SaleCount: count}, nil
}

// Timeframe builds the accounting report for one of the preset timeframes,
// optionally filtered by payment method.
func (uc *ReportUseCase) Timeframe(userID, timeframeID, paymentMethod string) (*dto.TimeframeReportResponse, error) {
	opts, ok := timeframes[timeframeID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown timeframe", domain.ErrInvalidInput)
	}
	enriched, err := uc.enrichedSales(userID)
	if err != nil {
		return nil, err
	}
	if paymentMethod != "" {
		filtered := enriched[:0]
		for _, s := range enriched {
			if s.PaymentMethod == paymentMethod {
				filtered = append(filtered, s)
			}
		}
		enriched = filtered
	}

	segments := BuildSegments(enriched, opts)
	report := &dto.TimeframeReportResponse{
		Revenue: decimal.Zero,
		Expense: decimal.Zero,
		Profit:  decimal.Zero,
	}
	for _, seg := range segments {
		report.Segments = append(report.Segments, dto.SegmentResponse{
			Key:     seg.Key,
			Period:  string(seg.Period),
			Start:   seg.Start,
			End:     seg.End,
			Revenue: seg.Revenue,
			Expense: seg.Expense,
			Profit:  seg.Profit,
			Orders:  seg.Orders,
		})
		report.Revenue = report.Revenue.Add(seg.Revenue)
		report.Expense = report.Expense.Add(seg.Expense)
		report.Profit = report.Profit.Add(seg.Profit)
		report.Orders += seg.Orders
	}
	report.Margin = Margin(report.Revenue, report.Profit)
	return report, nil
}

// Analytics returns the PROFESSIONAL-plan view: sales in range, items ranked
// by sold quantity and the range totals.
func (uc *ReportUseCase) Analytics(userID string, start, end *time.Time) (*dto.AnalyticsResponse, error) {
	sales, err := uc.saleRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	menuByID, err := uc.menuItemsByID(userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalyticsResponse{TotalRevenue: decimal.Zero}
	qtyByItem := map[string]int64{}
	for _, s := range sales {
		if start != nil && s.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && s.CreatedAt.After(*end) {
			continue
		}
		sr := dto.SaleResponse{
			ID:            s.ID,
			Total:         s.Total,
			Tax:           s.Tax,
			Phone:         s.Phone,
			PaymentMethod: s.PaymentMethod,
			CreatedAt:     s.CreatedAt,
		}
		for _, item := range s.Items {
			sr.Items = append(sr.Items, dto.SaleItemResponse{
				ID:         item.ID,
				MenuItemID: item.MenuItemID,
				Qty:        item.Qty,
				Price:      item.Price,
			})
			qtyByItem[item.MenuItemID] += item.Qty
		}
		resp.Sales = append(resp.Sales, sr)
		resp.TotalRevenue = resp.TotalRevenue.Add(s.Total)
		resp.SaleCount++
	}

	for id, qty := range qtyByItem {
		name := "unknown"
		if m, ok := menuByID[id]; ok {
			name = m.Name
		}
		resp.TopItems = append(resp.TopItems, dto.TopMenuItemResponse{MenuItemID: id, Name: name, TotalQty: qty})
	}
	sort.Slice(resp.TopItems, func(i, j int) bool {
		if resp.TopItems[i].TotalQty != resp.TopItems[j].TotalQty {
			return resp.TopItems[i].TotalQty > resp.TopItems[j].TotalQty
		}
		return resp.TopItems[i].MenuItemID < resp.TopItems[j].MenuItemID
	})
	if len(resp.TopItems) > 10 {
		resp.TopItems = resp.TopItems[:10]
	}
	return resp, nil
}

// MaterialsSpend groups positive ledger entries per product: quantity bought,
// spend (product price × change), entry count and last purchase date.
func (uc *ReportUseCase) MaterialsSpend(userID string) ([]*dto.MaterialsSpendRowResponse, error) {
	logs, err := uc.logRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	productByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	rows := map[string]*dto.MaterialsSpendRowResponse{}
	for _, l := range logs {
		if l.Change <= 0 {
			continue
		}
		p, ok := productByID[l.ProductID]
		if !ok {
			continue
		}
		row, ok := rows[l.ProductID]
		if !ok {
			row = &dto.MaterialsSpendRowResponse{
				ProductID:    p.ID,
				ProductName:  p.Name,
				StockUnit:    p.StockUnit,
				TotalAmount:  decimal.Zero,
				LastPurchase: l.CreatedAt,
			}
			rows[l.ProductID] = row
		}
		row.TotalQty += l.Change
		row.TotalAmount = row.TotalAmount.Add(p.Price.Mul(decimal.NewFromInt(l.Change)))
		row.Entries++
		if l.CreatedAt.After(row.LastPurchase) {
			row.LastPurchase = l.CreatedAt
		}
	}

	out := make([]*dto.MaterialsSpendRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalAmount.GreaterThan(out[j].TotalAmount)
	})
	return out, nil
}

// enrichedSales loads the tenant's sales and computes per-sale revenue and
// expense with the cost fallback chain: menu item cost, then linked raw
// material price, then zero.
func (uc *ReportUseCase) enrichedSales(userID string) ([]EnrichedSale, error) {
	sales, err := uc.saleRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	menuByID, err := uc.menuItemsByID(userID)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	productByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	out := make([]EnrichedSale, 0, len(sales))
	for _, s := range sales {
		out = append(out, EnrichSale(s, menuByID, productByID))
	}
	return out, nil
}

// EnrichSale reduces one sale to report numbers. Pure; exported for tests.
func EnrichSale(s *entity.Sale, menuByID map[string]*entity.MenuItem, productByID map[string]*entity.Product) EnrichedSale {
	expense := decimal.Zero
	for _, item := range s.Items {
		cost := decimal.Zero
		if m, ok := menuByID[item.MenuItemID]; ok && m.Cost != nil {
			cost = *m.Cost
		} else if item.ProductID != "" {
			if p, ok := productByID[item.ProductID]; ok {
				cost = p.Price
			}
		}
		expense = expense.Add(cost.Mul(decimal.NewFromInt(item.Qty)))
	}
	return EnrichedSale{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		PaymentMethod: s.PaymentMethod,
		Revenue:       s.Total,
		Expense:       expense,
	}
}

func (uc *ReportUseCase) menuItemsByID(userID string) (map[string]*entity.MenuItem, error) {
	items, err := uc.menuItemRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.MenuItem, len(items))
	for _, m := range items {
		byID[m.ID] = m
	}
	return byID, nil
}
