package sales

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
	"github.com/sarvcafe/cafepos-api/pkg/logger"
	"github.com/sarvcafe/cafepos-api/pkg/phone"
)

// SaleUseCase records sales with per-line price snapshots and generates the
// invoice PDF as a best-effort side effect after commit.
type SaleUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	menuItemRepo repository.MenuItemRepository
	userRepo     repository.UserRepository
	invoiceGen   InvoiceGenerator
	invoiceDir   string
	log          *logger.Logger
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	menuItemRepo repository.MenuItemRepository,
	userRepo repository.UserRepository,
	invoiceGen InvoiceGenerator,
	invoiceDir string,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		menuItemRepo: menuItemRepo,
		userRepo:     userRepo,
		invoiceGen:   invoiceGen,
		invoiceDir:   invoiceDir,
		log:          log,
	}
}

// CreateSale validates the requested lines, snapshots each price from the
// menu item's current price, and persists header plus items atomically.
// The optional phone is normalized; an invalid one is stored as absent rather
// than rejected. Invoice PDF generation failure never fails the sale.
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", domain.ErrInvalidInput)
	}
	for _, line := range in.Items {
		if line.Qty <= 0 {
			return nil, fmt.Errorf("%w: quantities must be positive", domain.ErrInvalidInput)
		}
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentPOS
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: unknown payment method", domain.ErrInvalidInput)
	}

	ids := make([]string, 0, len(in.Items))
	for _, line := range in.Items {
		ids = append(ids, line.MenuItemID)
	}
	menuItems, err := uc.menuItemRepo.ListByIDs(userID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}
	for _, line := range in.Items {
		if _, ok := byID[line.MenuItemID]; !ok {
			return nil, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, line.MenuItemID)
		}
	}

	normalizedPhone := ""
	if in.Phone != "" {
		// Explicit design choice: an invalid sale-time phone is dropped, not rejected.
		if p, ok := phone.Normalize(in.Phone); ok {
			normalizedPhone = p
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		UserID:        userID,
		Tax:           decimal.Zero,
		Phone:         normalizedPhone,
		PaymentMethod: method,
		CreatedAt:     now,
	}
	total := decimal.Zero
	for _, line := range in.Items {
		m := byID[line.MenuItemID]
		item := entity.SaleItem{
			ID:         uuid.New().String(),
			SaleID:     sale.ID,
			MenuItemID: m.ID,
			Qty:        line.Qty,
			Price:      m.Price, // frozen here, never recomputed
		}
		sale.Items = append(sale.Items, item)
		total = total.Add(m.Price.Mul(decimal.NewFromInt(line.Qty)))
	}
	sale.Total = total

	err = uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i := range sale.Items {
			if err := saleRepo.CreateItem(&sale.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale)
	resp.InvoicePath = uc.generateInvoice(ctx, userID, sale, byID)
	return resp, nil
}

// generateInvoice renders and writes the PDF. Failures are logged and
// reported as an empty path; the sale is already committed.
func (uc *SaleUseCase) generateInvoice(ctx context.Context, userID string, sale *entity.Sale, byID map[string]*entity.MenuItem) string {
	if uc.invoiceGen == nil {
		return ""
	}
	cafeName := "cafe"
	if user, err := uc.userRepo.GetByID(userID); err == nil && user != nil {
		cafeName = user.Name
	}
	data := InvoiceData{
		InvoiceID: sale.ID,
		CafeName:  cafeName,
		Phone:     sale.Phone,
		Total:     sale.Total,
	}
	for _, item := range sale.Items {
		name := "item"
		if m, ok := byID[item.MenuItemID]; ok {
			name = m.Name
		}
		data.Lines = append(data.Lines, InvoiceLine{Name: name, Qty: item.Qty, Price: item.Price})
	}
	pdfBytes, err := uc.invoiceGen.GenerateInvoicePDF(ctx, data)
	if err != nil {
		uc.log.Warn().Err(err).Str("sale_id", sale.ID).Msg("invoice pdf generation failed")
		return ""
	}
	if err := os.MkdirAll(uc.invoiceDir, 0o755); err != nil {
		uc.log.Warn().Err(err).Msg("invoice dir creation failed")
		return ""
	}
	path := filepath.Join(uc.invoiceDir, sale.ID+".pdf")
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		uc.log.Warn().Err(err).Str("sale_id", sale.ID).Msg("invoice pdf write failed")
		return ""
	}
	return path
}

// UpdatePaymentMethod replaces the payment method of an owned sale. Items and
// total are never recomputed.
func (uc *SaleUseCase) UpdatePaymentMethod(userID string, in dto.UpdatePaymentMethodRequest) (*dto.SaleResponse, error) {
	if in.SaleID == "" || in.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: sale_id and payment_method are required", domain.ErrInvalidInput)
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method", domain.ErrInvalidInput)
	}
	sale, err := uc.saleRepo.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if err := uc.saleRepo.UpdatePaymentMethod(sale.ID, in.PaymentMethod); err != nil {
		return nil, err
	}
	sale.PaymentMethod = in.PaymentMethod
	return toSaleResponse(sale), nil
}

// GetSale returns one owned sale with its frozen lines.
func (uc *SaleUseCase) GetSale(userID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale), nil
}

// ListSales returns the tenant's sales, newest first.
func (uc *SaleUseCase) ListSales(userID string) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// RegenerateInvoice renders the invoice PDF for an existing sale on demand.
func (uc *SaleUseCase) RegenerateInvoice(ctx context.Context, userID, saleID string) (string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return "", err
	}
	if sale == nil {
		return "", domain.ErrNotFound
	}
	if sale.UserID != userID {
		return "", domain.ErrForbidden
	}
	ids := make([]string, 0, len(sale.Items))
	for _, item := range sale.Items {
		ids = append(ids, item.MenuItemID)
	}
	menuItems, err := uc.menuItemRepo.ListByIDs(userID, ids)
	if err != nil {
		return "", err
	}
	byID := make(map[string]*entity.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}
	path := uc.generateInvoice(ctx, userID, sale, byID)
	if path == "" {
		return "", fmt.Errorf("invoice generation unavailable")
	}
	return path, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		Total:         s.Total,
		Tax:           s.Tax,
		Phone:         s.Phone,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt,
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Qty:        item.Qty,
			Price:      item.Price,
		})
	}
	return resp
}
