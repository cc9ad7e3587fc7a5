package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// LedgerUseCase owns every stock mutation path. Each one goes through the
// paired (stock update, ledger append) operation inside a single transaction,
// so Product.Stock always equals the sum of its ledger entries.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	logRepo     repository.InventoryLogRepository
	saleRepo    repository.SaleRepository
}

// NewLedgerUseCase builds the use case.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
	saleRepo repository.SaleRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		logRepo:     logRepo,
		saleRepo:    saleRepo,
	}
}

// CreateProduct creates a raw material. A non-zero initial stock appends one
// "initial stock" ledger entry atomically with the product row.
func (uc *LedgerUseCase) CreateProduct(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" || in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: name, price and category are required", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           in.Name,
		Price:          in.Price,
		Stock:          in.Stock,
		StockUnit:      in.StockUnit,
		Category:       in.Category,
		PurchaseDate:   in.PurchaseDate,
		ExpirationDate: in.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.Stock != 0 {
			return logRepo.Create(&entity.InventoryLog{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Change:    in.Stock,
				Reason:    entity.ReasonInitialStock,
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AdjustStock applies a signed delta with an audit reason. Ownership is
// enforced before any write; the counter increment and the ledger append
// commit together or not at all. Negative resulting stock is permitted.
func (uc *LedgerUseCase) AdjustStock(ctx context.Context, userID string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.ProductID == "" || in.Change == 0 || in.Reason == "" {
		return nil, fmt.Errorf("%w: product_id, a non-zero change and a reason are required", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.UserID != userID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		newStock, err := productRepo.AdjustStock(in.ProductID, in.Change)
		if err != nil {
			return err
		}
		product.Stock = newStock
		product.UpdatedAt = now
		return logRepo.Create(&entity.InventoryLog{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Change:    in.Change,
			Reason:    in.Reason,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateProduct patches product fields. When the patch carries a stock value
// that differs from the current counter, the delta is written as a
// "manual correction" ledger entry in the same transaction; other fields are
// replaced without logging.
func (uc *LedgerUseCase) UpdateProduct(ctx context.Context, userID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.StockUnit != nil {
		product.StockUnit = *in.StockUnit
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.ExpirationDate != nil {
		product.ExpirationDate = *in.ExpirationDate
	}

	var correction int64
	if in.Stock != nil && *in.Stock != product.Stock {
		correction = *in.Stock - product.Stock
	}
	now := time.Now()
	product.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		if err := productRepo.Update(product); err != nil {
			return err
		}
		if correction != 0 {
			newStock, err := productRepo.AdjustStock(product.ID, correction)
			if err != nil {
				return err
			}
			product.Stock = newStock
			return logRepo.Create(&entity.InventoryLog{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Change:    correction,
				Reason:    entity.ReasonManualCorrection,
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct removes a product and its ledger. Products referenced by any
// recorded sale line cannot be deleted (ErrConflict); the check happens
// before the destructive writes.
func (uc *LedgerUseCase) DeleteProduct(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return fmt.Errorf("%w: product id is required", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.UserID != userID {
		return domain.ErrForbidden
	}
	refs, err := uc.saleRepo.CountItemsByProduct(productID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: product has recorded sales", domain.ErrConflict)
	}
	// Ledger entries cascade first, then the product row.
	return uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		if err := logRepo.DeleteByProduct(productID); err != nil {
			return err
		}
		return productRepo.Delete(productID)
	})
}

// ListProducts returns the tenant's raw materials.
func (uc *LedgerUseCase) ListProducts(userID string) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Ledger returns the audit trail for one product, ownership enforced.
func (uc *LedgerUseCase) Ledger(userID, productID string) ([]*dto.InventoryLogResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.UserID != userID {
		return nil, domain.ErrForbidden
	}
	logs, err := uc.logRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, &dto.InventoryLogResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Change:    l.Change,
			Reason:    l.Reason,
			CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Stock:          p.Stock,
		StockUnit:      p.StockUnit,
		Category:       p.Category,
		PurchaseDate:   p.PurchaseDate,
		ExpirationDate: p.ExpirationDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
