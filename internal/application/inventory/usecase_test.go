package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/inventory"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// The persistence layer never writes stock through Update.
	stock := stored.Stock
	cp := *p
	cp.Stock = stock
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustStock(productID string, change int64) (int64, error) {
	p, ok := r.products[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Stock += change
	return p.Stock, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeLogRepo struct {
	logs []*entity.InventoryLog
}

func (r *fakeLogRepo) Create(l *entity.InventoryLog) error {
	cp := *l
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeLogRepo) ListByProduct(productID string) ([]*entity.InventoryLog, error) {
	var out []*entity.InventoryLog
	for _, l := range r.logs {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) ListByUser(string) ([]*entity.InventoryLog, error) { return r.logs, nil }

func (r *fakeLogRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	for _, l := range r.logs {
		if l.ProductID == productID {
			sum += l.Change
		}
	}
	return sum, nil
}

func (r *fakeLogRepo) DeleteByProduct(productID string) error {
	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}

type fakeSaleRepo struct {
	repository.SaleRepository
	itemRefs map[string]int64
}

func (r *fakeSaleRepo) CountItemsByProduct(productID string) (int64, error) {
	return r.itemRefs[productID], nil
}

// fakeTxRunner hands the callback the same fakes; there is no rollback, which
// is fine because the fakes never fail mid-callback in these tests.
type fakeTxRunner struct {
	products *fakeProductRepo
	logs     *fakeLogRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.InventoryLogRepository) error) error {
	return fn(tx.products, tx.logs)
}

func buildUseCase() (*inventory.LedgerUseCase, *fakeProductRepo, *fakeLogRepo, *fakeSaleRepo) {
	products := newFakeProductRepo()
	logs := &fakeLogRepo{}
	sales := &fakeSaleRepo{itemRefs: map[string]int64{}}
	uc := inventory.NewLedgerUseCase(&fakeTxRunner{products: products, logs: logs}, products, logs, sales)
	return uc, products, logs, sales
}

const ownerID = "owner-1"

func createProduct(t *testing.T, uc *inventory.LedgerUseCase, stock int64) *dto.ProductResponse {
	t.Helper()
	p, err := uc.CreateProduct(context.Background(), ownerID, dto.CreateProductRequest{
		Name:      "Arabica beans",
		Price:     decimal.NewFromInt(450000),
		Stock:     stock,
		StockUnit: "kg",
		Category:  "coffee",
	})
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_InitialStockWritesLedgerEntry(t *testing.T) {
	uc, _, logs, _ := buildUseCase()

	p := createProduct(t, uc, 10)

	entries, err := logs.ListByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1, "a non-zero initial stock must produce one ledger entry")
	assert.Equal(t, int64(10), entries[0].Change)
	assert.Equal(t, entity.ReasonInitialStock, entries[0].Reason)
}

func TestCreateProduct_ZeroStockWritesNothing(t *testing.T) {
	uc, _, logs, _ := buildUseCase()

	p := createProduct(t, uc, 0)

	entries, err := logs.ListByProduct(p.ID)
	require.NoError(t, err)
	assert.Empty(t, entries, "zero initial stock must not touch the ledger")
}

func TestCreateProduct_Validation(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	_, err := uc.CreateProduct(context.Background(), ownerID, dto.CreateProductRequest{
		Name: "Milk", Price: decimal.Zero, Category: "dairy",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "non-positive price must be rejected")

	_, err = uc.CreateProduct(context.Background(), ownerID, dto.CreateProductRequest{
		Price: decimal.NewFromInt(100), Category: "dairy",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty name must be rejected")
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_AppendsEntryAndMovesCounter(t *testing.T) {
	uc, _, logs, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	out, err := uc.AdjustStock(context.Background(), ownerID, dto.AdjustStockRequest{
		ProductID: p.ID, Change: -3, Reason: "spoilage",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Stock)

	entries, _ := logs.ListByProduct(p.ID)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(-3), entries[1].Change)
	assert.Equal(t, "spoilage", entries[1].Reason)
}

func TestAdjustStock_StockEqualsLedgerSum(t *testing.T) {
	uc, products, logs, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	for _, change := range []int64{-3, 8, -14} {
		_, err := uc.AdjustStock(context.Background(), ownerID, dto.AdjustStockRequest{
			ProductID: p.ID, Change: change, Reason: "count",
		})
		require.NoError(t, err)
	}

	sum, err := logs.SumByProduct(p.ID)
	require.NoError(t, err)
	stored, err := products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, sum, stored.Stock,
		"the stock counter must always equal the sum of the ledger")
	assert.Equal(t, int64(1), stored.Stock)
}

func TestAdjustStock_NegativeResultPermitted(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	p := createProduct(t, uc, 2)

	out, err := uc.AdjustStock(context.Background(), ownerID, dto.AdjustStockRequest{
		ProductID: p.ID, Change: -5, Reason: "late count",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), out.Stock, "the ledger records reality, even oversold stock")
}

func TestAdjustStock_OwnershipEnforced(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	_, err := uc.AdjustStock(context.Background(), "someone-else", dto.AdjustStockRequest{
		ProductID: p.ID, Change: 1, Reason: "restock",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdjustStock_Validation(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	_, err := uc.AdjustStock(context.Background(), ownerID, dto.AdjustStockRequest{
		ProductID: p.ID, Change: 0, Reason: "noop",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero change is meaningless")

	_, err = uc.AdjustStock(context.Background(), ownerID, dto.AdjustStockRequest{
		ProductID: p.ID, Change: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "a reason is mandatory for the audit trail")

	_, err = uc.AdjustStock(context.Background(), ownerID, dto.AdjustStockRequest{
		ProductID: "missing", Change: 1, Reason: "restock",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_StockDiffBecomesManualCorrection(t *testing.T) {
	uc, _, logs, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	newStock := int64(4)
	out, err := uc.UpdateProduct(context.Background(), ownerID, p.ID, dto.UpdateProductRequest{
		Stock: &newStock,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Stock)

	entries, _ := logs.ListByProduct(p.ID)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(-6), entries[1].Change)
	assert.Equal(t, entity.ReasonManualCorrection, entries[1].Reason)
}

func TestUpdateProduct_SameStockNoLedgerEntry(t *testing.T) {
	uc, _, logs, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	name := "Robusta beans"
	sameStock := int64(10)
	_, err := uc.UpdateProduct(context.Background(), ownerID, p.ID, dto.UpdateProductRequest{
		Name: &name, Stock: &sameStock,
	})
	require.NoError(t, err)

	entries, _ := logs.ListByProduct(p.ID)
	assert.Len(t, entries, 1, "an unchanged stock value must not be logged")
}

func TestUpdateProduct_NegativePriceRejected(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	bad := decimal.NewFromInt(-1)
	_, err := uc.UpdateProduct(context.Background(), ownerID, p.ID, dto.UpdateProductRequest{Price: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_RemovesProductAndLedger(t *testing.T) {
	uc, products, logs, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	require.NoError(t, uc.DeleteProduct(context.Background(), ownerID, p.ID))

	stored, err := products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	entries, _ := logs.ListByProduct(p.ID)
	assert.Empty(t, entries, "the product's ledger goes with it")
}

func TestDeleteProduct_BlockedBySaleReferences(t *testing.T) {
	uc, _, _, sales := buildUseCase()
	p := createProduct(t, uc, 10)
	sales.itemRefs[p.ID] = 3

	err := uc.DeleteProduct(context.Background(), ownerID, p.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"products referenced by recorded sales must not be deletable")
}

func TestDeleteProduct_OwnershipEnforced(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	p := createProduct(t, uc, 10)

	err := uc.DeleteProduct(context.Background(), "someone-else", p.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_ReturnsEntriesForOwner(t *testing.T) {
	uc, _, _, _ := buildUseCase()
	p := createProduct(t, uc, 5)

	_, err := uc.AdjustStock(context.Background(), ownerID, dto.AdjustStockRequest{
		ProductID: p.ID, Change: 2, Reason: "restock",
	})
	require.NoError(t, err)

	entries, err := uc.Ledger(ownerID, p.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.ReasonInitialStock, entries[0].Reason)
	assert.Equal(t, "restock", entries[1].Reason)

	_, err = uc.Ledger("someone-else", p.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
