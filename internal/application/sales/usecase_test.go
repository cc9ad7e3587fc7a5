package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/sales"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
	"github.com/sarvcafe/cafepos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.Sale{}}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	cp.Items = nil
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	s, ok := r.sales[item.SaleID]
	if !ok {
		return domain.ErrNotFound
	}
	s.Items = append(s.Items, *item)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) ListByUser(userID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdatePaymentMethod(id, method string) error {
	s, ok := r.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.PaymentMethod = method
	return nil
}

func (r *fakeSaleRepo) CountItemsByProduct(string) (int64, error) { return 0, nil }

func (r *fakeSaleRepo) AggregateByUser(userID string) (decimal.Decimal, int64, error) {
	total := decimal.Zero
	var count int64
	for _, s := range r.sales {
		if s.UserID == userID {
			total = total.Add(s.Total)
			count++
		}
	}
	return total, count, nil
}

type fakeMenuRepo struct {
	repository.MenuItemRepository
	items map[string]*entity.MenuItem
}

func (r *fakeMenuRepo) ListByIDs(userID string, ids []string) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if m, ok := r.items[id]; ok && m.UserID == userID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	repository.UserRepository
	users map[string]*entity.User
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

type fakeSaleTx struct {
	repo *fakeSaleRepo
}

func (tx *fakeSaleTx) RunSale(_ context.Context, fn func(repository.SaleRepository) error) error {
	return fn(tx.repo)
}

// recordingInvoiceGen captures the invoice data it was asked to render.
type recordingInvoiceGen struct {
	last *sales.InvoiceData
}

func (g *recordingInvoiceGen) GenerateInvoicePDF(_ context.Context, data sales.InvoiceData) ([]byte, error) {
	g.last = &data
	return []byte("%PDF-fake"), nil
}

const ownerID = "owner-1"

func buildUseCase(t *testing.T, gen sales.InvoiceGenerator) (*sales.SaleUseCase, *fakeSaleRepo, *fakeMenuRepo) {
	t.Helper()
	saleRepo := newFakeSaleRepo()
	menuRepo := &fakeMenuRepo{items: map[string]*entity.MenuItem{
		"espresso": {ID: "espresso", UserID: ownerID, Name: "Espresso", Price: decimal.NewFromInt(50000)},
		"latte":    {ID: "latte", UserID: ownerID, Name: "Latte", Price: decimal.NewFromInt(80000)},
		"foreign":  {ID: "foreign", UserID: "other-tenant", Name: "Mocha", Price: decimal.NewFromInt(90000)},
	}}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		ownerID: {ID: ownerID, Name: "کافه سرو"},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := sales.NewSaleUseCase(&fakeSaleTx{repo: saleRepo}, saleRepo, menuRepo, userRepo, gen, t.TempDir(), log)
	return uc, saleRepo, menuRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_TotalFromSnapshottedPrices(t *testing.T) {
	uc, _, _ := buildUseCase(t, nil)

	resp, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{
			{MenuItemID: "espresso", Qty: 1}, // 50000
			{MenuItemID: "latte", Qty: 1},    // 80000
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.NewFromInt(130000)),
		"total must be the sum of qty times the frozen line prices, got %s", resp.Total)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Price.Equal(decimal.NewFromInt(50000)))
	assert.True(t, resp.Items[1].Price.Equal(decimal.NewFromInt(80000)))
}

func TestCreateSale_SnapshotSurvivesMenuPriceChange(t *testing.T) {
	uc, saleRepo, menuRepo := buildUseCase(t, nil)

	resp, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "espresso", Qty: 2}},
	})
	require.NoError(t, err)

	// Reprice the menu item after the sale.
	menuRepo.items["espresso"].Price = decimal.NewFromInt(70000)

	stored, err := saleRepo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].Price.Equal(decimal.NewFromInt(50000)),
		"the recorded line price must not follow later menu edits")
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(100000)))
}

func TestCreateSale_DefaultPaymentMethod(t *testing.T) {
	uc, _, _ := buildUseCase(t, nil)

	resp, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "latte", Qty: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPOS, resp.PaymentMethod, "an omitted payment method defaults to POS")
}

func TestCreateSale_Validation(t *testing.T) {
	uc, _, _ := buildUseCase(t, nil)
	ctx := context.Background()

	_, err := uc.CreateSale(ctx, ownerID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "an empty item list must be rejected")

	_, err = uc.CreateSale(ctx, ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "espresso", Qty: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero quantity must be rejected")

	_, err = uc.CreateSale(ctx, ownerID, dto.CreateSaleRequest{
		Items:         []dto.SaleLineRequest{{MenuItemID: "espresso", Qty: 1}},
		PaymentMethod: "CHEQUE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown payment method must be rejected")
}

func TestCreateSale_UnknownMenuItem(t *testing.T) {
	uc, _, _ := buildUseCase(t, nil)

	_, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "nope", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_OtherTenantsItemInvisible(t *testing.T) {
	uc, _, _ := buildUseCase(t, nil)

	_, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "foreign", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"another tenant's menu item must look exactly like a missing one")
}

func TestCreateSale_PhoneNormalization(t *testing.T) {
	uc, saleRepo, _ := buildUseCase(t, nil)

	resp, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "espresso", Qty: 1}},
		Phone: "+989123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "09123456789", resp.Phone)

	resp, err = uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "espresso", Qty: 1}},
		Phone: "not-a-phone",
	})
	require.NoError(t, err, "an invalid phone is dropped, never rejected")
	assert.Empty(t, resp.Phone)

	stored, _ := saleRepo.GetByID(resp.ID)
	assert.Empty(t, stored.Phone)
}

func TestCreateSale_InvoiceBestEffort(t *testing.T) {
	gen := &recordingInvoiceGen{}
	uc, _, _ := buildUseCase(t, gen)

	resp, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "latte", Qty: 2}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.InvoicePath)

	require.NotNil(t, gen.last)
	assert.Equal(t, "کافه سرو", gen.last.CafeName)
	require.Len(t, gen.last.Lines, 1)
	assert.Equal(t, "Latte", gen.last.Lines[0].Name)
	assert.Equal(t, int64(2), gen.last.Lines[0].Qty)
}

func TestCreateSale_NilInvoiceGenerator(t *testing.T) {
	uc, _, _ := buildUseCase(t, nil)

	resp, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "espresso", Qty: 1}},
	})
	require.NoError(t, err, "a missing generator never fails the sale")
	assert.Empty(t, resp.InvoicePath)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdatePaymentMethod / GetSale
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatePaymentMethod(t *testing.T) {
	uc, saleRepo, _ := buildUseCase(t, nil)

	created, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "espresso", Qty: 1}},
	})
	require.NoError(t, err)

	resp, err := uc.UpdatePaymentMethod(ownerID, dto.UpdatePaymentMethodRequest{
		SaleID: created.ID, PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, resp.PaymentMethod)
	assert.True(t, resp.Total.Equal(created.Total), "the total is never recomputed")

	stored, _ := saleRepo.GetByID(created.ID)
	assert.Equal(t, entity.PaymentCash, stored.PaymentMethod)
}

func TestUpdatePaymentMethod_Ownership(t *testing.T) {
	uc, _, _ := buildUseCase(t, nil)

	created, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "espresso", Qty: 1}},
	})
	require.NoError(t, err)

	_, err = uc.UpdatePaymentMethod("someone-else", dto.UpdatePaymentMethodRequest{
		SaleID: created.ID, PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetSale(t *testing.T) {
	uc, _, _ := buildUseCase(t, nil)

	created, err := uc.CreateSale(context.Background(), ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{MenuItemID: "latte", Qty: 3}},
	})
	require.NoError(t, err)

	resp, err := uc.GetSale(ownerID, created.ID)
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(240000)))

	_, err = uc.GetSale(ownerID, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetSale("someone-else", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
