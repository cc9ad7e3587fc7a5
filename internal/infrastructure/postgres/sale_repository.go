package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, user_id, total, tax, phone, payment_method, created_at`

// SaleRepo implements the SaleRepository port on PostgreSQL (usable with pool or tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the adapter. Pass pool or tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserts the sale header only. Items go through CreateItem inside the
// same transaction.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.Total, sale.Tax, sale.Phone, sale.PaymentMethod, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserts one sale line. product_id is NULL when the line is not
// linked to a raw material.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	productID := (*string)(nil)
	if item.ProductID != "" {
		productID = &item.ProductID
	}
	query := `
		INSERT INTO sale_items (id, sale_id, menu_item_id, product_id, qty, price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.MenuItemID, productID, item.Qty, item.Price,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID loads the header with its items; nil when absent.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.Total, &s.Tax, &s.Phone, &s.PaymentMethod, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsBySale(id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// ListByUser lists the tenant's sales with items, newest first.
func (r *SaleRepo) ListByUser(userID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	byID := make(map[string]*entity.Sale)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.UserID, &s.Total, &s.Tax, &s.Phone, &s.PaymentMethod, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
		byID[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	itemQuery := `
		SELECT i.id, i.sale_id, i.menu_item_id, i.product_id, i.qty, i.price
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.user_id = $1`
	itemRows, err := r.q.Query(context.Background(), itemQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		item, err := scanSaleItem(itemRows)
		if err != nil {
			return nil, err
		}
		if s, ok := byID[item.SaleID]; ok {
			s.Items = append(s.Items, *item)
		}
	}
	return list, itemRows.Err()
}

// UpdatePaymentMethod rewrites the payment method only. Totals and item
// prices stay frozen.
func (r *SaleRepo) UpdatePaymentMethod(id, method string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET payment_method = $2 WHERE id = $1`, id, method)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// CountItemsByProduct counts sale lines referencing a raw material.
func (r *SaleRepo) CountItemsByProduct(productID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sale_items WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sale items by product: %w", err)
	}
	return count, nil
}

// AggregateByUser returns total revenue and sale count for a tenant.
func (r *SaleRepo) AggregateByUser(userID string) (decimal.Decimal, int64, error) {
	var total decimal.Decimal
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0), COUNT(*) FROM sales WHERE user_id = $1`, userID,
	).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("aggregate sales: %w", err)
	}
	return total, count, nil
}

func (r *SaleRepo) itemsBySale(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, menu_item_id, product_id, qty, price
		FROM sale_items WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		item, err := scanSaleItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanSaleItem(rows pgx.Rows) (*entity.SaleItem, error) {
	var item entity.SaleItem
	var productID *string
	if err := rows.Scan(&item.ID, &item.SaleID, &item.MenuItemID, &productID, &item.Qty, &item.Price); err != nil {
		return nil, fmt.Errorf("scan sale item: %w", err)
	}
	if productID != nil {
		item.ProductID = *productID
	}
	return &item, nil
}
