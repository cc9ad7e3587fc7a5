package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

const menuItemColumns = `id, user_id, name, price, cost, category, materials, created_at, updated_at`

// MenuItemRepo implements the MenuItemRepository port on PostgreSQL (usable with pool or tx).
// Materials are stored as a text[] column.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository builds the adapter. Pass pool or tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// Create persists a new menu item.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (` + menuItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.Name, item.Price, item.Cost, item.Category,
		item.Materials, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID loads a menu item by ID; nil when absent.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`
	var m entity.MenuItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Price, &m.Cost, &m.Category, &m.Materials,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &m, nil
}

// ListByUser lists the tenant's menu items, newest first.
func (r *MenuItemRepo) ListByUser(userID string) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

// ListByIDs resolves the given ids scoped to the tenant. Ids that do not exist
// or belong to another tenant are simply absent from the result.
func (r *MenuItemRepo) ListByIDs(userID string, ids []string) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE user_id = $1 AND id = ANY($2)`
	rows, err := r.q.Query(context.Background(), query, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("list menu items by ids: %w", err)
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

// Update persists menu item changes.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET name = $2, price = $3, cost = $4, category = $5, materials = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Price, item.Cost, item.Category, item.Materials, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// Delete removes a menu item by ID.
func (r *MenuItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

// Categories returns the tenant's distinct non-empty categories, sorted.
func (r *MenuItemRepo) Categories(userID string) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM menu_items
		WHERE user_id = $1 AND category <> '' ORDER BY category`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanMenuItems(rows pgx.Rows) ([]*entity.MenuItem, error) {
	var list []*entity.MenuItem
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Price, &m.Cost, &m.Category,
			&m.Materials, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
