package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implements the append-only ledger port on PostgreSQL (usable with pool or tx).
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository builds the adapter. Pass pool or tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create appends a ledger entry.
func (r *InventoryLogRepo) Create(log *entity.InventoryLog) error {
	query := `
		INSERT INTO inventory_logs (id, product_id, change, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ProductID, log.Change, log.Reason, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// ListByProduct returns a product's ledger, newest first.
func (r *InventoryLogRepo) ListByProduct(productID string) ([]*entity.InventoryLog, error) {
	query := `
		SELECT id, product_id, change, reason, created_at
		FROM inventory_logs WHERE product_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

// ListByUser returns all entries for products owned by the tenant, newest first.
func (r *InventoryLogRepo) ListByUser(userID string) ([]*entity.InventoryLog, error) {
	query := `
		SELECT l.id, l.product_id, l.change, l.reason, l.created_at
		FROM inventory_logs l
		JOIN products p ON p.id = l.product_id
		WHERE p.user_id = $1 ORDER BY l.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs by user: %w", err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

// SumByProduct folds the ledger into the reconstructed stock counter.
func (r *InventoryLogRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(change), 0) FROM inventory_logs WHERE product_id = $1`,
		productID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum inventory logs: %w", err)
	}
	return sum, nil
}

// DeleteByProduct removes a product's whole ledger. Only called when the
// product itself is being deleted.
func (r *InventoryLogRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory_logs WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete inventory logs: %w", err)
	}
	return nil
}

func scanLogs(rows pgx.Rows) ([]*entity.InventoryLog, error) {
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Change, &l.Reason, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
