package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

var _ repository.PrinterRepository = (*PrinterRepo)(nil)
var _ repository.PrintJobRepository = (*PrintJobRepo)(nil)

// PrinterRepo implements the PrinterRepository port on PostgreSQL (usable with pool or tx).
type PrinterRepo struct {
	q Querier
}

// NewPrinterRepository builds the adapter. Pass pool or tx (Querier).
func NewPrinterRepository(q Querier) *PrinterRepo {
	return &PrinterRepo{q: q}
}

// Create persists a new printer.
func (r *PrinterRepo) Create(printer *entity.Printer) error {
	query := `
		INSERT INTO printers (id, user_id, name, address, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		printer.ID, printer.UserID, printer.Name, printer.Address, printer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert printer: %w", err)
	}
	return nil
}

// GetByID loads a printer by ID; nil when absent.
func (r *PrinterRepo) GetByID(id string) (*entity.Printer, error) {
	query := `SELECT id, user_id, name, address, created_at FROM printers WHERE id = $1`
	var p entity.Printer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Address, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get printer: %w", err)
	}
	return &p, nil
}

// ListByUser lists the tenant's printers, oldest first.
func (r *PrinterRepo) ListByUser(userID string) ([]*entity.Printer, error) {
	query := `SELECT id, user_id, name, address, created_at FROM printers WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list printers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Printer
	for rows.Next() {
		var p entity.Printer
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Address, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan printer: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByUser counts the tenant's printers. Used for plan quota checks.
func (r *PrinterRepo) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM printers WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count printers: %w", err)
	}
	return count, nil
}

// PrintJobRepo implements the PrintJobRepository port on PostgreSQL (usable with pool or tx).
type PrintJobRepo struct {
	q Querier
}

// NewPrintJobRepository builds the adapter. Pass pool or tx (Querier).
func NewPrintJobRepository(q Querier) *PrintJobRepo {
	return &PrintJobRepo{q: q}
}

// Create persists a new print job.
func (r *PrintJobRepo) Create(job *entity.PrintJob) error {
	query := `
		INSERT INTO print_jobs (id, printer_id, file_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.PrinterID, job.FileURL, job.Status, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert print job: %w", err)
	}
	return nil
}

// GetByID loads a print job by ID; nil when absent.
func (r *PrintJobRepo) GetByID(id string) (*entity.PrintJob, error) {
	query := `SELECT id, printer_id, file_url, status, created_at, updated_at FROM print_jobs WHERE id = $1`
	var j entity.PrintJob
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&j.ID, &j.PrinterID, &j.FileURL, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get print job: %w", err)
	}
	return &j, nil
}

// ListByPrinter lists a printer's jobs, newest first.
func (r *PrintJobRepo) ListByPrinter(printerID string) ([]*entity.PrintJob, error) {
	query := `
		SELECT id, printer_id, file_url, status, created_at, updated_at
		FROM print_jobs WHERE printer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, printerID)
	if err != nil {
		return nil, fmt.Errorf("list print jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.PrintJob
	for rows.Next() {
		var j entity.PrintJob
		if err := rows.Scan(&j.ID, &j.PrinterID, &j.FileURL, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan print job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// UpdateStatus moves a job to SENT or FAILED.
func (r *PrintJobRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE print_jobs SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update print job status: %w", err)
	}
	return nil
}
