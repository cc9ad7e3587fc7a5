package repository

import "github.com/sarvcafe/cafepos-api/internal/domain/entity"

// PrinterRepository persistence port for registered printers.
type PrinterRepository interface {
	Create(printer *entity.Printer) error
	GetByID(id string) (*entity.Printer, error)
	ListByUser(userID string) ([]*entity.Printer, error)
	CountByUser(userID string) (int64, error)
}

// PrintJobRepository persistence port for print jobs.
type PrintJobRepository interface {
	Create(job *entity.PrintJob) error
	GetByID(id string) (*entity.PrintJob, error)
	ListByPrinter(printerID string) ([]*entity.PrintJob, error)
	UpdateStatus(id, status string) error
}
