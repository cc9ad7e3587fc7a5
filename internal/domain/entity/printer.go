package entity

import "time"

// Print job statuses. PENDING is initial; SENT and FAILED are terminal.
const (
	PrintJobPending = "PENDING"
	PrintJobSent    = "SENT"
	PrintJobFailed  = "FAILED"
)

// Printer is a registered output device for a cafe.
type Printer struct {
	ID        string
	UserID    string // owning tenant
	Name      string
	Address   string
	CreatedAt time.Time
}

// PrintJob records one dispatch attempt of a file to a printer.
type PrintJob struct {
	ID        string
	PrinterID string
	FileURL   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
