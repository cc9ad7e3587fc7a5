package dto

import "time"

// RegisterPrinterRequest printer registration input.
type RegisterPrinterRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"required"`
}

// PrinterResponse printer output.
type PrinterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePrintJobRequest print dispatch input.
type CreatePrintJobRequest struct {
	PrinterID string `json:"printer_id" validate:"required"`
	FileURL   string `json:"file_url" validate:"required"`
}

// PrintJobResponse dispatch outcome. Reason is set on FAILED jobs.
type PrintJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
