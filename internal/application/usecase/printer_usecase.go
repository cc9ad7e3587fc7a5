package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
)

// Dispatcher hands a file to a remote printer. Implemented by the IPP bridge
// client; an error marks the job FAILED but never panics out of the use case.
type Dispatcher interface {
	Dispatch(ctx context.Context, printerID, fileURL string) error
}

// PrinterUseCase printer registration and synchronous print dispatch.
type PrinterUseCase struct {
	printerRepo repository.PrinterRepository
	jobRepo     repository.PrintJobRepository
	dispatcher  Dispatcher
}

// NewPrinterUseCase builds the use case.
func NewPrinterUseCase(printerRepo repository.PrinterRepository, jobRepo repository.PrintJobRepository, dispatcher Dispatcher) *PrinterUseCase {
	return &PrinterUseCase{printerRepo: printerRepo, jobRepo: jobRepo, dispatcher: dispatcher}
}

// Register adds a printer. BASIC-tier tenants are limited to one printer.
func (uc *PrinterUseCase) Register(userID, tier string, in dto.RegisterPrinterRequest) (*dto.PrinterResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, fmt.Errorf("%w: name and address are required", domain.ErrInvalidInput)
	}
	if tier == entity.TierBasic {
		count, err := uc.printerRepo.CountByUser(userID)
		if err != nil {
			return nil, err
		}
		if count >= 1 {
			return nil, fmt.Errorf("%w: the BASIC plan allows only one printer", domain.ErrConflict)
		}
	}
	printer := &entity.Printer{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.printerRepo.Create(printer); err != nil {
		return nil, err
	}
	return toPrinterResponse(printer), nil
}

// List returns the tenant's printers.
func (uc *PrinterUseCase) List(userID string) ([]*dto.PrinterResponse, error) {
	printers, err := uc.printerRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PrinterResponse, 0, len(printers))
	for _, p := range printers {
		out = append(out, toPrinterResponse(p))
	}
	return out, nil
}

// CreateJob records a PENDING job, attempts the dispatch synchronously and
// settles the job to SENT or FAILED. Both outcomes are terminal.
func (uc *PrinterUseCase) CreateJob(ctx context.Context, userID string, in dto.CreatePrintJobRequest) (*dto.PrintJobResponse, error) {
	if in.PrinterID == "" || in.FileURL == "" {
		return nil, fmt.Errorf("%w: printer_id and file_url are required", domain.ErrInvalidInput)
	}
	printer, err := uc.printerRepo.GetByID(in.PrinterID)
	if err != nil {
		return nil, err
	}
	if printer == nil {
		return nil, domain.ErrNotFound
	}
	if printer.UserID != userID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	job := &entity.PrintJob{
		ID:        uuid.New().String(),
		PrinterID: in.PrinterID,
		FileURL:   in.FileURL,
		Status:    entity.PrintJobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, err
	}

	if err := uc.dispatcher.Dispatch(ctx, in.PrinterID, in.FileURL); err != nil {
		_ = uc.jobRepo.UpdateStatus(job.ID, entity.PrintJobFailed)
		return &dto.PrintJobResponse{JobID: job.ID, Status: entity.PrintJobFailed, Reason: err.Error()}, nil
	}
	if err := uc.jobRepo.UpdateStatus(job.ID, entity.PrintJobSent); err != nil {
		return nil, err
	}
	return &dto.PrintJobResponse{JobID: job.ID, Status: entity.PrintJobSent}, nil
}

func toPrinterResponse(p *entity.Printer) *dto.PrinterResponse {
	return &dto.PrinterResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}
