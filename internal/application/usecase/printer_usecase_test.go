package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/usecase"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePrinterRepo struct {
	printers map[string]*entity.Printer
}

func newFakePrinterRepo() *fakePrinterRepo {
	return &fakePrinterRepo{printers: map[string]*entity.Printer{}}
}

func (r *fakePrinterRepo) Create(p *entity.Printer) error {
	cp := *p
	r.printers[p.ID] = &cp
	return nil
}

func (r *fakePrinterRepo) GetByID(id string) (*entity.Printer, error) {
	return r.printers[id], nil
}

func (r *fakePrinterRepo) ListByUser(userID string) ([]*entity.Printer, error) {
	var out []*entity.Printer
	for _, p := range r.printers {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePrinterRepo) CountByUser(userID string) (int64, error) {
	var n int64
	for _, p := range r.printers {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeJobRepo struct {
	jobs map[string]*entity.PrintJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.PrintJob{}}
}

func (r *fakeJobRepo) Create(j *entity.PrintJob) error {
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) GetByID(id string) (*entity.PrintJob, error) { return r.jobs[id], nil }

func (r *fakeJobRepo) ListByPrinter(printerID string) ([]*entity.PrintJob, error) {
	var out []*entity.PrintJob
	for _, j := range r.jobs {
		if j.PrinterID == printerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) UpdateStatus(id, status string) error {
	j, ok := r.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	j.Status = status
	return nil
}

type fakeDispatcher struct {
	err   error
	calls int
}

func (d *fakeDispatcher) Dispatch(_ context.Context, _, _ string) error {
	d.calls++
	return d.err
}

const printerOwner = "owner-1"

func buildPrinterUC(dispatchErr error) (*usecase.PrinterUseCase, *fakeJobRepo, *fakeDispatcher) {
	printers := newFakePrinterRepo()
	jobs := newFakeJobRepo()
	disp := &fakeDispatcher{err: dispatchErr}
	return usecase.NewPrinterUseCase(printers, jobs, disp), jobs, disp
}

func registerPrinter(t *testing.T, uc *usecase.PrinterUseCase, tier string) *dto.PrinterResponse {
	t.Helper()
	p, err := uc.Register(printerOwner, tier, dto.RegisterPrinterRequest{
		Name: "Counter printer", Address: "192.168.1.50:631",
	})
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterPrinter_BasicPlanLimitedToOne(t *testing.T) {
	uc, _, _ := buildPrinterUC(nil)
	registerPrinter(t, uc, entity.TierBasic)

	_, err := uc.Register(printerOwner, entity.TierBasic, dto.RegisterPrinterRequest{
		Name: "Kitchen printer", Address: "192.168.1.51:631",
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "a second printer on BASIC must be refused")
}

func TestRegisterPrinter_ProfessionalUnlimited(t *testing.T) {
	uc, _, _ := buildPrinterUC(nil)

	for i := 0; i < 3; i++ {
		registerPrinter(t, uc, entity.TierProfessional)
	}

	list, err := uc.List(printerOwner)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRegisterPrinter_Validation(t *testing.T) {
	uc, _, _ := buildPrinterUC(nil)

	_, err := uc.Register(printerOwner, entity.TierBasic, dto.RegisterPrinterRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateJob
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateJob_SuccessfulDispatchSettlesSent(t *testing.T) {
	uc, jobs, disp := buildPrinterUC(nil)
	p := registerPrinter(t, uc, entity.TierBasic)

	resp, err := uc.CreateJob(context.Background(), printerOwner, dto.CreatePrintJobRequest{
		PrinterID: p.ID, FileURL: "https://files.example/invoice.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrintJobSent, resp.Status)
	assert.Empty(t, resp.Reason)
	assert.Equal(t, 1, disp.calls)

	stored, _ := jobs.GetByID(resp.JobID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.PrintJobSent, stored.Status)
}

func TestCreateJob_DispatchFailureIsRecordedNotReturned(t *testing.T) {
	uc, jobs, _ := buildPrinterUC(errors.New("bridge unreachable"))
	p := registerPrinter(t, uc, entity.TierBasic)

	resp, err := uc.CreateJob(context.Background(), printerOwner, dto.CreatePrintJobRequest{
		PrinterID: p.ID, FileURL: "https://files.example/invoice.pdf",
	})
	require.NoError(t, err, "a failed dispatch is an outcome, not an error")
	assert.Equal(t, entity.PrintJobFailed, resp.Status)
	assert.Equal(t, "bridge unreachable", resp.Reason)

	stored, _ := jobs.GetByID(resp.JobID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.PrintJobFailed, stored.Status)
}

func TestCreateJob_OwnershipAndExistence(t *testing.T) {
	uc, _, _ := buildPrinterUC(nil)
	p := registerPrinter(t, uc, entity.TierBasic)
	ctx := context.Background()

	_, err := uc.CreateJob(ctx, "someone-else", dto.CreatePrintJobRequest{
		PrinterID: p.ID, FileURL: "https://files.example/invoice.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.CreateJob(ctx, printerOwner, dto.CreatePrintJobRequest{
		PrinterID: "missing", FileURL: "https://files.example/invoice.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreateJob(ctx, printerOwner, dto.CreatePrintJobRequest{PrinterID: p.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
