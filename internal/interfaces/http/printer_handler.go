package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/usecase"
)

// PrinterHandler handles printer registration and print dispatch (protected).
type PrinterHandler struct {
	uc *usecase.PrinterUseCase
}

// NewPrinterHandler builds the handler.
func NewPrinterHandler(uc *usecase.PrinterUseCase) *PrinterHandler {
	return &PrinterHandler{uc: uc}
}

// Register godoc
// @Summary      Register a printer
// @Description  BASIC-plan cafes are limited to one printer.
// @Tags         printers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPrinterRequest  true  "name, address"
// @Success      201   {object}  dto.PrinterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/printers [post]
func (h *PrinterHandler) Register(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.RegisterPrinterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(s.UserID, s.Tier, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List the cafe's printers
// @Tags         printers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PrinterResponse
// @Router       /api/printers [get]
func (h *PrinterHandler) List(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.List(s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateJob godoc
// @Summary      Dispatch a file to a printer
// @Description  Records a PENDING job, attempts the dispatch synchronously, and settles it to SENT or FAILED. A FAILED job still returns 201 with the failure reason.
// @Tags         printers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrintJobRequest  true  "printer_id, file_url"
// @Success      201   {object}  dto.PrintJobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/printers/jobs [post]
func (h *PrinterHandler) CreateJob(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.CreatePrintJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateJob(c.Context(), s.UserID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
