package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/sales"
)

// SaleHandler handles sale recording and retrieval (protected).
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler builds the handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Record a sale
// @Description  Prices are snapshotted from the menu at creation time; the invoice PDF is generated best-effort.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "items, phone, payment_method"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateSale(c.Context(), s.UserID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List the cafe's sales, newest first
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.ListSales(s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      One sale with its frozen lines
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "sale id"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.GetSale(s.UserID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePaymentMethod godoc
// @Summary      Replace the payment method of a sale
// @Description  The only mutable field of a recorded sale; totals stay frozen.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePaymentMethodRequest  true  "sale_id, payment_method"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/payment-method [put]
func (h *SaleHandler) UpdatePaymentMethod(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.UpdatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdatePaymentMethod(s.UserID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Invoice godoc
// @Summary      Regenerate and download the invoice PDF for a sale
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "sale id"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/invoice [get]
func (h *SaleHandler) Invoice(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	path, err := h.uc.RegenerateInvoice(c.Context(), s.UserID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.SendFile(path)
}
