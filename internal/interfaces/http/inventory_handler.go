package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/inventory"
)

// InventoryHandler handles raw materials and their stock ledger (protected).
type InventoryHandler struct {
	uc *inventory.LedgerUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateProduct godoc
// @Summary      Create a raw material
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, price, stock, category"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateProduct(c.Context(), s.UserID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProducts godoc
// @Summary      List the cafe's raw materials
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.ListProducts(s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateProduct godoc
// @Summary      Patch a raw material
// @Description  A stock value differing from the current counter writes a "manual correction" ledger entry.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "product id"
// @Param        body  body  dto.UpdateProductRequest  true  "fields to patch"
// @Success      200   {object}  dto.ProductResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProduct(c.Context(), s.UserID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Delete a raw material and its ledger
// @Description  Fails with 409 when any recorded sale line references the product.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "product id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	if err := h.uc.DeleteProduct(c.Context(), s.UserID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}

// AdjustStock godoc
// @Summary      Apply a signed stock delta with an audit reason
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, change, reason"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AdjustStock(c.Context(), s.UserID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Ledger godoc
// @Summary      Ledger entries for one product, newest first
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "product id"
// @Success      200  {array}   dto.InventoryLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/ledger [get]
func (h *InventoryHandler) Ledger(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.Ledger(s.UserID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
