package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/usecase"
)

// MenuHandler handles menu item CRUD plus the shareable public menu.
type MenuHandler struct {
	uc       *usecase.MenuUseCase
	publicUC *usecase.PublicMenuUseCase
}

// NewMenuHandler builds the handler.
func NewMenuHandler(uc *usecase.MenuUseCase, publicUC *usecase.PublicMenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc, publicUC: publicUC}
}

// Create godoc
// @Summary      Create a menu item
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "name, price, cost, category, materials"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(s.UserID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List the cafe's menu items
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MenuItemResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.List(s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Patch a menu item
// @Description  Price changes never touch already recorded sale lines.
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "menu item id"
// @Param        body  body  dto.UpdateMenuItemRequest  true  "fields to patch"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(s.UserID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a menu item
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "menu item id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	if err := h.uc.Delete(s.UserID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "menu item deleted"})
}

// Categories godoc
// @Summary      Distinct menu categories
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/menu/categories [get]
func (h *MenuHandler) Categories(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.Categories(s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		out = []string{}
	}
	return c.JSON(out)
}

// ShareSlug godoc
// @Summary      Shareable public menu link for the current cafe
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShareSlugResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/menu/share [get]
func (h *MenuHandler) ShareSlug(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.publicUC.ShareSlug(s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PublicMenu godoc
// @Summary      Public menu page by share slug (no auth)
// @Tags         menu
// @Produce      json
// @Param        slug  path  string  true  "share slug ({cafe-name}--{user-id})"
// @Success      200   {object}  dto.PublicMenuResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/menu/{slug} [get]
func (h *MenuHandler) PublicMenu(c *fiber.Ctx) error {
	// Cafe names keep their Persian characters, so the slug arrives
	// percent-encoded.
	slug, err := url.PathUnescape(c.Params("slug"))
	if err != nil {
		slug = c.Params("slug")
	}
	out, err := h.publicUC.Resolve(slug)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
