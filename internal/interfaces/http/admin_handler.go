package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/usecase"
)

// AdminHandler handles the admin console endpoints (admin sessions only).
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler builds the handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers godoc
// @Summary      List every cafe account
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activate or deactivate an account
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetActiveRequest  true  "user_id, active"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/active [put]
func (h *AdminHandler) SetActive(c *fiber.Ctx) error {
	var in dto.SetActiveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetActive(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetPlan godoc
// @Summary      Change an account's subscription tier
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPlanRequest  true  "user_id, subscription_tier"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/plan [put]
func (h *AdminHandler) SetPlan(c *fiber.Ctx) error {
	var in dto.SetPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetPlan(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetOnlineMenu godoc
// @Summary      Toggle an account's public menu page
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetOnlineMenuRequest  true  "user_id, has_online_menu"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/online-menu [put]
func (h *AdminHandler) SetOnlineMenu(c *fiber.Ctx) error {
	var in dto.SetOnlineMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetOnlineMenu(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
