package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/application/usecase"
)

// SubscriptionHandler handles tenant plan checks and upgrade intents.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler builds the handler.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Check godoc
// @Summary      Check the current session against a required plan
// @Description  Always 200 for a parseable request; the decision travels in the body so callers can branch without exception handling.
// @Tags         subscription
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlanCheckRequest  true  "plan"
// @Success      200   {object}  dto.PlanCheckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/subscription/check [post]
func (h *SubscriptionHandler) Check(c *fiber.Ctx) error {
	var in dto.PlanCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Check(SessionFromCtx(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RequestUpgrade godoc
// @Summary      Request a plan upgrade for admin review
// @Tags         subscription
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpgradeRequest  true  "subscription_tier"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subscription/upgrade [post]
func (h *SubscriptionHandler) RequestUpgrade(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	var in dto.UpgradeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.RequestUpgrade(s.UserID, in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "upgrade request recorded, awaiting admin approval"})
}
