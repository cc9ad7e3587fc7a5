package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/auth"
	"github.com/sarvcafe/cafepos-api/internal/application/dto"
)

// AuthHandler handles registration, login, logout and the session probe.
type AuthHandler struct {
	uc            *auth.AuthUseCase
	cookieMaxAge  time.Duration
	secureCookies bool
}

// NewAuthHandler builds the auth handler. secureCookies should be true in
// production so the session cookie only travels over HTTPS.
func NewAuthHandler(uc *auth.AuthUseCase, cookieMaxAge time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{uc: uc, cookieMaxAge: cookieMaxAge, secureCookies: secureCookies}
}

// Register godoc
// @Summary      Register a cafe account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, phone, password, subscription_tier"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.Register(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Log in and receive a session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "phone, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return writeError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieMaxAge),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"message": "logged out"})
}

// Session godoc
// @Summary      Current session payload
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	if s == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no active session"})
	}
	return c.JSON(fiber.Map{
		"user_id":           s.UserID,
		"role":              s.Role,
		"subscription_tier": s.Tier,
	})
}
