package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/authz"
	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/pkg/jwt"
)

// SessionCookie is the session cookie name. The token also travels as a
// Bearer header for non-browser clients; the cookie wins when both are set.
const SessionCookie = "sarv_session"

// LocalSession is the Locals key holding the *authz.Session.
const LocalSession = "session"

// SessionMiddleware parses the session token into c.Locals. It never rejects
// a request: a missing or invalid token just leaves the session absent, and
// the route guards decide what that means.
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			token = bearerToken(c)
		}
		if token != "" {
			if userID, role, tier, err := jwt.Parse(jwtSecret, token); err == nil {
				c.Locals(LocalSession, &authz.Session{UserID: userID, Role: role, Tier: tier})
			}
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SessionFromCtx returns the parsed session, or nil when the request carries
// no valid token.
func SessionFromCtx(c *fiber.Ctx) *authz.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*authz.Session)
	return s
}

// RequireUser admits only authenticated non-admin sessions. Admin accounts
// operate through the admin console and are rejected here.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := authz.CheckUser(SessionFromCtx(c))
		if !d.Authorized {
			return denyResponse(c, d.Reason)
		}
		return c.Next()
	}
}

// RequireAdmin admits only admin sessions.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := authz.CheckAdmin(SessionFromCtx(c))
		if !d.Authorized {
			return denyResponse(c, d.Reason)
		}
		return c.Next()
	}
}

// RequirePlan admits non-admin sessions whose tier is in the allowed set.
// Must run after SessionMiddleware.
func RequirePlan(tiers ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := SessionFromCtx(c)
		if d := authz.CheckUser(s); !d.Authorized {
			return denyResponse(c, d.Reason)
		}
		if d := authz.CheckPlan(s, tiers...); !d.Authorized {
			return denyResponse(c, d.Reason)
		}
		return c.Next()
	}
}

func denyResponse(c *fiber.Ctx, reason string) error {
	if reason == authz.ReasonNoSession {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: reason})
	}
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: reason})
}
