package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	apphttp "github.com/sarvcafe/cafepos-api/internal/interfaces/http"
	pkgjwt "github.com/sarvcafe/cafepos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "cafepos-test"
	testExpMin    = 60
)

// buildTestApp wires a minimal Fiber app with:
//   - SessionMiddleware to parse the token into locals
//   - the given guard on a protected route
//   - a dummy handler that returns 200 when the guard lets it through
func buildTestApp(guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.SessionMiddleware(testJWTSecret),
		guard,
		func(c *fiber.Ctx) error {
			s := apphttp.SessionFromCtx(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": s.UserID,
				"tier":    s.Tier,
			})
		},
	)
	return app
}

// tokenFor generates a signed session token for the given role and tier.
func tokenFor(t *testing.T, role, tier string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, tier, testIssuer, testExpMin)
	require.NoError(t, err, "a valid session token must be generated")
	return tok
}

// doRequest hits GET /protected carrying the token either as the session
// cookie or as a Bearer header, depending on asCookie.
func doRequest(t *testing.T, app *fiber.App, token string, asCookie bool) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		if asCookie {
			req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: token})
		} else {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionMiddleware token sources
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionMiddleware_CookieToken(t *testing.T) {
	app := buildTestApp(apphttp.RequireUser())
	resp := doRequest(t, app, tokenFor(t, entity.RoleUser, entity.TierBasic), true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"a valid session cookie must reach the handler")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.TierBasic, body["tier"])
}

func TestSessionMiddleware_BearerToken(t *testing.T) {
	app := buildTestApp(apphttp.RequireUser())
	resp := doRequest(t, app, tokenFor(t, entity.RoleUser, entity.TierProfessional), false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"a Bearer header must work for non-browser clients")
}

func TestSessionMiddleware_InvalidTokenLeavesSessionAbsent(t *testing.T) {
	app := buildTestApp(apphttp.RequireUser())
	resp := doRequest(t, app, "not.a.valid.token", true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"a garbage token behaves exactly like no token at all")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "no active session")
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireUser_NoToken_Returns401(t *testing.T) {
	app := buildTestApp(apphttp.RequireUser())
	resp := doRequest(t, app, "", true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED",
		"the error body must carry the UNAUTHORIZED code")
}

func TestRequireUser_BlocksAdmin(t *testing.T) {
	app := buildTestApp(apphttp.RequireUser())
	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin, entity.TierBasic), true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"admin accounts do not use tenant-facing routes")
}

func TestRequireAdmin_BlocksUser(t *testing.T) {
	app := buildTestApp(apphttp.RequireAdmin())
	resp := doRequest(t, app, tokenFor(t, entity.RoleUser, entity.TierProfessional), true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "admin role required")
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	app := buildTestApp(apphttp.RequireAdmin())
	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin, entity.TierBasic), false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePlan_BasicBlockedOnProfessionalRoute(t *testing.T) {
	app := buildTestApp(apphttp.RequirePlan(entity.TierProfessional))
	resp := doRequest(t, app, tokenFor(t, entity.RoleUser, entity.TierBasic), true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"a BASIC account must not reach PROFESSIONAL-only routes")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "plan insufficient",
		"the denial reason must name the plan gate")
}

func TestRequirePlan_AnyPlanAdmitsBoth(t *testing.T) {
	app := buildTestApp(apphttp.RequirePlan(entity.TierBasic, entity.TierProfessional))

	for _, tier := range []string{entity.TierBasic, entity.TierProfessional} {
		resp := doRequest(t, app, tokenFor(t, entity.RoleUser, tier), true)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "tier %s must be admitted", tier)
		resp.Body.Close()
	}
}

func TestRequirePlan_NoToken_Returns401(t *testing.T) {
	app := buildTestApp(apphttp.RequirePlan(entity.TierBasic, entity.TierProfessional))
	resp := doRequest(t, app, "", true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"a missing session is 401, never 403")
}
