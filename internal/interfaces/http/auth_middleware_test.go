package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/ransara-lk/supermarket-api/internal/interfaces/http"
	pkgjwt "github.com/ransara-lk/supermarket-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "supermarket-api-test"
	testExpMin    = 60
)

// buildIdentityApp construye una app Fiber mínima con CurrentUser y un handler
// que devuelve la identidad resuelta.
func buildIdentityApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.CurrentUser(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"user_name": apphttp.GetUserName(c),
			"role":      apphttp.GetRole(c),
		})
	})
	return app
}

func identityFor(t *testing.T, app *fiber.App, authHeader string) map[string]string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization la petición sigue pasando con la identidad demo.
func TestCurrentUser_SinToken_UsaDemo(t *testing.T) {
	app := buildIdentityApp()
	body := identityFor(t, app, "")

	assert.Equal(t, "demo-user", body["user_id"])
	assert.Equal(t, "Demo User", body["user_name"])
	assert.Equal(t, "user", body["role"])
}

// Con un Bearer JWT válido la identidad sale de los claims.
func TestCurrentUser_ConToken_UsaClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "Ana", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildIdentityApp()
	body := identityFor(t, app, "Bearer "+tok)

	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "Ana", body["user_name"])
	assert.Equal(t, "admin", body["role"])
}

// Un token inválido no bloquea la petición: cae a la identidad demo.
func TestCurrentUser_TokenInvalido_CaeADemo(t *testing.T) {
	app := buildIdentityApp()
	body := identityFor(t, app, "Bearer token.invalido.aqui")

	assert.Equal(t, "demo-user", body["user_id"])
	assert.Equal(t, "user", body["role"])
}

// Un token firmado con otro secret también cae a la identidad demo.
func TestCurrentUser_SecretIncorrecto_CaeADemo(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-distinto", testUserID, "Ana", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildIdentityApp()
	body := identityFor(t, app, "Bearer "+tok)

	assert.Equal(t, "demo-user", body["user_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "Ana", "user", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, userName, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "Ana", userName)
	assert.Equal(t, "user", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "Ana", "user", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}
