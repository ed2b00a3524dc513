package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/ransara-lk/supermarket-api/internal/interfaces/http"
)

// DELETE de transacciones responde 405 sin tocar el caso de uso ni la base,
// exista o no el id.
func TestTransactionDelete_Siempre405(t *testing.T) {
	app := fiber.New()
	handler := apphttp.NewTransactionHandler(nil)
	app.Delete("/api/transactions/:id", handler.Delete)

	for _, id := range []string{"existe-o-no", "00000000-0000-0000-0000-000000000099"} {
		req := httptest.NewRequest(http.MethodDelete, "/api/transactions/"+id, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body),
			"Deleting stock transactions is not allowed to preserve audit integrity")
	}
}
