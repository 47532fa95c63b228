package middlewares

import (
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(apiKey string) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{APIKey: apiKey},
	})
}

func TestAPIKeyAuth(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("No Key Configured Passes Through", func(t *testing.T) {
		middlewares := newTestMiddlewares("")

		req := httptest.NewRequest(constvars.MethodGet, "/patients", nil)
		rec := httptest.NewRecorder()
		middlewares.APIKeyAuth(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
	})

	t.Run("Valid Key", func(t *testing.T) {
		middlewares := newTestMiddlewares("secret-key")

		req := httptest.NewRequest(constvars.MethodGet, "/patients", nil)
		req.Header.Set(constvars.HeaderAPIKey, "secret-key")
		rec := httptest.NewRecorder()
		middlewares.APIKeyAuth(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
	})

	t.Run("Missing Key Rejected", func(t *testing.T) {
		middlewares := newTestMiddlewares("secret-key")

		req := httptest.NewRequest(constvars.MethodGet, "/patients", nil)
		rec := httptest.NewRecorder()
		middlewares.APIKeyAuth(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusUnauthorized, rec.Code)

		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientNotAuthorized, body.Message)
	})

	t.Run("Wrong Key Rejected", func(t *testing.T) {
		middlewares := newTestMiddlewares("secret-key")

		req := httptest.NewRequest(constvars.MethodGet, "/patients", nil)
		req.Header.Set(constvars.HeaderAPIKey, "not-the-key")
		rec := httptest.NewRecorder()
		middlewares.APIKeyAuth(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusUnauthorized, rec.Code)
	})
}
