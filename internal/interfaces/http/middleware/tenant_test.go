package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func signToken(t *testing.T, secret, subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func tenantTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TenantMiddleware(TenantConfig{JWTSecret: secret}))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetTenant(c))
	})
	return r
}

func TestTenantMiddleware(t *testing.T) {
	t.Run("resolves tenant from JWT subject", func(t *testing.T) {
		r := tenantTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "shop-one"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "shop-one", w.Body.String())
	})

	t.Run("falls back to header without a token", func(t *testing.T) {
		r := tenantTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(TenantHeaderKey, "shop-two")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "shop-two", w.Body.String())
	})

	t.Run("defaults to admin with nothing at all", func(t *testing.T) {
		r := tenantTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, DefaultTenant, w.Body.String())
	})

	t.Run("bad signature degrades instead of rejecting", func(t *testing.T) {
		r := tenantTestRouter(testSecret)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "another-secret-another-secret-xx", "shop-one"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, DefaultTenant, w.Body.String())
	})
}
