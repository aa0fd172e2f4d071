package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/luxegem/backend/internal/infrastructure/logger"
)

const (
	// TenantIDKey is the gin context key holding the resolved tenant
	TenantIDKey = "tenant_id"
	// TenantHeaderKey is the development header carrying an explicit tenant
	TenantHeaderKey = "X-Tenant-ID"
	// DefaultTenant scopes unauthenticated requests
	DefaultTenant = "admin"
)

// TenantConfig holds tenant middleware configuration
type TenantConfig struct {
	JWTSecret string
}

// TenantMiddleware resolves the tenant scope for each request.
// Extraction order: JWT subject > X-Tenant-ID header > default tenant.
// An unusable token degrades to the default scope rather than rejecting the
// request; report endpoints are read-only and tenant scoping alone bounds
// what they can reveal.
func TenantMiddleware(cfg TenantConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := ""

		if token := bearerToken(c); token != "" && cfg.JWTSecret != "" {
			if sub, err := parseSubject(token, cfg.JWTSecret); err == nil {
				tenantID = sub
			}
		}

		if tenantID == "" {
			tenantID = strings.TrimSpace(c.GetHeader(TenantHeaderKey))
		}
		if tenantID == "" {
			tenantID = DefaultTenant
		}

		c.Set(TenantIDKey, tenantID)

		ctx, _ := logger.WithTenantID(c.Request.Context(), logger.FromContext(c.Request.Context()), tenantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetTenant returns the tenant resolved by TenantMiddleware.
func GetTenant(c *gin.Context) string {
	if tenantID := c.GetString(TenantIDKey); tenantID != "" {
		return tenantID
	}
	return DefaultTenant
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func parseSubject(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sub) == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}
