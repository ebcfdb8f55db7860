package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"booking-core/internal/handler/httperr"
	"booking-core/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator checks tokens issued by the external auth layer.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type TenantMiddleware struct {
	tokens TokenValidator
}

const (
	ctxTenantIDKey = "tenant_id"
	ctxSubjectKey  = "subject"
)

var errMissingToken = errors.New("missing bearer token")

func NewTenantMiddleware(tokens TokenValidator) *TenantMiddleware {
	return &TenantMiddleware{tokens: tokens}
}

func (m *TenantMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error(), "request_id", GetRequestID(c))
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxTenantIDKey, claims.TenantID)
		c.Set(ctxSubjectKey, claims.Subject)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}

func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxTenantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// SetTenantID is used by routes that resolve the tenant from something other than a token.
func SetTenantID(c *gin.Context, tenantID uuid.UUID) {
	c.Set(ctxTenantIDKey, tenantID)
}
