package api

import (
	"errors"
	"net/http"

	"booking-core/internal/handler/httperr"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
	maxIdempotencyKeyLen = 255
)

var (
	errMissingTenant     = errors.New("tenant missing from request context")
	errIdempotencyKeyLen = errors.New("idempotency key must be at most 255 characters")
)

func requireTenant(c *gin.Context) (uuid.UUID, bool) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, errMissingTenant, "Unauthorized", nil)
	}
	return tenantID, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// idempotencyScope keys on the concrete path so one key cannot replay across entities.
func idempotencyScope(c *gin.Context, tenantID uuid.UUID) (commands.IdempotencyScope, bool) {
	key := c.GetHeader(idempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLen {
		respondBadRequest(c, errIdempotencyKeyLen, "Invalid Idempotency-Key")
		return commands.IdempotencyScope{}, false
	}
	return commands.IdempotencyScope{
		TenantID: tenantID,
		Key:      key,
		Endpoint: c.Request.Method + " " + c.Request.URL.Path,
	}, true
}

func markReplay(c *gin.Context, replayed bool) {
	if replayed {
		c.Header(replayedHeader, "true")
	}
}
