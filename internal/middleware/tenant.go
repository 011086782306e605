package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayfolio/hotel_pms_app/internal/core/domain"
)

// PropertyHeader names the header that scopes a request to one property.
const PropertyHeader = "X-Property-ID"

// TenantMiddleware requires the property header on every request and stores the
// property ID in the request context. Data isolation beyond this scoping is
// enforced by the store's row-level security.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		propertyID := c.GetHeader(PropertyHeader)
		if propertyID == "" {
			logger.Warn("Property header missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": PropertyHeader + " header required"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), propertyIDKey, propertyID)
		ctx = WithLogger(ctx, logger.With(slog.String("property_id", propertyID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// TenantFromContext assembles the TenantContext for a request from the property
// header and the authenticated user. It reports false when either is missing.
func TenantFromContext(c *gin.Context) (domain.TenantContext, bool) {
	propertyID, ok := GetPropertyIDFromContext(c)
	if !ok {
		return domain.TenantContext{}, false
	}
	actorID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.TenantContext{}, false
	}
	return domain.TenantContext{PropertyID: propertyID, ActorID: actorID}, true
}
