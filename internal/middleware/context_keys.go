package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the context.
const userIDKey = contextKey("userID")

// propertyIDKey is the key used to store the tenant property ID in the context.
const propertyIDKey = contextKey("propertyID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetPropertyIDFromContext retrieves the tenant property ID from the Gin context.
func GetPropertyIDFromContext(c *gin.Context) (string, bool) {
	propertyIDVal := c.Request.Context().Value(propertyIDKey)
	if propertyIDVal == nil {
		return "", false
	}
	propertyID, ok := propertyIDVal.(string)
	if !ok {
		return "", false
	}
	return propertyID, true
}
