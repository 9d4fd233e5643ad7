// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetUserID gets the authenticated user id from the request context.
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}

// GetRole gets the caller's role, empty when unauthenticated.
func GetRole(c *gin.Context) string {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}

	r, ok := role.(string)
	if !ok {
		return ""
	}
	return r
}

// GetCompanyID gets the caller's company scope, nil when unscoped.
func GetCompanyID(c *gin.Context) *string {
	companyID, exists := c.Get("company_id")
	if !exists {
		return nil
	}

	id, ok := companyID.(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
