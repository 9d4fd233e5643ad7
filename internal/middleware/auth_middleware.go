// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"impactlink-service/internal/domain/auth"
	"impactlink-service/internal/pkg/response"
	authService "impactlink-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	authService *authService.AuthService
}

func NewAuthMiddleware(svc *authService.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: svc,
	}
}

// Auth is the base authentication middleware that validates JWT tokens
// and propagates the caller's identity into the request context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("role", claims.Role)
		if claims.CompanyID != nil {
			c.Set("company_id", *claims.CompanyID)
		}

		c.Next()
	}
}

// RequireRole requires the caller to have one of the specified roles.
// MUST be used after Auth().
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		if role == "" {
			response.Error(c, http.StatusForbidden, "no role found - authentication required", nil)
			return
		}

		for _, required := range roles {
			if role == required {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "insufficient permissions", nil, map[string]interface{}{
			"required_roles": roles,
			"user_role":      role,
		})
	}
}

// RequireResource requires the caller's role to grant access to a
// dashboard resource. MUST be used after Auth().
func (m *AuthMiddleware) RequireResource(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		if !auth.CanAccess(role, resource) {
			response.Error(c, http.StatusForbidden, "insufficient permissions", nil, map[string]interface{}{
				"resource":  resource,
				"user_role": role,
			})
			return
		}
		c.Next()
	}
}

// SuperAdminOnly returns middlewares for super admin-only routes.
func (m *AuthMiddleware) SuperAdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.Auth(),
		m.RequireRole(auth.RoleSuperAdmin),
	}
}

// extractToken extracts a Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	return ""
}
