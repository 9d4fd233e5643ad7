// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"impactlink-service/internal/domain/auth"
	"impactlink-service/internal/middleware"
	xerrors "impactlink-service/internal/pkg/errors"
	"impactlink-service/internal/pkg/response"
	service "impactlink-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a dashboard user and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	req.IPAddress = c.ClientIP()

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case xerrors.Is(err, xerrors.ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, "too many login attempts", err)
		case xerrors.Is(err, xerrors.ErrUnauthorized):
			response.Error(c, http.StatusUnauthorized, "invalid credentials", err)
		default:
			h.logger.Error("login failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}

// GetMe returns the authenticated user's profile.
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	profile, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "profile not found")
			return
		}
		h.logger.Error("failed to load profile", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved successfully", profile)
}
