// internal/handlers/profile/profile_handler.go
package profile

import (
	"net/http"
	"strconv"

	xerrors "impactlink-service/internal/pkg/errors"
	"impactlink-service/internal/pkg/response"
	service "impactlink-service/internal/service/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetUserDetail returns a customer's latest profile, transaction history
// and the per-day aggregates.
func (h *ProfileHandler) GetUserDetail(c *gin.Context) {
	guid := c.Query("guid")
	if guid == "" {
		response.Error(c, http.StatusBadRequest, "guid is required", nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid limit", err)
			return
		}
		limit = parsed
	}

	detail, err := h.profileService.UserDetail(c.Request.Context(), guid, limit)
	if err != nil {
		switch {
		case xerrors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "invalid request", err)
		case xerrors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "user not found")
		default:
			h.logger.Error("failed to load user detail", zap.String("guid", guid), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "failed to load user detail", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "user detail retrieved successfully", detail)
}
