// internal/handlers/media/media_handler.go
package media

import (
	"net/http"
	"net/url"

	"impactlink-service/internal/pkg/response"
	service "impactlink-service/internal/service/media"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MediaHandler struct {
	mediaService *service.MediaService
	logger       *zap.Logger
}

func NewMediaHandler(mediaService *service.MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// GetDeliverables proxies a customer's creative deliverables from the
// upstream service, falling back to the bundled sample when unreachable.
func (h *MediaHandler) GetDeliverables(c *gin.Context) {
	guid := c.Query("guid")
	if guid == "" {
		response.Error(c, http.StatusBadRequest, "guid is required", nil)
		return
	}

	result, err := h.mediaService.Deliverables(c.Request.Context(), guid)
	if err != nil {
		h.logger.Error("failed to load deliverables", zap.String("guid", guid), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "failed to load deliverables", nil)
		return
	}

	response.Success(c, http.StatusOK, "deliverables retrieved successfully", result)
}

// GetImage streams a remote image through the API so the dashboard can
// render assets hosted behind CORS-restricted origins.
func (h *MediaHandler) GetImage(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		response.Error(c, http.StatusBadRequest, "url is required", nil)
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		response.Error(c, http.StatusBadRequest, "invalid url", nil)
		return
	}

	contentType, body, err := h.mediaService.FetchImage(c.Request.Context(), rawURL)
	if err != nil {
		h.logger.Warn("image proxy failed", zap.String("url", rawURL), zap.Error(err))
		response.Error(c, http.StatusBadGateway, "failed to fetch image", nil)
		return
	}

	c.Header("Cache-Control", "public, max-age=600")
	c.Data(http.StatusOK, contentType, body)
}
