// internal/handlers/campaign/campaign_handler.go
package campaign

import (
	"net/http"

	xerrors "impactlink-service/internal/pkg/errors"
	"impactlink-service/internal/pkg/response"
	service "impactlink-service/internal/service/campaign"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *service.CampaignService
	logger          *zap.Logger

	defaultReferralCode string
	defaultProductName  string
}

func NewCampaignHandler(campaignService *service.CampaignService, logger *zap.Logger, defaultReferralCode, defaultProductName string) *CampaignHandler {
	return &CampaignHandler{
		campaignService:     campaignService,
		logger:              logger,
		defaultReferralCode: defaultReferralCode,
		defaultProductName:  defaultProductName,
	}
}

// GetDashboard returns the campaign cohort with per-customer status and
// activity plus the summary counters.
func (h *CampaignHandler) GetDashboard(c *gin.Context) {
	referralCode := c.Query("referralCode")
	if referralCode == "" {
		referralCode = h.defaultReferralCode
	}
	productName := c.Query("productName")
	if productName == "" {
		productName = h.defaultProductName
	}

	result, err := h.campaignService.Dashboard(c.Request.Context(), referralCode, productName)
	if err != nil {
		h.logger.Error("failed to build campaign dashboard",
			zap.String("referral_code", referralCode),
			zap.Error(err),
		)
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "campaign not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load campaign data", nil)
		return
	}

	response.Success(c, http.StatusOK, "campaign data retrieved successfully", result)
}
