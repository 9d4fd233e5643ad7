// internal/handlers/customer/customer_handler.go
package customer

import (
	"net/http"

	"impactlink-service/internal/middleware"
	xerrors "impactlink-service/internal/pkg/errors"
	"impactlink-service/internal/pkg/response"
	service "impactlink-service/internal/service/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	logger          *zap.Logger
}

func NewCustomerHandler(customerService *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// ListCustomers lists app users scoped to the caller's role. Company
// admins always see their own company; super admins may filter with
// ?companyId= or ?referralCode=.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	q := service.ListQuery{
		Role:           middleware.GetRole(c),
		ActorCompanyID: middleware.GetCompanyID(c),
		CompanyID:      c.Query("companyId"),
		ReferralCode:   c.Query("referralCode"),
	}

	result, err := h.customerService.List(c.Request.Context(), q)
	if err != nil {
		switch {
		case xerrors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "invalid request", err)
		case xerrors.Is(err, xerrors.ErrNotFound):
			response.NotFound(c, "referral code not found")
		default:
			h.logger.Error("failed to list customers", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "failed to load customers", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "customers retrieved successfully", result)
}
