// internal/service/customer/customer.go
package customer

import (
	"context"
	"fmt"

	"impactlink-service/internal/domain/auth"
	"impactlink-service/internal/domain/customer"
	xerrors "impactlink-service/internal/pkg/errors"
	"impactlink-service/internal/repository/postgres"

	"go.uber.org/zap"
)

// ListQuery carries the caller's identity and optional filters for the
// app user listing.
type ListQuery struct {
	Role           string
	ActorCompanyID *string

	// Super-admin only filters; ignored for company admins.
	CompanyID    string
	ReferralCode string
}

type CustomerService struct {
	users     *postgres.AppUserRepository
	companies *postgres.CompanyRepository
	logger    *zap.Logger
}

func NewCustomerService(users *postgres.AppUserRepository, companies *postgres.CompanyRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		users:     users,
		companies: companies,
		logger:    logger,
	}
}

// List returns app users scoped by the caller's role. Company admins are
// pinned to their own company regardless of filters; super admins may
// filter by company id or referral code (slug or campaign code).
func (s *CustomerService) List(ctx context.Context, q ListQuery) (*customer.ListResult, error) {
	var targetCompanyID *string

	if q.Role == auth.RoleCompanyAdmin {
		if q.ActorCompanyID == nil || *q.ActorCompanyID == "" {
			return nil, fmt.Errorf("company is not assigned to this account: %w", xerrors.ErrInvalidInput)
		}
		targetCompanyID = q.ActorCompanyID
	} else {
		switch {
		case q.CompanyID != "":
			id := q.CompanyID
			targetCompanyID = &id
		case q.ReferralCode != "":
			id, err := s.companies.ResolveIDByCode(ctx, q.ReferralCode)
			if err != nil {
				if xerrors.Is(err, xerrors.ErrNotFound) {
					return nil, fmt.Errorf("referral code not found: %w", xerrors.ErrNotFound)
				}
				return nil, fmt.Errorf("failed to resolve referral code: %w", err)
			}
			targetCompanyID = &id
		}
	}

	users, err := s.users.List(ctx, targetCompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	return &customer.ListResult{
		Count:     len(users),
		Customers: users,
	}, nil
}
