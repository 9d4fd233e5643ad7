// internal/service/campaign/cohort.go
package campaign

import (
	"context"
	"fmt"
	"strings"
	"time"

	"impactlink-service/internal/domain/campaign"

	"go.uber.org/zap"
)

// Store is the read access the cohort assembler needs from the data
// store. Implementations must return results in the documented order;
// not-found conditions are nil results, not errors.
type Store interface {
	// CompanyByReferralCode resolves a company from its campaign referral
	// code. Returns (nil, nil) when no company matches.
	CompanyByReferralCode(ctx context.Context, referralCode string) (*campaign.Company, error)

	// ExcludedEmails returns the full demo exclusion list.
	ExcludedEmails(ctx context.Context) ([]string, error)

	// CustomersByReferralCode returns the raw cohort rows for a referral
	// code, in storage order.
	CustomersByReferralCode(ctx context.Context, referralCode string) ([]campaign.CmsCustomer, error)

	// FinishedTransactionGuids returns one customer guid per finished,
	// IDR-denominated transaction belonging to the cohort.
	FinishedTransactionGuids(ctx context.Context, guids []string) ([]string, error)

	// DebitUsageHistory returns the cohort's debit ledger rows ordered by
	// created_at descending.
	DebitUsageHistory(ctx context.Context, guids []string) ([]campaign.DebitUsage, error)
}

// CampaignService assembles the campaign dashboard from a point-in-time
// store snapshot. It holds no state between requests.
type CampaignService struct {
	store  Store
	logger *zap.Logger
}

func NewCampaignService(store Store, logger *zap.Logger) *CampaignService {
	return &CampaignService{
		store:  store,
		logger: logger,
	}
}

// Dashboard produces the classified cohort plus summary counts for one
// referral code and target product. Any store failure aborts the whole
// assembly; no partial result is ever returned.
func (s *CampaignService) Dashboard(ctx context.Context, referralCode, productName string) (*campaign.CampaignResult, error) {
	company, err := s.store.CompanyByReferralCode(ctx, referralCode)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup company for referral code: %w", err)
	}
	var companyName *string
	if company != nil {
		companyName = &company.Name
	}

	excluded, err := s.store.ExcludedEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load excluded emails: %w", err)
	}
	excludedSet := make(map[string]struct{}, len(excluded))
	for _, email := range excluded {
		if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
			excludedSet[e] = struct{}{}
		}
	}

	rows, err := s.store.CustomersByReferralCode(ctx, referralCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign cohort: %w", err)
	}

	// Drop excluded emails before dedupe so an excluded row can never
	// shadow a kept one.
	filtered := make([]campaign.CmsCustomer, 0, len(rows))
	for _, row := range rows {
		if row.Email != nil {
			if _, drop := excludedSet[strings.ToLower(strings.TrimSpace(*row.Email))]; drop {
				continue
			}
		}
		filtered = append(filtered, row)
	}

	cohort := DedupeCustomers(filtered)

	// UTC to align with the store's default timezone.
	now := time.Now().UTC()

	uniqueGuids := make([]string, 0, len(cohort))
	guidSeen := make(map[string]struct{}, len(cohort))
	activeUsers := 0
	expiredUsers := 0

	customers := make([]campaign.CampaignCustomer, 0, len(cohort))
	for _, c := range cohort {
		if c.GUID != nil && *c.GUID != "" {
			if _, ok := guidSeen[*c.GUID]; !ok {
				guidSeen[*c.GUID] = struct{}{}
				uniqueGuids = append(uniqueGuids, *c.GUID)
			}
		}

		res := ComputeStatus(c, now, productName)

		switch res.Status {
		case campaign.StatusActive:
			activeUsers++
		case campaign.StatusExpired:
			expiredUsers++
		}

		customers = append(customers, campaign.CampaignCustomer{
			GUID:           c.GUID,
			Email:          c.Email,
			FullName:       c.FullName,
			Username:       c.Username,
			Phone:          c.PhoneNumber,
			ReferralCode:   c.ReferralCode,
			SubscribeList:  res.SubscribeList,
			ProductList:    res.ProductList,
			Status:         res.Status,
			ExpiresAt:      res.ExpiresAt,
			ActivityStatus: campaign.ActivityPasif,
			LastDebitUsage: nil,
		})
	}

	purchasers := 0
	transactions := 0
	lastDebitByUser := make(map[string]*string)

	if len(uniqueGuids) > 0 {
		txnGuids, err := s.store.FinishedTransactionGuids(ctx, uniqueGuids)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}

		transactions = len(txnGuids)
		purchaserSet := make(map[string]struct{})
		for _, g := range txnGuids {
			if g != "" {
				purchaserSet[g] = struct{}{}
			}
		}
		purchasers = len(purchaserSet)

		usage, err := s.store.DebitUsageHistory(ctx, uniqueGuids)
		if err != nil {
			return nil, fmt.Errorf("failed to load debit usage: %w", err)
		}

		// Rows arrive newest first; keep the first timestamp per user.
		for _, u := range usage {
			if u.UserID == "" {
				continue
			}
			if _, seen := lastDebitByUser[u.UserID]; seen {
				continue
			}
			lastDebitByUser[u.UserID] = u.CreatedAt
		}
	}

	for i := range customers {
		var lastDebit *string
		if customers[i].GUID != nil {
			lastDebit = lastDebitByUser[*customers[i].GUID]
		}
		activity, lastUsage := ComputeActivity(lastDebit, now)
		customers[i].ActivityStatus = activity
		customers[i].LastDebitUsage = lastUsage
	}

	s.logger.Info("campaign dashboard assembled",
		zap.String("referral_code", referralCode),
		zap.Int("cohort_size", len(cohort)),
		zap.Int("registered_users", len(uniqueGuids)),
		zap.Int("active_users", activeUsers),
		zap.Int("expired_users", expiredUsers),
	)

	return &campaign.CampaignResult{
		Customers: customers,
		Summary: campaign.CampaignSummary{
			RegisteredUsers: len(uniqueGuids),
			ActiveUsers:     activeUsers,
			ExpiredUsers:    expiredUsers,
			Purchasers:      purchasers,
			Transactions:    transactions,
		},
		CompanyName: companyName,
	}, nil
}
