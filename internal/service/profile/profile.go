// internal/service/profile/profile.go
package profile

import (
	"context"
	"fmt"

	"impactlink-service/internal/domain/profile"
	xerrors "impactlink-service/internal/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTransactionLimit = 500
	maxTransactionLimit     = 1000
)

// Store is the read access the profile view needs. Not-found conditions
// are nil results, not errors.
type Store interface {
	// LatestProfileByGuid returns the newest profile row for a customer
	// guid, (nil, nil) when none exists.
	LatestProfileByGuid(ctx context.Context, guid string) (*profile.Profile, error)

	// TransactionsByUser returns the user's ledger rows newest first,
	// capped at limit.
	TransactionsByUser(ctx context.Context, userID string, limit int) ([]profile.Transaction, error)

	// CmsCustomerEmailByGuid recovers an email from cms_customers,
	// (nil, nil) when the guid is unknown.
	CmsCustomerEmailByGuid(ctx context.Context, guid string) (*string, error)
}

// ProfileService serves the per-user detail view: latest profile, recent
// transactions, and the daily aggregate.
type ProfileService struct {
	store  Store
	logger *zap.Logger
}

func NewProfileService(store Store, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
	}
}

// UserDetail fetches the profile and transaction history for a customer
// guid. The two lookups are independent and run concurrently. A missing
// profile row falls back to a minimal record recovered from
// cms_customers; if that also misses, the result is ErrNotFound.
func (s *ProfileService) UserDetail(ctx context.Context, guid string, limit int) (*profile.UserDetail, error) {
	if guid == "" {
		return nil, fmt.Errorf("guid is required: %w", xerrors.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}

	var (
		prof *profile.Profile
		txns []profile.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.store.LatestProfileByGuid(gctx, guid)
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %w", err)
		}
		prof = p
		return nil
	})
	g.Go(func() error {
		t, err := s.store.TransactionsByUser(gctx, guid, limit)
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		txns = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if prof == nil {
		// Recover the email from cms_customers so the UI still has
		// something to render.
		email, err := s.store.CmsCustomerEmailByGuid(ctx, guid)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch cms customer email: %w", err)
		}
		if email == nil {
			return nil, fmt.Errorf("profile %q: %w", guid, xerrors.ErrNotFound)
		}

		g := guid
		prof = &profile.Profile{
			ID:           guid,
			CustomerGUID: &g,
			Email:        email,
		}
		s.logger.Info("profile row missing, using cms fallback", zap.String("guid", guid))
	}

	if txns == nil {
		txns = []profile.Transaction{}
	}

	return &profile.UserDetail{
		Profile:      *prof,
		Transactions: txns,
		Daily:        AggregateDaily(txns),
	}, nil
}
