// internal/repository/postgres/cms_customer_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"impactlink-service/internal/domain/campaign"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CmsCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCmsCustomerRepository(db *pgxpool.Pool) *CmsCustomerRepository {
	return &CmsCustomerRepository{db: db}
}

// CustomersByReferralCode returns the raw cohort rows for a referral
// code. subscribe_list comes back as whatever shape the CMS stored; the
// normalizer sorts it out.
func (r *CmsCustomerRepository) CustomersByReferralCode(ctx context.Context, referralCode string) ([]campaign.CmsCustomer, error) {
	query := `
		SELECT guid::text, email, phone_number, referal_code, full_name, username, subscribe_list
		FROM cms_customers
		WHERE referal_code = $1
	`

	rows, err := r.db.Query(ctx, query, referralCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query cms customers: %w", err)
	}
	defer rows.Close()

	customers := []campaign.CmsCustomer{}
	for rows.Next() {
		var c campaign.CmsCustomer
		if err := rows.Scan(
			&c.GUID, &c.Email, &c.PhoneNumber, &c.ReferralCode,
			&c.FullName, &c.Username, &c.SubscribeList,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cms customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cms customers: %w", err)
	}

	return customers, nil
}

// ExcludedEmails returns the full demo exclusion list.
func (r *CmsCustomerRepository) ExcludedEmails(ctx context.Context) ([]string, error) {
	query := `SELECT email FROM demo_excluded_emails`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query excluded emails: %w", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email *string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan excluded email: %w", err)
		}
		if email != nil {
			emails = append(emails, *email)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read excluded emails: %w", err)
	}

	return emails, nil
}

// CmsCustomerEmailByGuid recovers the newest email on record for a guid,
// (nil, nil) when the guid is unknown.
func (r *CmsCustomerRepository) CmsCustomerEmailByGuid(ctx context.Context, guid string) (*string, error) {
	query := `
		SELECT email
		FROM cms_customers
		WHERE guid = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var email *string
	err := r.db.QueryRow(ctx, query, guid).Scan(&email)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cms customer email: %w", err)
	}

	return email, nil
}
