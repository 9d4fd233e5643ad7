// internal/repository/postgres/company_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"impactlink-service/internal/domain/auth"
	"impactlink-service/internal/domain/campaign"
	xerrors "impactlink-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindByID retrieves a company with its referral code pulled out of the
// metadata blob.
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*auth.Company, error) {
	query := `
		SELECT id::text, name, slug, metadata->>'referral_code'
		FROM companies
		WHERE id = $1
	`

	var c auth.Company
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.ReferralCode)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return &c, nil
}

// CompanyByReferralCode resolves a company from its campaign referral
// code. A missing company is (nil, nil), not an error.
func (r *CompanyRepository) CompanyByReferralCode(ctx context.Context, referralCode string) (*campaign.Company, error) {
	query := `
		SELECT id::text, name
		FROM companies
		WHERE metadata->>'referral_code' = $1
	`

	var c campaign.Company
	err := r.db.QueryRow(ctx, query, referralCode).Scan(&c.ID, &c.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company by referral code: %w", err)
	}

	return &c, nil
}

// ResolveIDByCode resolves a company id from either its slug or its
// metadata referral code.
func (r *CompanyRepository) ResolveIDByCode(ctx context.Context, code string) (string, error) {
	query := `
		SELECT id::text
		FROM companies
		WHERE slug = $1 OR metadata->>'referral_code' = $1
		LIMIT 1
	`

	var id string
	err := r.db.QueryRow(ctx, query, code).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", xerrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve referral code: %w", err)
	}

	return id, nil
}
