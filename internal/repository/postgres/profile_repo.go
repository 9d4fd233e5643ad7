// internal/repository/postgres/profile_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"impactlink-service/internal/domain/profile"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// LatestProfileByGuid returns the newest profile row for a customer guid,
// (nil, nil) when none exists.
func (r *ProfileRepository) LatestProfileByGuid(ctx context.Context, guid string) (*profile.Profile, error) {
	query := `
		SELECT id::text, customer_guid::text, full_name, username, email, phone, created_at::text
		FROM profile
		WHERE customer_guid = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var p profile.Profile
	err := r.db.QueryRow(ctx, query, guid).Scan(
		&p.ID, &p.CustomerGUID, &p.FullName, &p.Username, &p.Email, &p.Phone, &p.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &p, nil
}
