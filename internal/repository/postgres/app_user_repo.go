// internal/repository/postgres/app_user_repo.go
package postgres

import (
	"context"
	"fmt"

	"impactlink-service/internal/domain/customer"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AppUserRepository struct {
	db *pgxpool.Pool
}

func NewAppUserRepository(db *pgxpool.Pool) *AppUserRepository {
	return &AppUserRepository{db: db}
}

// List returns app users with their company joined in, optionally
// filtered to one company.
func (r *AppUserRepository) List(ctx context.Context, companyID *string) ([]customer.AppUser, error) {
	query := `
		SELECT u.id::text, u.full_name, u.email, u.profile_data, c.name, c.slug
		FROM app_users u
		LEFT JOIN companies c ON c.id = u.company_id
	`
	args := []interface{}{}
	if companyID != nil {
		query += ` WHERE u.company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY u.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query app users: %w", err)
	}
	defer rows.Close()

	users := []customer.AppUser{}
	for rows.Next() {
		var u customer.AppUser
		var companyName *string
		var companySlug *string
		if err := rows.Scan(
			&u.ID, &u.FullName, &u.Email, &u.ProfileData, &companyName, &companySlug,
		); err != nil {
			return nil, fmt.Errorf("failed to scan app user: %w", err)
		}
		if companyName != nil {
			u.Company = &customer.CompanyRef{Name: *companyName, Slug: companySlug}
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read app users: %w", err)
	}

	return users, nil
}
