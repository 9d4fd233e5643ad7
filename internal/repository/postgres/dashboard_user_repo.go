// internal/repository/postgres/dashboard_user_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"impactlink-service/internal/domain/auth"
	xerrors "impactlink-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardUserRepository struct {
	db *pgxpool.Pool
}

func NewDashboardUserRepository(db *pgxpool.Pool) *DashboardUserRepository {
	return &DashboardUserRepository{db: db}
}

// FindByEmail retrieves a dashboard user by email.
func (r *DashboardUserRepository) FindByEmail(ctx context.Context, email string) (*auth.DashboardUser, error) {
	query := `
		SELECT id::text, email, full_name, role, company_id::text, password_hash, is_active
		FROM dashboard_users
		WHERE email = $1
	`

	var u auth.DashboardUser
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FullName, &u.Role, &u.CompanyID, &u.PasswordHash, &u.IsActive,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find dashboard user: %w", err)
	}

	return &u, nil
}

// FindByID retrieves a dashboard user by id.
func (r *DashboardUserRepository) FindByID(ctx context.Context, id string) (*auth.DashboardUser, error) {
	query := `
		SELECT id::text, email, full_name, role, company_id::text, password_hash, is_active
		FROM dashboard_users
		WHERE id = $1
	`

	var u auth.DashboardUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.FullName, &u.Role, &u.CompanyID, &u.PasswordHash, &u.IsActive,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find dashboard user: %w", err)
	}

	return &u, nil
}
