// internal/repository/postgres/transaction_repo.go
package postgres

import (
	"context"
	"fmt"

	"impactlink-service/internal/domain/campaign"
	"impactlink-service/internal/domain/profile"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// FinishedTransactionGuids returns one customer guid per finished,
// IDR-denominated transaction belonging to the cohort. Rows with a null
// guid still count as transactions and come back as empty strings.
func (r *TransactionRepository) FinishedTransactionGuids(ctx context.Context, guids []string) ([]string, error) {
	query := `
		SELECT customer_guid::text
		FROM transactions
		WHERE status = 'Finished'
		  AND valuta_code = 'IDR'
		  AND customer_guid = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, guids)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var guid *string
		if err := rows.Scan(&guid); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if guid != nil {
			result = append(result, *guid)
		} else {
			result = append(result, "")
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return result, nil
}

// DebitUsageHistory returns the cohort's debit ledger rows newest first.
func (r *TransactionRepository) DebitUsageHistory(ctx context.Context, guids []string) ([]campaign.DebitUsage, error) {
	query := `
		SELECT user_id::text, created_at::text
		FROM credit_manager_transactions
		WHERE type = 'debit'
		  AND user_id = ANY($1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, guids)
	if err != nil {
		return nil, fmt.Errorf("failed to query debit usage: %w", err)
	}
	defer rows.Close()

	usage := []campaign.DebitUsage{}
	for rows.Next() {
		var userID *string
		var createdAt *string
		if err := rows.Scan(&userID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan debit usage: %w", err)
		}
		u := campaign.DebitUsage{CreatedAt: createdAt}
		if userID != nil {
			u.UserID = *userID
		}
		usage = append(usage, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read debit usage: %w", err)
	}

	return usage, nil
}

// TransactionsByUser returns a single user's ledger rows newest first,
// capped at limit. Amounts come back as text so non-numeric values
// survive the trip.
func (r *TransactionRepository) TransactionsByUser(ctx context.Context, userID string, limit int) ([]profile.Transaction, error) {
	query := `
		SELECT id::text, user_id::text, product_name, created_at::text, type, status, amount::text
		FROM credit_manager_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query user transactions: %w", err)
	}
	defer rows.Close()

	txns := []profile.Transaction{}
	for rows.Next() {
		var t profile.Transaction
		var amount *string
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.ProductName, &t.CreatedAt, &t.Type, &t.Status, &amount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user transaction: %w", err)
		}
		if amount != nil {
			t.Amount = *amount
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user transactions: %w", err)
	}

	return txns, nil
}
