package profile

// Profile is the latest profile row for a customer guid.
type Profile struct {
	ID           string  `json:"id"`
	CustomerGUID *string `json:"customer_guid"`
	FullName     *string `json:"full_name"`
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	CreatedAt    *string `json:"created_at"`
}

// Transaction is one credit_manager_transactions row. Amount stays
// untyped because the ledger stores both numeric and free-form values;
// the aggregator decides what counts as money.
type Transaction struct {
	ID          string  `json:"id"`
	UserID      *string `json:"user_id"`
	ProductName *string `json:"product_name"`
	CreatedAt   *string `json:"created_at"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Amount      any     `json:"amount"`
}

// DailyAggregate is the per-product, per-calendar-day rollup of a user's
// transaction history.
type DailyAggregate struct {
	ProductName  *string `json:"product_name"`
	Date         string  `json:"date"`
	TotalCount   int     `json:"total_count"`
	CreditCount  int     `json:"credit_count"`
	DebitCount   int     `json:"debit_count"`
	CreditAmount float64 `json:"credit_amount"`
	DebitAmount  float64 `json:"debit_amount"`
	NetAmount    float64 `json:"net_amount"`
}

// UserDetail is the profile endpoint payload.
type UserDetail struct {
	Profile      Profile          `json:"profile"`
	Transactions []Transaction    `json:"transactions"`
	Daily        []DailyAggregate `json:"daily"`
}
