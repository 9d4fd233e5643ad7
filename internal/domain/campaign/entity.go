package campaign

// Subscription status of a customer for the target product.
const (
	StatusActive     = "active"
	StatusExpired    = "expired"
	StatusRegistered = "registered"
)

// ActivityStatus buckets a customer by recency of their last ledger debit.
type ActivityStatus string

const (
	ActivityActive ActivityStatus = "active"
	ActivityIdle   ActivityStatus = "idle"
	ActivityPasif  ActivityStatus = "pasif"
)

// ProductEntry is one normalized subscription/product record. Multiple
// entries may share a name (re-subscriptions); order is source order.
type ProductEntry struct {
	ProductName *string `json:"product_name"`
	ExpiredAt   *string `json:"expired_at"`
}

// CmsCustomer is a raw row from cms_customers. SubscribeList and
// ProductList are loosely typed in storage (array, JSON string, object)
// and only get a shape from the normalizer.
type CmsCustomer struct {
	GUID          *string `json:"guid"`
	Email         *string `json:"email"`
	PhoneNumber   *string `json:"phone_number"`
	ReferralCode  *string `json:"referal_code"`
	FullName      *string `json:"full_name,omitempty"`
	Username      *string `json:"username,omitempty"`
	SubscribeList any     `json:"subscribe_list"`
	ProductList   any     `json:"product_list,omitempty"`
}

// CampaignCustomer is the classified output record for one cohort member.
type CampaignCustomer struct {
	GUID           *string        `json:"guid"`
	Email          *string        `json:"email"`
	FullName       *string        `json:"full_name,omitempty"`
	Username       *string        `json:"username,omitempty"`
	Phone          *string        `json:"phone"`
	ReferralCode   *string        `json:"referal_code"`
	SubscribeList  []string       `json:"subscribe_list"`
	ProductList    []ProductEntry `json:"product_list"`
	Status         string         `json:"status"`
	ExpiresAt      *string        `json:"expires_at"`
	ActivityStatus ActivityStatus `json:"activity_status"`
	LastDebitUsage *string        `json:"last_debit_usage"`
}

// CampaignSummary holds the aggregate counts for one cohort.
type CampaignSummary struct {
	RegisteredUsers int `json:"registeredUsers"`
	ActiveUsers     int `json:"activeUsers"`
	ExpiredUsers    int `json:"expiredUsers"`
	Purchasers      int `json:"purchasers"`
	Transactions    int `json:"transactions"`
}

// CampaignResult is the full dashboard payload for one referral code.
type CampaignResult struct {
	Customers   []CampaignCustomer `json:"customers"`
	Summary     CampaignSummary    `json:"summary"`
	CompanyName *string            `json:"companyName"`
}

// Company is the slim companies row the cohort assembler needs.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DebitUsage is one usage-ledger row, ordered newest first by the store.
type DebitUsage struct {
	UserID    string  `json:"user_id"`
	CreatedAt *string `json:"created_at"`
}
