package auth

// LoginRequest carries the login form plus request metadata used for
// rate limiting.
type LoginRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	IPAddress string `json:"-"`
}

// UserProfile is the dashboard user payload returned by login and /me.
type UserProfile struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FullName     *string `json:"full_name"`
	Role         string  `json:"role"`
	CompanyID    *string `json:"company_id"`
	ReferralCode *string `json:"referral_code"`
	CompanySlug  *string `json:"company_slug"`
	CompanyName  *string `json:"company_name"`
}

// LoginResponse bundles the signed token with the user payload.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
