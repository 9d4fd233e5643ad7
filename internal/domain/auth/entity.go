package auth

// Dashboard roles.
const (
	RoleSuperAdmin   = "super_admin"
	RoleCompanyAdmin = "company_admin"
)

// DashboardUser is a row from dashboard_users.
type DashboardUser struct {
	ID           string
	Email        string
	FullName     *string
	Role         string
	CompanyID    *string
	PasswordHash string
	IsActive     bool
}

// Company is a row from companies, with the campaign referral code pulled
// out of the metadata blob.
type Company struct {
	ID           string
	Name         string
	Slug         *string
	ReferralCode *string
}
