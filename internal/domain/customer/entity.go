package customer

// CompanyRef is the joined company name/slug on an app user row.
type CompanyRef struct {
	Name string  `json:"name"`
	Slug *string `json:"slug"`
}

// AppUser is a row from app_users with its company joined in.
type AppUser struct {
	ID          string      `json:"id"`
	FullName    *string     `json:"full_name"`
	Email       *string     `json:"email"`
	ProfileData any         `json:"profile_data"`
	Company     *CompanyRef `json:"company"`
}

// ListResult is the customers endpoint payload.
type ListResult struct {
	Count     int       `json:"count"`
	Customers []AppUser `json:"customers"`
}
