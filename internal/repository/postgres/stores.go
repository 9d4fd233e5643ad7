// internal/repository/postgres/stores.go
package postgres

// CampaignStore bundles the repositories the cohort assembler reads from
// into one object satisfying the campaign service's Store interface.
type CampaignStore struct {
	*CompanyRepository
	*CmsCustomerRepository
	*TransactionRepository
}

func NewCampaignStore(companies *CompanyRepository, customers *CmsCustomerRepository, transactions *TransactionRepository) *CampaignStore {
	return &CampaignStore{
		CompanyRepository:     companies,
		CmsCustomerRepository: customers,
		TransactionRepository: transactions,
	}
}

// ProfileStore bundles the repositories the profile view reads from into
// one object satisfying the profile service's Store interface.
type ProfileStore struct {
	*ProfileRepository
	*CmsCustomerRepository
	*TransactionRepository
}

func NewProfileStore(profiles *ProfileRepository, customers *CmsCustomerRepository, transactions *TransactionRepository) *ProfileStore {
	return &ProfileStore{
		ProfileRepository:     profiles,
		CmsCustomerRepository: customers,
		TransactionRepository: transactions,
	}
}
