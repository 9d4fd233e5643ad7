package campaign

import (
	"fmt"

	"impactlink-service/internal/domain/campaign"
)

// DedupeCustomers collapses raw rows into a unique set keyed by the first
// non-empty of guid, email, phone. First occurrence wins and input order
// is preserved. Rows with no identifying field are always kept, tracked
// under an incremental synthetic key so they never collapse into each
// other.
func DedupeCustomers(rows []campaign.CmsCustomer) []campaign.CmsCustomer {
	seen := make(map[string]struct{}, len(rows))
	result := make([]campaign.CmsCustomer, 0, len(rows))

	for _, row := range rows {
		key := identityKey(row)
		if key == "" {
			fallbackKey := fmt.Sprintf("__anonymous_%d", len(result))
			seen[fallbackKey] = struct{}{}
			result = append(result, row)
			continue
		}

		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		result = append(result, row)
	}

	return result
}

func identityKey(row campaign.CmsCustomer) string {
	if row.GUID != nil && *row.GUID != "" {
		return *row.GUID
	}
	if row.Email != nil && *row.Email != "" {
		return *row.Email
	}
	if row.PhoneNumber != nil && *row.PhoneNumber != "" {
		return *row.PhoneNumber
	}
	return ""
}
