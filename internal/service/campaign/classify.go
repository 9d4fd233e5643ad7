package campaign

import (
	"time"

	"impactlink-service/internal/domain/campaign"
	"impactlink-service/internal/pkg/timeparse"
)

// StatusResult carries the subscription classification together with the
// normalized list fields so callers only normalize once.
type StatusResult struct {
	Status        string
	ExpiresAt     *string
	SubscribeList []string
	ProductList   []campaign.ProductEntry
}

// extractProductName returns the normalized name of a product entry.
func extractProductName(entry campaign.ProductEntry) string {
	if entry.ProductName == nil {
		return ""
	}
	return normalizeName(*entry.ProductName)
}

// ComputeStatus classifies a customer's subscription for the target
// product at the evaluation instant:
//
//   - active: subscribed, at least one parseable expiry, none in the past
//   - expired: subscribed, at least one expiry in the past
//   - registered: everything else
//
// A subscribed customer whose matching entries carry no parseable expiry
// at all classifies as registered, not active. That mirrors the historic
// dashboard behavior and is pending product-owner review; do not change
// it here.
func ComputeStatus(customer campaign.CmsCustomer, now time.Time, targetName string) StatusResult {
	target := normalizeName(targetName)

	subscribeList := ToSubscribeList(customer.SubscribeList)
	productSource := customer.ProductList
	if productSource == nil {
		productSource = customer.SubscribeList
	}
	productList := ToProductList(productSource)

	subscribed := false
	for _, item := range subscribeList {
		if normalizeName(item) == target {
			subscribed = true
			break
		}
	}

	matched := make([]campaign.ProductEntry, 0, len(productList))
	for _, entry := range productList {
		if extractProductName(entry) == target {
			matched = append(matched, entry)
		}
	}

	parsed := make([]time.Time, 0, len(matched))
	for _, entry := range matched {
		if entry.ExpiredAt == nil {
			continue
		}
		if t, ok := timeparse.Parse(*entry.ExpiredAt); ok {
			parsed = append(parsed, t)
		}
	}

	hasExpired := false
	for _, t := range parsed {
		if t.Before(now) {
			hasExpired = true
			break
		}
	}
	allFuture := len(parsed) > 0
	for _, t := range parsed {
		if t.Before(now) {
			allFuture = false
			break
		}
	}

	var expiresAt *string
	if len(matched) > 0 {
		expiresAt = matched[len(matched)-1].ExpiredAt
	}

	switch {
	case subscribed && allFuture:
		return StatusResult{campaign.StatusActive, expiresAt, subscribeList, productList}
	case subscribed && hasExpired:
		return StatusResult{campaign.StatusExpired, expiresAt, subscribeList, productList}
	default:
		return StatusResult{campaign.StatusRegistered, nil, subscribeList, productList}
	}
}

// ComputeActivity buckets a customer by the age of their last ledger
// debit: under 7 days is active, up to 30 days idle, anything older (or
// missing/unparseable) pasif. The returned timestamp is the parsed value
// in normalized RFC3339 UTC form, nil only when no valid timestamp
// exists.
func ComputeActivity(lastDebitAt *string, now time.Time) (campaign.ActivityStatus, *string) {
	if lastDebitAt == nil || *lastDebitAt == "" {
		return campaign.ActivityPasif, nil
	}

	ts, ok := timeparse.Parse(*lastDebitAt)
	if !ok {
		return campaign.ActivityPasif, nil
	}

	iso := ts.UTC().Format(time.RFC3339)
	diffDays := now.Sub(ts).Hours() / 24

	switch {
	case diffDays < 7:
		return campaign.ActivityActive, &iso
	case diffDays <= 30:
		return campaign.ActivityIdle, &iso
	default:
		return campaign.ActivityPasif, &iso
	}
}
