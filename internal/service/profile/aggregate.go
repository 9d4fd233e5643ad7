package profile

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"impactlink-service/internal/domain/profile"
	"impactlink-service/internal/pkg/timeparse"
)

// numericAmount coerces a ledger amount into a float. The ledger stores
// amounts as numbers or numeric strings; anything else does not count as
// money.
func numericAmount(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AggregateDaily folds a user's transaction list into per-product,
// per-calendar-day rollups, newest day first and product name ascending
// within a day. Rows without a parseable created_at are skipped entirely;
// rows with a non-numeric amount count toward total_count but not the
// monetary sums. Credits add to the net, everything else is treated as a
// debit and subtracts.
func AggregateDaily(transactions []profile.Transaction) []profile.DailyAggregate {
	buckets := make(map[string]*profile.DailyAggregate)
	order := make([]string, 0)

	for _, txn := range transactions {
		if txn.CreatedAt == nil {
			continue
		}
		ts, ok := timeparse.Parse(*txn.CreatedAt)
		if !ok {
			continue
		}
		day := ts.UTC().Format("2006-01-02")

		keyName := ""
		if txn.ProductName != nil {
			keyName = *txn.ProductName
		}
		key := keyName + "__" + day

		agg, exists := buckets[key]
		if !exists {
			name := txn.ProductName
			if name == nil {
				dash := "-"
				name = &dash
			}
			agg = &profile.DailyAggregate{ProductName: name, Date: day}
			buckets[key] = agg
			order = append(order, key)
		}

		agg.TotalCount++

		amount, numeric := numericAmount(txn.Amount)
		if !numeric {
			continue
		}
		if txn.Type != nil && strings.ToLower(*txn.Type) == "credit" {
			agg.CreditAmount += amount
			agg.CreditCount++
			agg.NetAmount += amount
		} else {
			agg.DebitAmount += amount
			agg.DebitCount++
			agg.NetAmount -= amount
		}
	}

	result := make([]profile.DailyAggregate, 0, len(buckets))
	for _, key := range order {
		result = append(result, *buckets[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			// Newest first; dates are YYYY-MM-DD so string order works.
			return result[i].Date > result[j].Date
		}
		var ni, nj string
		if result[i].ProductName != nil {
			ni = *result[i].ProductName
		}
		if result[j].ProductName != nil {
			nj = *result[j].ProductName
		}
		return ni < nj
	})

	return result
}
