package campaign

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"impactlink-service/internal/domain/campaign"
)

// nameKeys are the object fields that may carry a product name, in
// priority order.
var nameKeys = []string{"product_name", "name", "product"}

// normalizeName canonicalizes a product name for comparison.
func normalizeName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// candidateName extracts the first non-empty name field from an object.
func candidateName(obj map[string]any) string {
	for _, key := range nameKeys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// coerceItem turns a single subscribe_list element into a display string.
// Objects yield their name field when present, otherwise their JSON form.
func coerceItem(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		if name := candidateName(v); name != "" {
			return name
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return "[object]"
		}
		return string(raw)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ToSubscribeList coerces a raw subscribe_list value into a flat list of
// subscription names. The stored value may be an array, a JSON-encoded
// string, a comma-separated string, or a single object; every malformed
// shape degrades to an empty list. The result is never nil and the
// function never fails.
func ToSubscribeList(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := coerceItem(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		var parsed []any
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			out := make([]string, 0, len(parsed))
			for _, item := range parsed {
				if s := coerceItem(item); s != "" {
					out = append(out, s)
				}
			}
			return out
		}
		// Not JSON; fall back to comma-split.
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case map[string]any:
		if nested, ok := v["product_list"].([]any); ok {
			return ToSubscribeList(nested)
		}
		if name := candidateName(v); name != "" {
			return []string{name}
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return []string{}
		}
		return []string{string(raw)}
	default:
		return []string{}
	}
}

// expiredAtOf pulls a raw expired_at string out of an object, nil when
// absent or not a string.
func expiredAtOf(obj map[string]any) *string {
	if s, ok := obj["expired_at"].(string); ok {
		return &s
	}
	return nil
}

// ToProductList mirrors ToSubscribeList but preserves expiry timestamps.
// An array element that itself carries a nested product_list is flattened
// into the result. String items become entries with no expiry.
func ToProductList(value any) []campaign.ProductEntry {
	switch v := value.(type) {
	case nil:
		return []campaign.ProductEntry{}
	case []any:
		flattened := make([]campaign.ProductEntry, 0, len(v))
		for _, item := range v {
			switch it := item.(type) {
			case map[string]any:
				if nested, ok := it["product_list"].([]any); ok {
					// Nested list inside a subscribe_list entry.
					flattened = append(flattened, ToProductList(nested)...)
					continue
				}
				var name *string
				if n := candidateName(it); n != "" {
					name = &n
				}
				flattened = append(flattened, campaign.ProductEntry{
					ProductName: name,
					ExpiredAt:   expiredAtOf(it),
				})
			case string:
				s := it
				flattened = append(flattened, campaign.ProductEntry{ProductName: &s})
			default:
				s := coerceItem(item)
				flattened = append(flattened, campaign.ProductEntry{ProductName: &s})
			}
		}
		return flattened
	case string:
		if strings.TrimSpace(v) == "" {
			return []campaign.ProductEntry{}
		}
		var parsed []any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return []campaign.ProductEntry{}
		}
		return ToProductList(parsed)
	case map[string]any:
		if nested, ok := v["product_list"].([]any); ok {
			return ToProductList(nested)
		}
		if name := candidateName(v); name != "" {
			return []campaign.ProductEntry{{
				ProductName: &name,
				ExpiredAt:   expiredAtOf(v),
			}}
		}
		return []campaign.ProductEntry{}
	default:
		return []campaign.ProductEntry{}
	}
}
