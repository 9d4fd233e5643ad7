package campaign

import (
	"testing"
	"time"

	"impactlink-service/internal/domain/campaign"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestComputeStatus(t *testing.T) {
	t.Parallel()

	future := testNow.Add(24 * time.Hour).Format(time.RFC3339)
	past := testNow.Add(-24 * time.Hour).Format(time.RFC3339)

	cases := []struct {
		name       string
		customer   campaign.CmsCustomer
		wantStatus string
	}{
		{
			name: "subscribed with future expiry is active",
			customer: campaign.CmsCustomer{
				SubscribeList: []any{"AI untuk UMKM"},
				ProductList: []any{
					map[string]any{"product_name": "AI untuk UMKM", "expired_at": future},
				},
			},
			wantStatus: campaign.StatusActive,
		},
		{
			name: "subscribed with past expiry is expired",
			customer: campaign.CmsCustomer{
				SubscribeList: []any{"AI untuk UMKM"},
				ProductList: []any{
					map[string]any{"product_name": "AI untuk UMKM", "expired_at": past},
				},
			},
			wantStatus: campaign.StatusExpired,
		},
		{
			name: "one past expiry among future ones is expired",
			customer: campaign.CmsCustomer{
				SubscribeList: []any{"AI untuk UMKM"},
				ProductList: []any{
					map[string]any{"product_name": "AI untuk UMKM", "expired_at": future},
					map[string]any{"product_name": "AI untuk UMKM", "expired_at": past},
				},
			},
			wantStatus: campaign.StatusExpired,
		},
		{
			name: "subscribed without parseable expiry stays registered",
			customer: campaign.CmsCustomer{
				SubscribeList: []any{"AI untuk UMKM"},
				ProductList: []any{
					map[string]any{"product_name": "AI untuk UMKM", "expired_at": "soon"},
				},
			},
			wantStatus: campaign.StatusRegistered,
		},
		{
			name: "not subscribed is registered",
			customer: campaign.CmsCustomer{
				SubscribeList: []any{"Paket Basic"},
				ProductList: []any{
					map[string]any{"product_name": "Paket Basic", "expired_at": future},
				},
			},
			wantStatus: campaign.StatusRegistered,
		},
		{
			name:       "empty lists are registered",
			customer:   campaign.CmsCustomer{},
			wantStatus: campaign.StatusRegistered,
		},
		{
			name: "matching is case and whitespace insensitive",
			customer: campaign.CmsCustomer{
				SubscribeList: []any{"  ai UNTUK umkm  "},
				ProductList: []any{
					map[string]any{"product_name": "AI Untuk UMKM", "expired_at": future},
				},
			},
			wantStatus: campaign.StatusActive,
		},
		{
			name: "product list falls back to subscribe list",
			customer: campaign.CmsCustomer{
				SubscribeList: []any{
					map[string]any{"product_name": "AI untuk UMKM", "expired_at": future},
				},
			},
			wantStatus: campaign.StatusActive,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := ComputeStatus(tc.customer, testNow, "AI untuk UMKM")
			if res.Status != tc.wantStatus {
				t.Fatalf("status = %q, want %q", res.Status, tc.wantStatus)
			}
			if res.SubscribeList == nil || res.ProductList == nil {
				t.Fatal("normalized lists must never be nil")
			}
		})
	}
}

func TestComputeStatusExpiresAt(t *testing.T) {
	t.Parallel()

	first := testNow.Add(24 * time.Hour).Format(time.RFC3339)
	last := testNow.Add(48 * time.Hour).Format(time.RFC3339)

	c := campaign.CmsCustomer{
		SubscribeList: []any{"AI untuk UMKM"},
		ProductList: []any{
			map[string]any{"product_name": "AI untuk UMKM", "expired_at": first},
			map[string]any{"product_name": "AI untuk UMKM", "expired_at": last},
		},
	}

	res := ComputeStatus(c, testNow, "AI untuk UMKM")
	if res.ExpiresAt == nil || *res.ExpiresAt != last {
		t.Fatalf("expires_at = %v, want %q (last matched entry)", res.ExpiresAt, last)
	}

	// Registered customers expose no expiry even when entries carry one.
	res = ComputeStatus(c, testNow, "Other Product")
	if res.Status != campaign.StatusRegistered {
		t.Fatalf("status = %q, want registered", res.Status)
	}
	if res.ExpiresAt != nil {
		t.Fatalf("registered expires_at = %v, want nil", *res.ExpiresAt)
	}
}

func TestComputeActivity(t *testing.T) {
	t.Parallel()

	ts := func(daysAgo int) *string {
		s := testNow.AddDate(0, 0, -daysAgo).Format(time.RFC3339)
		return &s
	}
	bad := "not a timestamp"

	cases := []struct {
		name     string
		last     *string
		want     campaign.ActivityStatus
		wantNilT bool
	}{
		{name: "3 days ago is active", last: ts(3), want: campaign.ActivityActive},
		{name: "10 days ago is idle", last: ts(10), want: campaign.ActivityIdle},
		{name: "40 days ago is pasif", last: ts(40), want: campaign.ActivityPasif},
		{name: "exactly 7 days is idle", last: ts(7), want: campaign.ActivityIdle},
		{name: "exactly 30 days is idle", last: ts(30), want: campaign.ActivityIdle},
		{name: "nil is pasif", last: nil, want: campaign.ActivityPasif, wantNilT: true},
		{name: "unparseable is pasif", last: &bad, want: campaign.ActivityPasif, wantNilT: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, lastUsage := ComputeActivity(tc.last, testNow)
			if status != tc.want {
				t.Fatalf("status = %q, want %q", status, tc.want)
			}
			if tc.wantNilT && lastUsage != nil {
				t.Fatalf("last usage = %v, want nil", *lastUsage)
			}
			if !tc.wantNilT && lastUsage == nil {
				t.Fatal("last usage = nil, want normalized timestamp")
			}
		})
	}
}

func TestComputeActivityNormalizesTimestamp(t *testing.T) {
	t.Parallel()

	raw := "2026-03-10 08:30:00"
	status, lastUsage := ComputeActivity(&raw, testNow)
	if status != campaign.ActivityActive {
		t.Fatalf("status = %q, want active", status)
	}
	if lastUsage == nil || *lastUsage != "2026-03-10T08:30:00Z" {
		t.Fatalf("last usage = %v, want 2026-03-10T08:30:00Z", lastUsage)
	}
}
