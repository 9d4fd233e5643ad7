package campaign

import (
	"testing"

	"impactlink-service/internal/domain/campaign"
)

func strp(s string) *string { return &s }

func TestDedupeCustomers(t *testing.T) {
	t.Parallel()

	rows := []campaign.CmsCustomer{
		{GUID: strp("g1"), Email: strp("a@example.com")},
		{GUID: strp("g1"), Email: strp("other@example.com")},
		{Email: strp("b@example.com")},
		{PhoneNumber: strp("08123")},
	}

	got := DedupeCustomers(rows)
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	// First occurrence wins.
	if *got[0].Email != "a@example.com" {
		t.Errorf("first row email = %q, want a@example.com", *got[0].Email)
	}
	if *got[1].Email != "b@example.com" {
		t.Errorf("second row email = %q", *got[1].Email)
	}
	if *got[2].PhoneNumber != "08123" {
		t.Errorf("third row phone = %q", *got[2].PhoneNumber)
	}
}

func TestDedupeCustomersIdentityPriority(t *testing.T) {
	t.Parallel()

	// Same email but distinct guids must stay distinct: guid outranks
	// email as the identity key.
	rows := []campaign.CmsCustomer{
		{GUID: strp("g1"), Email: strp("shared@example.com")},
		{GUID: strp("g2"), Email: strp("shared@example.com")},
	}
	if got := DedupeCustomers(rows); len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}

	// Empty guid falls through to email.
	rows = []campaign.CmsCustomer{
		{GUID: strp(""), Email: strp("x@example.com")},
		{Email: strp("x@example.com")},
	}
	if got := DedupeCustomers(rows); len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
}

func TestDedupeCustomersAnonymousRowsNeverCollapse(t *testing.T) {
	t.Parallel()

	rows := []campaign.CmsCustomer{
		{},
		{},
		{GUID: strp("g1")},
		{},
	}
	got := DedupeCustomers(rows)
	if len(got) != 4 {
		t.Fatalf("got %d rows, want 4 (anonymous rows are all kept)", len(got))
	}
}

func TestDedupeCustomersEmpty(t *testing.T) {
	t.Parallel()

	got := DedupeCustomers(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty slice", got)
	}
}
