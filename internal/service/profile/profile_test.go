package profile

import (
	"context"
	"errors"
	"testing"

	"impactlink-service/internal/domain/profile"
	xerrors "impactlink-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeStore struct {
	profile    *profile.Profile
	profileErr error
	txns       []profile.Transaction
	txnsErr    error
	email      *string
	emailErr   error

	gotLimit int
}

func (f *fakeStore) LatestProfileByGuid(ctx context.Context, guid string) (*profile.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeStore) TransactionsByUser(ctx context.Context, userID string, limit int) ([]profile.Transaction, error) {
	f.gotLimit = limit
	return f.txns, f.txnsErr
}

func (f *fakeStore) CmsCustomerEmailByGuid(ctx context.Context, guid string) (*string, error) {
	return f.email, f.emailErr
}

func TestUserDetail(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		profile: &profile.Profile{ID: "p1", CustomerGUID: strp("g1"), Email: strp("a@example.com")},
		txns: []profile.Transaction{
			txn("AI untuk UMKM", "2026-03-10T08:00:00Z", "debit", float64(100)),
		},
	}
	svc := NewProfileService(store, zap.NewNop())

	detail, err := svc.UserDetail(context.Background(), "g1", 0)
	if err != nil {
		t.Fatalf("UserDetail returned error: %v", err)
	}
	if detail.Profile.ID != "p1" {
		t.Errorf("profile id = %q, want p1", detail.Profile.ID)
	}
	if len(detail.Transactions) != 1 {
		t.Errorf("got %d transactions, want 1", len(detail.Transactions))
	}
	if len(detail.Daily) != 1 {
		t.Errorf("got %d daily buckets, want 1", len(detail.Daily))
	}
	if store.gotLimit != 500 {
		t.Errorf("limit = %d, want default 500", store.gotLimit)
	}
}

func TestUserDetailLimitClamped(t *testing.T) {
	t.Parallel()

	store := &fakeStore{profile: &profile.Profile{ID: "p1"}}
	svc := NewProfileService(store, zap.NewNop())

	if _, err := svc.UserDetail(context.Background(), "g1", 5000); err != nil {
		t.Fatalf("UserDetail returned error: %v", err)
	}
	if store.gotLimit != 1000 {
		t.Errorf("limit = %d, want cap 1000", store.gotLimit)
	}
}

func TestUserDetailMissingGuid(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(&fakeStore{}, zap.NewNop())
	_, err := svc.UserDetail(context.Background(), "", 0)
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestUserDetailCmsFallback(t *testing.T) {
	t.Parallel()

	store := &fakeStore{email: strp("fallback@example.com")}
	svc := NewProfileService(store, zap.NewNop())

	detail, err := svc.UserDetail(context.Background(), "g1", 0)
	if err != nil {
		t.Fatalf("UserDetail returned error: %v", err)
	}
	if detail.Profile.Email == nil || *detail.Profile.Email != "fallback@example.com" {
		t.Errorf("fallback email = %v", detail.Profile.Email)
	}
	if detail.Profile.CustomerGUID == nil || *detail.Profile.CustomerGUID != "g1" {
		t.Errorf("fallback guid = %v", detail.Profile.CustomerGUID)
	}
	if detail.Transactions == nil || detail.Daily == nil {
		t.Error("transactions and daily must never be nil")
	}
}

func TestUserDetailNotFound(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(&fakeStore{}, zap.NewNop())
	_, err := svc.UserDetail(context.Background(), "unknown", 0)
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUserDetailStoreErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	cases := []struct {
		name  string
		store *fakeStore
	}{
		{"profile fetch fails", &fakeStore{profileErr: boom}},
		{"transactions fetch fails", &fakeStore{profile: &profile.Profile{ID: "p1"}, txnsErr: boom}},
		{"cms fallback fails", &fakeStore{emailErr: boom}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewProfileService(tc.store, zap.NewNop())
			_, err := svc.UserDetail(context.Background(), "g1", 0)
			if !errors.Is(err, boom) {
				t.Fatalf("error = %v, want wrapped boom", err)
			}
		})
	}
}
