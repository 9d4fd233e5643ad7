package jwt

import (
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		Secret: "test-secret",
		Issuer: "impactlink-dashboard",
		TTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	companyID := "c1"

	token, err := m.Generate("u1", "company_admin", &companyID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "u1" {
		t.Errorf("subject = %q, want u1", claims.Subject)
	}
	if claims.Role != "company_admin" {
		t.Errorf("role = %q, want company_admin", claims.Role)
	}
	if claims.CompanyID == nil || *claims.CompanyID != "c1" {
		t.Errorf("company_id = %v, want c1", claims.CompanyID)
	}
	if claims.ID == "" {
		t.Error("jti is empty")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	other, err := NewManager(Config{Secret: "other-secret", Issuer: "impactlink-dashboard"})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := other.Generate("u1", "super_admin", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected verification failure for wrong secret")
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	other, err := NewManager(Config{Secret: "test-secret", Issuer: "someone-else"})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := other.Generate("u1", "super_admin", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected verification failure for wrong issuer")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	if _, err := m.Verify("not.a.token"); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewManager(Config{}); err == nil {
		t.Fatal("expected error for missing secret")
	}
}
