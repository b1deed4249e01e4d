package session

import (
	"testing"
	"time"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s, err := Issue(secret, "admin-123", "superadmin", 30*time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := Verify(s, secret, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.AdminID != "admin-123" {
		t.Fatalf("admin id mismatch: %q", got.AdminID)
	}
	if got.Role != "superadmin" {
		t.Fatalf("role mismatch: %q", got.Role)
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s, err := Issue(secret, "admin-123", "admin", 10*time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := Verify(s, secret, now.Add(time.Hour)); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)

	s, err := Issue("secret_a", "admin-123", "admin", 10*time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := Verify(s, "secret_b", now); err == nil {
		t.Fatalf("expected signature mismatch to be rejected")
	}
}
