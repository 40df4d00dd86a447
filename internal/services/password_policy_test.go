package services

import "testing"

func TestValidatePassword(t *testing.T) {
	if message := ValidatePassword("abc12"); message == "" {
		t.Fatal("expected short password to be rejected")
	}
	if message := ValidatePassword("abc123"); message != "" {
		t.Fatalf("expected six-character password to pass, got %q", message)
	}
}

func TestValidateUsername(t *testing.T) {
	if message := ValidateUsername(""); message == "" {
		t.Fatal("expected empty username to be rejected")
	}
	if message := ValidateUsername("   "); message == "" {
		t.Fatal("expected whitespace username to be rejected")
	}
	if message := ValidateUsername("marie.curie"); message != "" {
		t.Fatalf("expected username to pass, got %q", message)
	}
}
