package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("abc123", "normal", true)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "abc123" {
		t.Errorf("UserID = %q, want abc123", claims.UserID)
	}
	if claims.UserType != "normal" {
		t.Errorf("UserType = %q, want normal", claims.UserType)
	}
	if !claims.Admin {
		t.Error("Admin = false, want true")
	}
}

func TestJWTAdminFalse(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("abc123", "pediatrician", false)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.Admin {
		t.Error("Admin = true, want false")
	}
}

func TestJWTRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT("abc123", "normal", false)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("ValidateJWT accepted a token signed with a different secret")
	}
}

func TestJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateJWT("abc123", "normal", false); err == nil {
		t.Fatal("GenerateJWT succeeded without a secret")
	}
}
