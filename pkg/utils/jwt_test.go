package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	secret := "test-secret"

	token, err := GenerateToken(userID, "driver@example.com", "driver", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "driver@example.com" {
		t.Errorf("email = %q, want driver@example.com", claims.Email)
	}
	if claims.Role != "driver" {
		t.Errorf("role = %q, want driver", claims.Role)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.com", "customer", "secret-one", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token, "secret-two"); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.com", "customer", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token, "secret"); err == nil {
		t.Error("expected validation to fail for expired token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "secret"); err == nil {
		t.Error("expected validation to fail for malformed token")
	}
}
