package util

import (
	"testing"
	"time"

	"kernel_school_backend/internal/model"
)

const testSecret = "test-secret-key-for-unit-tests-only"

func testUser() *model.User {
	u := &model.User{
		FullName: "Olena Kovalenko",
		Email:    "olena@example.com",
		Role:     model.Student,
		Tariff:   model.TariffFree,
	}
	u.ID = 42
	return u
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != model.Student {
		t.Errorf("role = %q, want %q", claims.Role, model.Student)
	}
	if claims.FullName != "Olena Kovalenko" {
		t.Errorf("full name = %q", claims.FullName)
	}
	if claims.Tariff != model.TariffFree {
		t.Errorf("tariff = %q, want %q", claims.Tariff, model.TariffFree)
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if _, err := ParseJWT(token, "another-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not.a.token", testSecret); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
