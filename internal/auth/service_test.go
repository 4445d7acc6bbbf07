package auth

import (
	"os"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login("test@example.com", "wrong-password"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := service.Login("test@example.com", "Password@123"); err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Register("Other User", "test@example.com", "Password@456"); err == nil {
		t.Fatal("expected duplicate email rejected")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	defer os.Unsetenv("JWT_SECRET")

	token, err := GenerateToken("user-1", "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	userID, email, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if userID != "user-1" || email != "test@example.com" {
		t.Fatalf("unexpected claims: %s %s", userID, email)
	}

	if _, _, err := ValidateToken(token + "tampered"); err == nil {
		t.Fatal("expected tampered token rejected")
	}
}
