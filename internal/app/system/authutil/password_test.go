package authutil

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "correct horse battery", nil},
		{"minimum length", "sixchr", nil},
		{"too short", "five5", ErrPasswordTooShort},
		{"too long", strings.Repeat("a", 129), ErrPasswordTooLong},
		{"common", "password", ErrPasswordCommon},
		{"common mixed case", "PassWord", ErrPasswordCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword(%q) error = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("my-secret-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "my-secret-password" {
		t.Error("hash should not equal the plain password")
	}

	if !CheckPassword("my-secret-password", hash) {
		t.Error("CheckPassword() should accept the correct password")
	}
	if CheckPassword("wrong-password", hash) {
		t.Error("CheckPassword() should reject a wrong password")
	}
	if CheckPassword("my-secret-password", "not-a-bcrypt-hash") {
		t.Error("CheckPassword() should reject a malformed hash")
	}
}

func TestGenerateResetToken(t *testing.T) {
	a, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken() error = %v", err)
	}
	b, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken() error = %v", err)
	}

	if a == b {
		t.Error("consecutive tokens should differ")
	}
	if len(a) < 32 {
		t.Errorf("token length = %d, want >= 32", len(a))
	}
	if strings.ContainsAny(a, "+/") {
		t.Errorf("token %q should be URL-safe", a)
	}
}
