package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercases and trims", raw: "  Asha@Example.COM ", want: "asha@example.com"},
		{name: "empty", raw: "   ", want: ""},
		{name: "not an address", raw: "not-an-email", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(tt.raw); got != tt.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	if _, _, err := NormalizeCredentialsInput("asha@example.com", ""); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("error = %v, want ErrAuthCredentialsInvalid", err)
	}
	email, password, err := NormalizeCredentialsInput(" Asha@example.com ", " Secret1x ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "asha@example.com" || password != "Secret1x" {
		t.Fatalf("got %q %q", email, password)
	}
}

func TestValidateRecoveryCodeFormat(t *testing.T) {
	if err := ValidateRecoveryCodeFormat("VITA-AB12-CD34-EF56"); err != nil {
		t.Fatalf("well-formed code rejected: %v", err)
	}
	for _, code := range []string{"", "VITA-AB12-CD34", "CODE-AB12-CD34-EF56", "vita-ab12-cd34-ef56"} {
		if err := ValidateRecoveryCodeFormat(code); !errors.Is(err, ErrAuthRecoveryCodeInvalid) {
			t.Fatalf("code %q: error = %v, want ErrAuthRecoveryCodeInvalid", code, err)
		}
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "strong", password: "StrongPass1", valid: true},
		{name: "too short", password: "Sp1", valid: false},
		{name: "no digit", password: "StrongPass", valid: false},
		{name: "no upper", password: "strongpass1", valid: false},
		{name: "no lower", password: "STRONGPASS1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrWeakPassword) {
				t.Fatalf("error = %v, want ErrWeakPassword", err)
			}
		})
	}
}
