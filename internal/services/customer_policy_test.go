package services

import (
	"errors"
	"testing"

	"github.com/helenmarch/vita/internal/models"
)

func TestNormalizeCustomerName(t *testing.T) {
	tests := []struct {
		name      string
		first     string
		last      string
		wantFirst string
		wantLast  string
		wantErr   bool
	}{
		{name: "plain names", first: "Asha", last: "Rao", wantFirst: "Asha", wantLast: "Rao"},
		{name: "trims whitespace", first: "  Asha ", last: " Rao  ", wantFirst: "Asha", wantLast: "Rao"},
		{name: "missing first", first: "   ", last: "Rao", wantErr: true},
		{name: "missing last", first: "Asha", last: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := NormalizeCustomerName(tt.first, tt.last)
			if tt.wantErr {
				if !errors.Is(err, ErrCustomerNameRequired) {
					t.Fatalf("error = %v, want ErrCustomerNameRequired", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if first != tt.wantFirst || last != tt.wantLast {
				t.Fatalf("got %q %q, want %q %q", first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestValidateGender(t *testing.T) {
	for _, gender := range []string{models.GenderUnset, models.GenderMale, models.GenderFemale, models.GenderOther} {
		if err := ValidateGender(gender); err != nil {
			t.Fatalf("gender %q should be accepted: %v", gender, err)
		}
	}
	if err := ValidateGender("robot"); !errors.Is(err, ErrCustomerGenderInvalid) {
		t.Fatalf("error = %v, want ErrCustomerGenderInvalid", err)
	}
}

func TestValidateBodyMeasure(t *testing.T) {
	if err := ValidateBodyMeasure(nil); err != nil {
		t.Fatalf("absent measure should be valid: %v", err)
	}
	if err := ValidateBodyMeasure(floatPtr(172.5)); err != nil {
		t.Fatalf("positive measure should be valid: %v", err)
	}
	if err := ValidateBodyMeasure(floatPtr(0)); !errors.Is(err, ErrCustomerMeasureInvalid) {
		t.Fatalf("error = %v, want ErrCustomerMeasureInvalid", err)
	}
}

func TestCustomerDisplayName(t *testing.T) {
	customer := models.Customer{FirstName: "Asha", LastName: "Rao"}
	if got := CustomerDisplayName(customer); got != "Asha Rao" {
		t.Fatalf("CustomerDisplayName() = %q, want %q", got, "Asha Rao")
	}
}
