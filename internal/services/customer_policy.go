package services

import (
	"errors"
	"strings"

	"github.com/helenmarch/vita/internal/models"
)

var (
	ErrCustomerNameRequired   = errors.New("first and last name required")
	ErrCustomerGenderInvalid  = errors.New("invalid gender")
	ErrCustomerMeasureInvalid = errors.New("height and weight must be positive")
)

// NormalizeCustomerName trims both name parts and rejects empty ones.
func NormalizeCustomerName(firstRaw string, lastRaw string) (string, string, error) {
	first := strings.TrimSpace(firstRaw)
	last := strings.TrimSpace(lastRaw)
	if first == "" || last == "" {
		return "", "", ErrCustomerNameRequired
	}
	return first, last, nil
}

func ValidateGender(gender string) error {
	switch gender {
	case models.GenderUnset, models.GenderMale, models.GenderFemale, models.GenderOther:
		return nil
	default:
		return ErrCustomerGenderInvalid
	}
}

// ValidateBodyMeasure checks an optional height or weight value.
func ValidateBodyMeasure(value *float64) error {
	if value == nil {
		return nil
	}
	if *value <= 0 {
		return ErrCustomerMeasureInvalid
	}
	return nil
}

func CustomerDisplayName(customer models.Customer) string {
	return strings.TrimSpace(customer.FirstName + " " + customer.LastName)
}
