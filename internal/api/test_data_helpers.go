package api

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/helenmarch/vita/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func floatPtr(value float64) *float64 {
	return &value
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		DisplayName:  "Test User",
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestCustomer(t *testing.T, database *gorm.DB, userID uint, firstName string, lastName string, heightCm *float64, weightKg *float64) models.Customer {
	t.Helper()

	customer := models.Customer{
		PublicID:  uuid.NewString(),
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		HeightCm:  heightCm,
		WeightKg:  weightKg,
	}
	if err := database.Create(&customer).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}
