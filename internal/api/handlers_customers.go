package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) GetCustomers(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	customers, err := handler.repos.Customers.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load customers")
	}

	views := make([]customerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, buildCustomerView(customer))
	}
	return c.JSON(views)
}

// SaveCustomer creates a customer when the payload carries no id, and
// merge-updates the stored one when it does.
func (handler *Handler) SaveCustomer(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := customerPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	firstName, lastName, err := services.NormalizeCustomerName(payload.FirstName, payload.LastName)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "first and last name required")
	}

	gender := strings.ToLower(strings.TrimSpace(payload.Gender))
	if err := services.ValidateGender(gender); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid gender")
	}
	if err := services.ValidateBodyMeasure(payload.HeightCm); err != nil {
		return apiError(c, fiber.StatusBadRequest, "height must be positive")
	}
	if err := services.ValidateBodyMeasure(payload.WeightKg); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weight must be positive")
	}

	var dateOfBirth *time.Time
	if strings.TrimSpace(payload.DateOfBirth) != "" {
		parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(payload.DateOfBirth), handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date of birth")
		}
		dateOfBirth = &parsed
	}

	if strings.TrimSpace(payload.ID) == "" {
		customer := models.Customer{
			PublicID:    uuid.NewString(),
			UserID:      user.ID,
			FirstName:   firstName,
			LastName:    lastName,
			DateOfBirth: dateOfBirth,
			Gender:      gender,
			HeightCm:    payload.HeightCm,
			WeightKg:    payload.WeightKg,
		}
		if err := handler.repos.Customers.Create(&customer); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to create customer")
		}
		return c.Status(fiber.StatusCreated).JSON(buildCustomerView(customer))
	}

	customer, err := handler.repos.Customers.FindByPublicID(user.ID, strings.TrimSpace(payload.ID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "customer not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load customer")
	}

	customer.FirstName = firstName
	customer.LastName = lastName
	customer.Gender = gender
	if dateOfBirth != nil {
		customer.DateOfBirth = dateOfBirth
	}
	if payload.HeightCm != nil {
		customer.HeightCm = payload.HeightCm
	}
	if payload.WeightKg != nil {
		customer.WeightKg = payload.WeightKg
	}

	if err := handler.repos.Customers.Save(&customer); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update customer")
	}
	return c.JSON(buildCustomerView(customer))
}

// DeleteCustomer removes the customer together with every record it owns.
func (handler *Handler) DeleteCustomer(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	customer, err := handler.repos.Customers.FindByPublicID(user.ID, c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "customer not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load customer")
	}

	if err := handler.repos.Customers.DeleteCascade(user.ID, customer.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete customer")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) loadCustomerParam(c *fiber.Ctx, userID uint) (models.Customer, int, string) {
	customer, err := handler.repos.Customers.FindByPublicID(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, fiber.StatusNotFound, "customer not found"
		}
		return models.Customer{}, fiber.StatusInternalServerError, "failed to load customer"
	}
	return customer, 0, ""
}
