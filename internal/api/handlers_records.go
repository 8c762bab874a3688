package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) GetRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	customer, status, message := handler.loadCustomerParam(c, user.ID)
	if status != 0 {
		return apiError(c, status, message)
	}

	records, err := handler.repos.HealthRecords.ListByCustomer(user.ID, customer.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	views := make([]recordView, 0, len(records))
	for _, record := range records {
		views = append(views, buildRecordView(record))
	}
	return c.JSON(views)
}

func (handler *Handler) GetRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	customer, status, message := handler.loadCustomerParam(c, user.ID)
	if status != 0 {
		return apiError(c, status, message)
	}

	dateKey, err := services.ParseDateKey(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, found, err := handler.repos.HealthRecords.FindByCustomerAndDate(user.ID, customer.ID, dateKey)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load record")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no record for date")
	}
	return c.JSON(buildRecordView(record))
}

// UpsertRecord saves one day's measurements. The record write and, for a
// same-day save with changed height/weight, the customer profile update run
// inside a single transaction so the consistency invariant cannot be half
// applied.
func (handler *Handler) UpsertRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	customer, status, message := handler.loadCustomerParam(c, user.ID)
	if status != 0 {
		return apiError(c, status, message)
	}

	dateKey, err := services.ParseDateKey(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := recordPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	input := payload.toRecordInput()
	if err := services.ValidateRecordInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "metric value out of bounds")
	}

	now := time.Now().In(handler.location)
	todayKey := services.DateKey(now, handler.location)

	var saved models.HealthRecord
	err = handler.db.Transaction(func(tx *gorm.DB) error {
		record := models.HealthRecord{}
		result := tx.
			Where("user_id = ? AND customer_id = ? AND date_key = ?", user.ID, customer.ID, dateKey).
			Limit(1).
			Find(&record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			record = models.HealthRecord{
				UserID:     user.ID,
				CustomerID: customer.ID,
				DateKey:    dateKey,
			}
		}

		services.ApplyRecordInput(&record, input, customer, now)

		if record.ID == 0 {
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		} else if err := tx.Save(&record).Error; err != nil {
			return err
		}

		if services.ShouldSyncCustomerProfile(record, customer, dateKey, todayKey) {
			services.SyncCustomerProfile(&customer, record)
			if err := tx.Save(&customer).Error; err != nil {
				return err
			}
		}

		saved = record
		return nil
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save record")
	}

	return c.JSON(buildRecordView(saved))
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	customer, status, message := handler.loadCustomerParam(c, user.ID)
	if status != 0 {
		return apiError(c, status, message)
	}

	dateKey, err := services.ParseDateKey(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.repos.HealthRecords.DeleteByCustomerAndDate(user.ID, customer.ID, dateKey); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
