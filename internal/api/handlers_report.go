package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
)

// reportUserAndRange resolves the authenticated user, the customer from the
// URL, and the optional from/to range for every report flavor.
func (handler *Handler) reportUserAndRange(c *fiber.Ctx) (*models.User, models.Customer, string, string, int, string) {
	user, ok := currentUser(c)
	if !ok {
		return nil, models.Customer{}, "", "", fiber.StatusUnauthorized, "unauthorized"
	}

	customer, status, message := handler.loadCustomerParam(c, user.ID)
	if status != 0 {
		return nil, models.Customer{}, "", "", status, message
	}

	fromKey, toKey, err := services.ParseReportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return nil, models.Customer{}, "", "", fiber.StatusBadRequest, "invalid report range"
	}

	return user, customer, fromKey, toKey, 0, ""
}

func (handler *Handler) fetchReportRecords(userID uint, customerID uint, fromKey string, toKey string) ([]models.HealthRecord, error) {
	return handler.repos.HealthRecords.ListByCustomerRange(userID, customerID, fromKey, toKey)
}

func (handler *Handler) GetReport(c *fiber.Ctx) error {
	user, customer, fromKey, toKey, status, message := handler.reportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	records, err := handler.fetchReportRecords(user.ID, customer.ID, fromKey, toKey)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	return c.JSON(fiber.Map{
		"customer": buildCustomerView(customer),
		"from":     fromKey,
		"to":       toKey,
		"rows":     buildReportRows(records),
	})
}

func (handler *Handler) ReportCSV(c *fiber.Ctx) error {
	user, customer, fromKey, toKey, status, message := handler.reportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	records, err := handler.fetchReportRecords(user.ID, customer.ID, fromKey, toKey)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	headers := []string{"Date"}
	for _, key := range models.MetricKeys() {
		headers = append(headers, fmt.Sprintf("%s (%s)", services.MetricLabel(key), services.MetricUnit(key)))
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(headers); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}

	for _, record := range records {
		row := []string{record.DateKey}
		for _, key := range models.MetricKeys() {
			value := record.MetricValue(key)
			if value == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%g", *value))
		}
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build report")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}

	setReportAttachmentHeaders(c, "text/csv", buildReportFilename(customer, time.Now().In(handler.location), "csv"))
	return c.Send(output.Bytes())
}

func buildReportFilename(customer models.Customer, now time.Time, extension string) string {
	return fmt.Sprintf("vita-report-%s-%s.%s", customer.PublicID, now.Format("2006-01-02"), extension)
}

func setReportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
