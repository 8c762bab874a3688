package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	return handler.render(c, "login", fiber.Map{
		"Title":     "Sign in",
		"CSRFToken": csrfToken(c),
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	return handler.render(c, "register", fiber.Map{
		"Title":     "Create account",
		"CSRFToken": csrfToken(c),
	})
}

func (handler *Handler) ShowForgotPasswordPage(c *fiber.Ctx) error {
	return handler.render(c, "forgot_password", fiber.Map{
		"Title":     "Account recovery",
		"CSRFToken": csrfToken(c),
	})
}

func (handler *Handler) ShowResetPasswordPage(c *fiber.Ctx) error {
	return handler.render(c, "reset_password", fiber.Map{
		"Title":     "Reset password",
		"CSRFToken": csrfToken(c),
		"Token":     c.Query("token"),
	})
}

type metricCardView struct {
	Key      models.MetricKey
	Label    string
	Unit     string
	Value    *float64
	Status   models.MetricStatus
	ReadOnly bool
}

func buildMetricCards(record *models.HealthRecord) []metricCardView {
	cards := make([]metricCardView, 0, len(models.MetricKeys()))
	for _, key := range models.MetricKeys() {
		var value *float64
		if record != nil {
			value = record.MetricValue(key)
		}
		cards = append(cards, metricCardView{
			Key:      key,
			Label:    services.MetricLabel(key),
			Unit:     services.MetricUnit(key),
			Value:    value,
			Status:   services.StatusFor(key, value),
			ReadOnly: key == models.MetricBMI,
		})
	}
	return cards
}

// ShowDashboard renders the customer picker, the date selector, and one
// metric card per tracked measurement for the active (customer, date) pair.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	customers, err := handler.repos.Customers.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load customers")
	}

	selectedDate := services.DateKey(time.Now(), handler.location)
	if raw := c.Query("date"); raw != "" {
		if parsed, err := services.ParseDateKey(raw); err == nil {
			selectedDate = parsed
		}
	}

	var active *models.Customer
	if requested := c.Query("customer"); requested != "" {
		for index := range customers {
			if customers[index].PublicID == requested {
				active = &customers[index]
				break
			}
		}
	}
	if active == nil && len(customers) > 0 {
		active = &customers[0]
	}

	var record *models.HealthRecord
	if active != nil {
		found, exists, err := handler.repos.HealthRecords.FindByCustomerAndDate(user.ID, active.ID, selectedDate)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load record")
		}
		if exists {
			record = &found
		}
	}

	data := fiber.Map{
		"Title":        "Dashboard",
		"CSRFToken":    csrfToken(c),
		"User":         user,
		"Customers":    customers,
		"Active":       active,
		"SelectedDate": selectedDate,
		"Record":       record,
		"Cards":        buildMetricCards(record),
	}
	return handler.render(c, "dashboard", data)
}

// ShowReport renders the printable HTML report for a customer over an
// inclusive date range. An empty range result renders the "no records in
// range" notice, not an error page.
func (handler *Handler) ShowReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	customer, status, message := handler.loadCustomerParam(c, user.ID)
	if status != 0 {
		return apiError(c, status, message)
	}

	fromKey, toKey, err := services.ParseReportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid report range")
	}

	records, err := handler.repos.HealthRecords.ListByCustomer(user.ID, customer.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}
	inRange := services.FilterRecordsInRange(records, fromKey, toKey)

	return handler.render(c, "report", fiber.Map{
		"Title":        "Report",
		"Customer":     customer,
		"CustomerName": services.CustomerDisplayName(customer),
		"From":         fromKey,
		"To":           toKey,
		"RangeLabel":   describeReportRange(fromKey, toKey),
		"Rows":         buildReportRows(inRange),
		"GeneratedAt":  time.Now().In(handler.location).Format("2006-01-02 15:04"),
	})
}
