package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/helenmarch/vita/internal/models"
)

func todayKeyUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

func TestUpsertRecordStoresValuesAndDerivesBMI(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "record-bmi@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "Nora", "Ellis", nil, nil)

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")
	request := jsonRequest(t, http.MethodPost, "/api/customers/"+customer.PublicID+"/records/2024-03-05", authCookie, map[string]any{
		"fs":     100.0,
		"height": 175.0,
		"weight": 70.0,
	})

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upsert record request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	view := recordView{}
	decodeJSONBody(t, response, &view)

	if view.Date != "2024-03-05" {
		t.Fatalf("expected record date 2024-03-05, got %q", view.Date)
	}
	if got := view.Values["fs"]; got != 100 {
		t.Fatalf("expected fasting sugar 100, got %v", got)
	}
	if got := view.Values["bmi"]; got != 22.9 {
		t.Fatalf("expected derived bmi 22.9, got %v", got)
	}
	if view.HeightCm == nil || *view.HeightCm != 175 {
		t.Fatalf("expected stored height 175, got %v", view.HeightCm)
	}
}

func TestUpsertRecordSameDaySaveSyncsCustomerProfile(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "record-sync@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "Milo", "Grant", floatPtr(170), floatPtr(80))

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")
	request := jsonRequest(t, http.MethodPost, "/api/customers/"+customer.PublicID+"/records/"+todayKeyUTC(), authCookie, map[string]any{
		"height": 175.5,
		"weight": 70.0,
	})

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upsert record request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	stored := models.Customer{}
	if err := database.First(&stored, customer.ID).Error; err != nil {
		t.Fatalf("reload customer: %v", err)
	}
	if stored.HeightCm == nil || *stored.HeightCm != 175.5 {
		t.Fatalf("expected synced height 175.5, got %v", stored.HeightCm)
	}
	if stored.WeightKg == nil || *stored.WeightKg != 70 {
		t.Fatalf("expected synced weight 70, got %v", stored.WeightKg)
	}
}

func TestUpsertRecordPastDateLeavesProfileUntouched(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "record-past@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "Iris", "Holt", floatPtr(170), floatPtr(80))

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")
	request := jsonRequest(t, http.MethodPost, "/api/customers/"+customer.PublicID+"/records/2024-01-10", authCookie, map[string]any{
		"height": 180.0,
		"weight": 60.0,
	})

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upsert record request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	stored := models.Customer{}
	if err := database.First(&stored, customer.ID).Error; err != nil {
		t.Fatalf("reload customer: %v", err)
	}
	if stored.HeightCm == nil || *stored.HeightCm != 170 {
		t.Fatalf("expected profile height to stay 170, got %v", stored.HeightCm)
	}
	if stored.WeightKg == nil || *stored.WeightKg != 80 {
		t.Fatalf("expected profile weight to stay 80, got %v", stored.WeightKg)
	}

	record := models.HealthRecord{}
	if err := database.Where("customer_id = ? AND date_key = ?", customer.ID, "2024-01-10").First(&record).Error; err != nil {
		t.Fatalf("reload record: %v", err)
	}
	if record.HeightCm == nil || *record.HeightCm != 180 {
		t.Fatalf("expected record height 180, got %v", record.HeightCm)
	}
}

func TestUpsertRecordMergeKeepsUnsentValues(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "record-merge@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "Theo", "Marsh", nil, nil)

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	first := jsonRequest(t, http.MethodPost, "/api/customers/"+customer.PublicID+"/records/2024-05-01", authCookie, map[string]any{
		"fs": 100.0,
	})
	firstResponse, err := app.Test(first, -1)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	firstResponse.Body.Close()
	if firstResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected first save status 200, got %d", firstResponse.StatusCode)
	}

	second := jsonRequest(t, http.MethodPost, "/api/customers/"+customer.PublicID+"/records/2024-05-01", authCookie, map[string]any{
		"hdl": 50.0,
	})
	secondResponse, err := app.Test(second, -1)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	secondResponse.Body.Close()
	if secondResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected second save status 200, got %d", secondResponse.StatusCode)
	}

	get := jsonRequest(t, http.MethodGet, "/api/customers/"+customer.PublicID+"/records/2024-05-01", authCookie, nil)
	getResponse, err := app.Test(get, -1)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	defer getResponse.Body.Close()

	view := recordView{}
	decodeJSONBody(t, getResponse, &view)

	if got := view.Values["fs"]; got != 100 {
		t.Fatalf("expected earlier fasting sugar 100 to survive merge, got %v", got)
	}
	if got := view.Values["hdl"]; got != 50 {
		t.Fatalf("expected hdl 50, got %v", got)
	}
}

func TestUpsertRecordRejectsOutOfBoundsValue(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "record-bounds@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "Ada", "Payne", nil, nil)

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")
	request := jsonRequest(t, http.MethodPost, "/api/customers/"+customer.PublicID+"/records/2024-05-01", authCookie, map[string]any{
		"fs": -5.0,
	})

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upsert record request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestGetRecordForUnknownDateReturns404(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "record-missing@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "June", "Abbot", nil, nil)

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")
	request := jsonRequest(t, http.MethodGet, "/api/customers/"+customer.PublicID+"/records/2024-05-01", authCookie, nil)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("get record request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}

	payload := struct {
		Error string `json:"error"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.Error != "no record for date" {
		t.Fatalf("expected no record error, got %q", payload.Error)
	}
}

func TestDeleteRecordRemovesSingleDate(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "record-delete@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "Omar", "Reyes", nil, nil)

	records := []models.HealthRecord{
		{UserID: user.ID, CustomerID: customer.ID, DateKey: "2024-05-01", FastingSugar: floatPtr(95)},
		{UserID: user.ID, CustomerID: customer.ID, DateKey: "2024-05-02", FastingSugar: floatPtr(105)},
	}
	if err := database.Create(&records).Error; err != nil {
		t.Fatalf("create records: %v", err)
	}

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")
	request := jsonRequest(t, http.MethodDelete, "/api/customers/"+customer.PublicID+"/records/2024-05-01", authCookie, nil)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete record request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", response.StatusCode)
	}

	var remaining []models.HealthRecord
	if err := database.Where("customer_id = ?", customer.ID).Find(&remaining).Error; err != nil {
		t.Fatalf("load remaining records: %v", err)
	}
	if len(remaining) != 1 || remaining[0].DateKey != "2024-05-02" {
		t.Fatalf("expected only 2024-05-02 to remain, got %d records", len(remaining))
	}
}
