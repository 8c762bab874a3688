package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/helenmarch/vita/internal/models"
	"gorm.io/gorm"
)

var errInjectedStorageFailure = errors.New("injected storage failure")

// failCustomerDeletes makes every delete aimed at the customers table fail,
// simulating a mid-transaction storage fault after the record deletes ran.
func failCustomerDeletes(t *testing.T, database *gorm.DB) {
	t.Helper()

	err := database.Callback().Delete().Before("gorm:delete").Register("vita_test_fail_customer_delete", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*models.Customer); ok {
			_ = tx.AddError(errInjectedStorageFailure)
		}
	})
	if err != nil {
		t.Fatalf("register delete failure injection: %v", err)
	}
}

func failCustomerUpdates(t *testing.T, database *gorm.DB) {
	t.Helper()

	err := database.Callback().Update().Before("gorm:update").Register("vita_test_fail_customer_update", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*models.Customer); ok {
			_ = tx.AddError(errInjectedStorageFailure)
		}
	})
	if err != nil {
		t.Fatalf("register update failure injection: %v", err)
	}
}

func TestDeleteCustomerRollsBackRecordsWhenCustomerDeleteFails(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "cascade-atomic@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "Rae", "Lindt", nil, nil)

	records := []models.HealthRecord{
		{UserID: user.ID, CustomerID: customer.ID, DateKey: "2024-04-01", FastingSugar: floatPtr(90)},
		{UserID: user.ID, CustomerID: customer.ID, DateKey: "2024-04-02", HDL: floatPtr(58)},
		{UserID: user.ID, CustomerID: customer.ID, DateKey: "2024-04-03", LDL: floatPtr(95)},
	}
	if err := database.Create(&records).Error; err != nil {
		t.Fatalf("create records: %v", err)
	}

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")
	failCustomerDeletes(t, database)

	request := jsonRequest(t, http.MethodDelete, "/api/customers/"+customer.PublicID, authCookie, nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete customer request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500 from the injected failure, got %d", response.StatusCode)
	}

	var recordCount int64
	if err := database.Model(&models.HealthRecord{}).Where("customer_id = ?", customer.ID).Count(&recordCount).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if recordCount != int64(len(records)) {
		t.Fatalf("expected the record deletes to roll back, %d of %d records remain", recordCount, len(records))
	}

	stored := models.Customer{}
	if err := database.First(&stored, customer.ID).Error; err != nil {
		t.Fatalf("expected the customer to survive the failed cascade: %v", err)
	}
}

func TestUpsertRecordRollsBackWhenProfileSyncFails(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "sync-atomic@example.com", "StrongPass1")
	customer := createTestCustomer(t, database, user.ID, "Cleo", "Varga", floatPtr(170), floatPtr(80))

	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")
	failCustomerUpdates(t, database)

	dateKey := todayKeyUTC()
	request := jsonRequest(t, http.MethodPost, "/api/customers/"+customer.PublicID+"/records/"+dateKey, authCookie, map[string]any{
		"height": 180.0,
		"weight": 64.0,
		"fs":     100.0,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upsert record request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500 from the injected failure, got %d", response.StatusCode)
	}

	var recordCount int64
	if err := database.Model(&models.HealthRecord{}).
		Where("customer_id = ? AND date_key = ?", customer.ID, dateKey).
		Count(&recordCount).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if recordCount != 0 {
		t.Fatal("expected the record write to roll back with the failed profile sync")
	}

	stored := models.Customer{}
	if err := database.First(&stored, customer.ID).Error; err != nil {
		t.Fatalf("reload customer: %v", err)
	}
	if stored.HeightCm == nil || *stored.HeightCm != 170 {
		t.Fatalf("expected the profile height to stay 170, got %v", stored.HeightCm)
	}
	if stored.WeightKg == nil || *stored.WeightKg != 80 {
		t.Fatalf("expected the profile weight to stay 80, got %v", stored.WeightKg)
	}
}
