package api

import (
	"time"

	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
)

type customerView struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	HeightCm    *float64 `json:"height_cm,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
}

// recordView surfaces the record with its date key doubling as the id, the
// way the dashboard addresses records.
type recordView struct {
	ID           string             `json:"id"`
	Date         string             `json:"date"`
	Values       map[string]float64 `json:"values"`
	HeightCm     *float64           `json:"height_cm,omitempty"`
	WeightKg     *float64           `json:"weight_kg,omitempty"`
	CustomerName string             `json:"customer_name,omitempty"`
	LastUpdated  string             `json:"last_updated,omitempty"`
}

type reportCell struct {
	Key    models.MetricKey    `json:"key"`
	Label  string              `json:"label"`
	Unit   string              `json:"unit"`
	Value  *float64            `json:"value,omitempty"`
	Status models.MetricStatus `json:"status"`
}

type reportRow struct {
	Date  string       `json:"date"`
	Cells []reportCell `json:"cells"`
}

func buildCustomerView(customer models.Customer) customerView {
	view := customerView{
		ID:        customer.PublicID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Gender:    customer.Gender,
		HeightCm:  customer.HeightCm,
		WeightKg:  customer.WeightKg,
	}
	if customer.DateOfBirth != nil {
		view.DateOfBirth = customer.DateOfBirth.Format("2006-01-02")
	}
	return view
}

func buildRecordView(record models.HealthRecord) recordView {
	values := make(map[string]float64)
	for _, key := range models.MetricKeys() {
		if value := record.MetricValue(key); value != nil {
			values[string(key)] = *value
		}
	}

	view := recordView{
		ID:           record.DateKey,
		Date:         record.DateKey,
		Values:       values,
		HeightCm:     record.HeightCm,
		WeightKg:     record.WeightKg,
		CustomerName: record.CustomerName,
	}
	if !record.LastUpdated.IsZero() {
		view.LastUpdated = record.LastUpdated.Format(time.RFC3339)
	}
	return view
}

func buildReportRows(records []models.HealthRecord) []reportRow {
	rows := make([]reportRow, 0, len(records))
	for _, record := range records {
		cells := make([]reportCell, 0, len(models.MetricKeys()))
		for _, key := range models.MetricKeys() {
			value := record.MetricValue(key)
			cells = append(cells, reportCell{
				Key:    key,
				Label:  services.MetricLabel(key),
				Unit:   services.MetricUnit(key),
				Value:  value,
				Status: services.StatusFor(key, value),
			})
		}
		rows = append(rows, reportRow{Date: record.DateKey, Cells: cells})
	}
	return rows
}

func statusCSSClass(status models.MetricStatus) string {
	switch status {
	case models.StatusNormal:
		return "status-normal"
	case models.StatusModerate:
		return "status-moderate"
	case models.StatusHigh:
		return "status-high"
	case models.StatusLow:
		return "status-low"
	default:
		return "status-default"
	}
}

func statusDisplayLabel(status models.MetricStatus) string {
	switch status {
	case models.StatusNormal:
		return "Normal"
	case models.StatusModerate:
		return "Moderate"
	case models.StatusHigh:
		return "High"
	case models.StatusLow:
		return "Low"
	default:
		return "—"
	}
}
