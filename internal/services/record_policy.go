package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/helenmarch/vita/internal/models"
)

var ErrMetricValueInvalid = errors.New("metric value out of bounds")

// RecordInput is one save submission for a record. Values carries only the
// metrics the client actually sent; a metric absent from the map is left
// untouched on the stored record. Clearing a stored value is therefore not
// possible through a save, only overwriting it. Absent fields are stripped
// before the write by design.
type RecordInput struct {
	Values   map[models.MetricKey]float64
	HeightCm *float64
	WeightKg *float64
}

// ValidateRecordInput rejects non-finite or out-of-bounds values before
// anything reaches the store. BMI is never accepted as input: it is derived.
func ValidateRecordInput(input RecordInput) error {
	for key, value := range input.Values {
		if key == models.MetricBMI {
			return fmt.Errorf("%w: bmi is derived, not entered", ErrMetricValueInvalid)
		}
		if err := validateMetricValue(key, value); err != nil {
			return err
		}
	}
	if input.HeightCm != nil && !withinBound(*input.HeightCm, 300) {
		return fmt.Errorf("%w: height", ErrMetricValueInvalid)
	}
	if input.WeightKg != nil && !withinBound(*input.WeightKg, 700) {
		return fmt.Errorf("%w: weight", ErrMetricValueInvalid)
	}
	return nil
}

func validateMetricValue(key models.MetricKey, value float64) error {
	if !withinBound(value, metricUpperBound(key)) {
		return fmt.Errorf("%w: %s", ErrMetricValueInvalid, key)
	}
	return nil
}

func withinBound(value float64, upper float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value > 0 && value <= upper
}

// metricUpperBound is a sanity cap on entered values, generous enough to
// admit any clinically plausible reading.
func metricUpperBound(key models.MetricKey) float64 {
	switch key {
	case models.MetricHbA1c:
		return 25
	case models.MetricCreatinine:
		return 50
	case models.MetricPSA:
		return 1000
	case models.MetricMicroalbumin:
		return 10000
	case models.MetricTriglycerides:
		return 5000
	default:
		return 2000
	}
}

// ApplyRecordInput merges a save submission into a record: present fields
// overwrite, absent fields stay, BMI is recomputed from the post-merge
// height and weight, and the customer-name snapshot and last-updated stamp
// are refreshed.
func ApplyRecordInput(record *models.HealthRecord, input RecordInput, customer models.Customer, now time.Time) {
	for _, key := range models.MetricKeys() {
		if key == models.MetricBMI {
			continue
		}
		if value, present := input.Values[key]; present {
			copied := value
			record.SetMetricValue(key, &copied)
		}
	}

	if input.HeightCm != nil {
		copied := *input.HeightCm
		record.HeightCm = &copied
	}
	if input.WeightKg != nil {
		copied := *input.WeightKg
		record.WeightKg = &copied
	}

	record.BMI = ComputeBMI(record.HeightCm, record.WeightKg)
	record.CustomerName = CustomerDisplayName(customer)
	record.LastUpdated = now
}

// ShouldSyncCustomerProfile reports whether saving this record must also
// update the customer's stored height/weight. Only a record for the current
// date mirrors into the profile; past or future dates never do.
func ShouldSyncCustomerProfile(record models.HealthRecord, customer models.Customer, dateKey string, todayKey string) bool {
	if dateKey != todayKey {
		return false
	}
	return measureDiffers(record.HeightCm, customer.HeightCm) || measureDiffers(record.WeightKg, customer.WeightKg)
}

// measureDiffers treats an absent record value as "nothing to mirror": a
// record that never captured a height cannot clear the profile's height.
func measureDiffers(recorded *float64, stored *float64) bool {
	if recorded == nil {
		return false
	}
	if stored == nil {
		return true
	}
	return *recorded != *stored
}

// SyncCustomerProfile copies the record's present height/weight onto the
// customer. Callers run it inside the same transaction as the record write.
func SyncCustomerProfile(customer *models.Customer, record models.HealthRecord) {
	if record.HeightCm != nil {
		copied := *record.HeightCm
		customer.HeightCm = &copied
	}
	if record.WeightKg != nil {
		copied := *record.WeightKg
		customer.WeightKg = &copied
	}
}
