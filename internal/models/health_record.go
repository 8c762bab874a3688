package models

import "time"

// HealthRecord holds one customer's measurements for one calendar date.
// DateKey is a zero-padded YYYY-MM-DD string and, together with CustomerID,
// forms the record's identity. Metric columns are nullable: a NULL means the
// value was never recorded for that date.
type HealthRecord struct {
	ID                uint     `gorm:"primaryKey"`
	UserID            uint     `gorm:"not null;index"`
	CustomerID        uint     `gorm:"not null;uniqueIndex:uidx_customer_date"`
	DateKey           string   `gorm:"size:10;not null;uniqueIndex:uidx_customer_date"`
	FastingSugar      *float64 `gorm:"column:fasting_sugar"`
	PostprandialSugar *float64 `gorm:"column:postprandial_sugar"`
	TotalCholesterol  *float64 `gorm:"column:total_cholesterol"`
	Triglycerides     *float64 `gorm:"column:triglycerides"`
	HDL               *float64 `gorm:"column:hdl"`
	LDL               *float64 `gorm:"column:ldl"`
	HbA1c             *float64 `gorm:"column:hba1c"`
	PSA               *float64 `gorm:"column:psa"`
	Creatinine        *float64 `gorm:"column:creatinine"`
	Microalbumin      *float64 `gorm:"column:microalbumin"`
	BMI               *float64 `gorm:"column:bmi"`
	HeightCm          *float64 `gorm:"column:height_cm"`
	WeightKg          *float64 `gorm:"column:weight_kg"`
	CustomerName      string   `gorm:"not null;default:''"`
	LastUpdated       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MetricValue resolves a metric key to the stored column value.
func (record *HealthRecord) MetricValue(key MetricKey) *float64 {
	switch key {
	case MetricFastingSugar:
		return record.FastingSugar
	case MetricPostprandialSugar:
		return record.PostprandialSugar
	case MetricTotalCholesterol:
		return record.TotalCholesterol
	case MetricTriglycerides:
		return record.Triglycerides
	case MetricHDL:
		return record.HDL
	case MetricLDL:
		return record.LDL
	case MetricHbA1c:
		return record.HbA1c
	case MetricPSA:
		return record.PSA
	case MetricCreatinine:
		return record.Creatinine
	case MetricMicroalbumin:
		return record.Microalbumin
	case MetricBMI:
		return record.BMI
	default:
		return nil
	}
}

// SetMetricValue writes a metric value into its column. Unknown keys are
// ignored so callers can feed user input through MetricKeys() safely.
func (record *HealthRecord) SetMetricValue(key MetricKey, value *float64) {
	switch key {
	case MetricFastingSugar:
		record.FastingSugar = value
	case MetricPostprandialSugar:
		record.PostprandialSugar = value
	case MetricTotalCholesterol:
		record.TotalCholesterol = value
	case MetricTriglycerides:
		record.Triglycerides = value
	case MetricHDL:
		record.HDL = value
	case MetricLDL:
		record.LDL = value
	case MetricHbA1c:
		record.HbA1c = value
	case MetricPSA:
		record.PSA = value
	case MetricCreatinine:
		record.Creatinine = value
	case MetricMicroalbumin:
		record.Microalbumin = value
	case MetricBMI:
		record.BMI = value
	}
}
