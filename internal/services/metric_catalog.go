package services

import "github.com/helenmarch/vita/internal/models"

// MetricLabel returns the display name for a metric.
func MetricLabel(key models.MetricKey) string {
	switch key {
	case models.MetricFastingSugar:
		return "Fasting Sugar"
	case models.MetricPostprandialSugar:
		return "Postprandial Sugar"
	case models.MetricTotalCholesterol:
		return "Total Cholesterol"
	case models.MetricTriglycerides:
		return "Triglycerides"
	case models.MetricHDL:
		return "HDL Cholesterol"
	case models.MetricLDL:
		return "LDL Cholesterol"
	case models.MetricHbA1c:
		return "HbA1c"
	case models.MetricPSA:
		return "PSA"
	case models.MetricCreatinine:
		return "Creatinine"
	case models.MetricMicroalbumin:
		return "Microalbumin"
	case models.MetricBMI:
		return "BMI"
	default:
		return string(key)
	}
}

// MetricUnit returns the unit a metric is recorded in.
func MetricUnit(key models.MetricKey) string {
	switch key {
	case models.MetricFastingSugar,
		models.MetricPostprandialSugar,
		models.MetricTotalCholesterol,
		models.MetricTriglycerides,
		models.MetricHDL,
		models.MetricLDL,
		models.MetricCreatinine:
		return "mg/dL"
	case models.MetricHbA1c:
		return "%"
	case models.MetricPSA:
		return "ng/mL"
	case models.MetricMicroalbumin:
		return "mg/L"
	case models.MetricBMI:
		return "kg/m²"
	default:
		return ""
	}
}

// Classify buckets a metric value into a status. Total over all finite
// inputs: every value maps to exactly one status. Note the HDL direction is
// inverted on purpose: low HDL is the adverse state.
func Classify(key models.MetricKey, value float64) models.MetricStatus {
	switch key {
	case models.MetricFastingSugar:
		switch {
		case value < 70:
			return models.StatusLow
		case value <= 99:
			return models.StatusNormal
		case value <= 125:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	case models.MetricPostprandialSugar:
		switch {
		case value <= 140:
			return models.StatusNormal
		case value <= 199:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	case models.MetricTotalCholesterol:
		switch {
		case value < 200:
			return models.StatusNormal
		case value < 240:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	case models.MetricTriglycerides:
		switch {
		case value < 150:
			return models.StatusNormal
		case value < 200:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	case models.MetricHDL:
		switch {
		case value >= 60:
			return models.StatusNormal
		case value >= 40:
			return models.StatusModerate
		default:
			return models.StatusLow
		}
	case models.MetricLDL:
		switch {
		case value < 100:
			return models.StatusNormal
		case value < 130:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	case models.MetricHbA1c:
		switch {
		case value < 5.7:
			return models.StatusNormal
		case value < 6.5:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	case models.MetricPSA:
		switch {
		case value < 4.0:
			return models.StatusNormal
		case value <= 10.0:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	case models.MetricCreatinine:
		switch {
		case value < 0.74:
			return models.StatusLow
		case value <= 1.35:
			return models.StatusNormal
		default:
			return models.StatusHigh
		}
	case models.MetricMicroalbumin:
		switch {
		case value < 30:
			return models.StatusNormal
		case value <= 300:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	case models.MetricBMI:
		switch {
		case value < 18.5:
			return models.StatusLow
		case value < 25:
			return models.StatusNormal
		case value < 30:
			return models.StatusModerate
		default:
			return models.StatusHigh
		}
	default:
		return models.StatusDefault
	}
}
