package models

type MetricKey string

const (
	MetricFastingSugar      MetricKey = "fs"
	MetricPostprandialSugar MetricKey = "ppbs"
	MetricTotalCholesterol  MetricKey = "total_cholesterol"
	MetricTriglycerides     MetricKey = "triglycerides"
	MetricHDL               MetricKey = "hdl"
	MetricLDL               MetricKey = "ldl"
	MetricHbA1c             MetricKey = "hba1c"
	MetricPSA               MetricKey = "psa"
	MetricCreatinine        MetricKey = "creatinine"
	MetricMicroalbumin      MetricKey = "microalbumin"
	MetricBMI               MetricKey = "bmi"
)

// MetricKeys returns every tracked metric in display order. BMI comes last
// because it is derived from height and weight rather than entered directly.
func MetricKeys() []MetricKey {
	return []MetricKey{
		MetricFastingSugar,
		MetricPostprandialSugar,
		MetricTotalCholesterol,
		MetricTriglycerides,
		MetricHDL,
		MetricLDL,
		MetricHbA1c,
		MetricPSA,
		MetricCreatinine,
		MetricMicroalbumin,
		MetricBMI,
	}
}

type MetricStatus string

const (
	StatusNormal   MetricStatus = "normal"
	StatusModerate MetricStatus = "moderate"
	StatusHigh     MetricStatus = "high"
	StatusLow      MetricStatus = "low"
	StatusDefault  MetricStatus = "default"
)
