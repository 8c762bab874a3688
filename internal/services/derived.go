package services

import (
	"math"

	"github.com/helenmarch/vita/internal/models"
)

// ComputeBMI derives body mass index from height and weight. Returns nil
// unless both inputs are present and height is positive. The result is
// rounded half-up to one decimal place.
func ComputeBMI(heightCm *float64, weightKg *float64) *float64 {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 {
		return nil
	}

	heightMeters := *heightCm / 100
	bmi := roundToTenth(*weightKg / (heightMeters * heightMeters))
	return &bmi
}

// StatusFor resolves the status of a possibly-absent metric value. Absent
// values classify as Default, never as an out-of-range bucket.
func StatusFor(key models.MetricKey, value *float64) models.MetricStatus {
	if value == nil {
		return models.StatusDefault
	}
	return Classify(key, *value)
}

func roundToTenth(value float64) float64 {
	return math.Floor(value*10+0.5) / 10
}
