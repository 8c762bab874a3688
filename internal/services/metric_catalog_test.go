package services

import (
	"math"
	"testing"

	"github.com/helenmarch/vita/internal/models"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		key   models.MetricKey
		value float64
		want  models.MetricStatus
	}{
		{name: "fasting sugar below low bound", key: models.MetricFastingSugar, value: 69, want: models.StatusLow},
		{name: "fasting sugar normal lower edge", key: models.MetricFastingSugar, value: 70, want: models.StatusNormal},
		{name: "fasting sugar normal upper edge", key: models.MetricFastingSugar, value: 99, want: models.StatusNormal},
		{name: "fasting sugar moderate lower edge", key: models.MetricFastingSugar, value: 100, want: models.StatusModerate},
		{name: "fasting sugar moderate upper edge", key: models.MetricFastingSugar, value: 125, want: models.StatusModerate},
		{name: "fasting sugar high", key: models.MetricFastingSugar, value: 126, want: models.StatusHigh},

		{name: "postprandial normal edge", key: models.MetricPostprandialSugar, value: 140, want: models.StatusNormal},
		{name: "postprandial moderate lower edge", key: models.MetricPostprandialSugar, value: 141, want: models.StatusModerate},
		{name: "postprandial moderate upper edge", key: models.MetricPostprandialSugar, value: 199, want: models.StatusModerate},
		{name: "postprandial high edge", key: models.MetricPostprandialSugar, value: 200, want: models.StatusHigh},

		{name: "total cholesterol normal", key: models.MetricTotalCholesterol, value: 199, want: models.StatusNormal},
		{name: "total cholesterol moderate lower edge", key: models.MetricTotalCholesterol, value: 200, want: models.StatusModerate},
		{name: "total cholesterol moderate upper edge", key: models.MetricTotalCholesterol, value: 239, want: models.StatusModerate},
		{name: "total cholesterol high edge", key: models.MetricTotalCholesterol, value: 240, want: models.StatusHigh},

		{name: "triglycerides normal", key: models.MetricTriglycerides, value: 149, want: models.StatusNormal},
		{name: "triglycerides moderate", key: models.MetricTriglycerides, value: 150, want: models.StatusModerate},
		{name: "triglycerides high edge", key: models.MetricTriglycerides, value: 200, want: models.StatusHigh},

		{name: "hdl low is adverse", key: models.MetricHDL, value: 35, want: models.StatusLow},
		{name: "hdl moderate band", key: models.MetricHDL, value: 45, want: models.StatusModerate},
		{name: "hdl moderate upper edge", key: models.MetricHDL, value: 59, want: models.StatusModerate},
		{name: "hdl normal edge", key: models.MetricHDL, value: 60, want: models.StatusNormal},
		{name: "hdl normal", key: models.MetricHDL, value: 65, want: models.StatusNormal},

		{name: "ldl normal", key: models.MetricLDL, value: 99, want: models.StatusNormal},
		{name: "ldl moderate", key: models.MetricLDL, value: 100, want: models.StatusModerate},
		{name: "ldl high edge", key: models.MetricLDL, value: 130, want: models.StatusHigh},

		{name: "hba1c normal", key: models.MetricHbA1c, value: 5.6, want: models.StatusNormal},
		{name: "hba1c moderate lower edge", key: models.MetricHbA1c, value: 5.7, want: models.StatusModerate},
		{name: "hba1c moderate upper edge", key: models.MetricHbA1c, value: 6.4, want: models.StatusModerate},
		{name: "hba1c high edge", key: models.MetricHbA1c, value: 6.5, want: models.StatusHigh},

		{name: "psa normal", key: models.MetricPSA, value: 3.9, want: models.StatusNormal},
		{name: "psa moderate lower edge", key: models.MetricPSA, value: 4.0, want: models.StatusModerate},
		{name: "psa moderate upper edge closed", key: models.MetricPSA, value: 10.0, want: models.StatusModerate},
		{name: "psa high", key: models.MetricPSA, value: 10.1, want: models.StatusHigh},

		{name: "creatinine low", key: models.MetricCreatinine, value: 0.73, want: models.StatusLow},
		{name: "creatinine normal lower edge", key: models.MetricCreatinine, value: 0.74, want: models.StatusNormal},
		{name: "creatinine normal upper edge", key: models.MetricCreatinine, value: 1.35, want: models.StatusNormal},
		{name: "creatinine high", key: models.MetricCreatinine, value: 1.36, want: models.StatusHigh},

		{name: "microalbumin normal", key: models.MetricMicroalbumin, value: 29.9, want: models.StatusNormal},
		{name: "microalbumin moderate lower edge", key: models.MetricMicroalbumin, value: 30, want: models.StatusModerate},
		{name: "microalbumin moderate upper edge closed", key: models.MetricMicroalbumin, value: 300, want: models.StatusModerate},
		{name: "microalbumin high", key: models.MetricMicroalbumin, value: 301, want: models.StatusHigh},

		{name: "bmi underweight", key: models.MetricBMI, value: 18.4, want: models.StatusLow},
		{name: "bmi normal lower edge", key: models.MetricBMI, value: 18.5, want: models.StatusNormal},
		{name: "bmi normal upper edge", key: models.MetricBMI, value: 24.99, want: models.StatusNormal},
		{name: "bmi overweight lower edge", key: models.MetricBMI, value: 25, want: models.StatusModerate},
		{name: "bmi overweight upper edge", key: models.MetricBMI, value: 29.99, want: models.StatusModerate},
		{name: "bmi obese edge", key: models.MetricBMI, value: 30, want: models.StatusHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.key, tt.value); got != tt.want {
				t.Fatalf("Classify(%s, %v) = %s, want %s", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestClassifyIsTotalForEveryMetric(t *testing.T) {
	probes := []float64{
		-1e9, -1, 0, 0.0001, 0.74, 1.35, 4, 5.7, 10, 18.5, 25, 30, 40, 60,
		70, 100, 125, 140, 150, 200, 240, 300, 1e9, math.MaxFloat64, -math.MaxFloat64,
	}

	for _, key := range models.MetricKeys() {
		for _, value := range probes {
			status := Classify(key, value)
			switch status {
			case models.StatusNormal, models.StatusModerate, models.StatusHigh, models.StatusLow:
			default:
				t.Fatalf("Classify(%s, %v) = %q, want a concrete bucket", key, value, status)
			}
		}
	}
}

func TestClassifyUnknownMetricFallsBackToDefault(t *testing.T) {
	if got := Classify(models.MetricKey("unknown"), 10); got != models.StatusDefault {
		t.Fatalf("Classify(unknown, 10) = %s, want %s", got, models.StatusDefault)
	}
}

func TestMetricCatalogCoversEveryKey(t *testing.T) {
	for _, key := range models.MetricKeys() {
		if MetricLabel(key) == string(key) {
			t.Fatalf("metric %s has no display label", key)
		}
		if MetricUnit(key) == "" {
			t.Fatalf("metric %s has no unit", key)
		}
	}
}
