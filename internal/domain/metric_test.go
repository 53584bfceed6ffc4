package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMetricSample_ToResponse_Units(t *testing.T) {
	tests := []struct {
		name       string
		metricType MetricType
		wantUnit   string
	}{
		{"heart rate in bpm", MetricHeartRate, "bpm"},
		{"blood oxygen in percent", MetricSpO2, "%"},
		{"sleep in hours", MetricSleep, "hrs"},
		{"blood sugar in mg/dL", MetricSugar, "mg/dL"},
		{"steps", MetricSteps, "steps"},
		{"calorie burn in kcal", MetricCalories, "kcal"},
		{"stress score", MetricStress, "score"},
		{"blood pressure in mmHg", MetricBP, "mmHg"},
		{"unknown type has no unit", MetricType("vo2_max"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := MetricSample{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				Type:      tt.metricType,
				Value:     42,
				Timestamp: time.Date(2024, 3, 18, 9, 30, 0, 0, time.UTC),
			}

			resp := sample.ToResponse()

			if resp.Unit != tt.wantUnit {
				t.Errorf("Unit = %q, want %q", resp.Unit, tt.wantUnit)
			}
			if resp.Type != tt.metricType {
				t.Errorf("Type = %q, want %q", resp.Type, tt.metricType)
			}
			if resp.Value != 42 {
				t.Errorf("Value = %v, want 42", resp.Value)
			}
			if !resp.Timestamp.Equal(sample.Timestamp) {
				t.Errorf("Timestamp = %v, want %v", resp.Timestamp, sample.Timestamp)
			}
		})
	}
}

func TestDeviceMetricTypes_CoverAllUnits(t *testing.T) {
	if len(DeviceMetricTypes) != 8 {
		t.Fatalf("expected 8 device metric types, got %d", len(DeviceMetricTypes))
	}

	seen := map[MetricType]bool{}
	for _, mt := range DeviceMetricTypes {
		if seen[mt] {
			t.Errorf("duplicate device metric type %q", mt)
		}
		seen[mt] = true

		if _, ok := MetricUnits[mt]; !ok {
			t.Errorf("device metric type %q has no unit", mt)
		}
	}
}
