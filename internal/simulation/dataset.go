package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/vitapulse/health-tracker/internal/domain"
)

//go:embed simulation_data.json
var datasetJSON []byte

// DataPoint is one row of the wearable dataset: a simultaneous reading of
// every device metric. Field tags match the dataset export's column names.
type DataPoint struct {
	HeartRate float64 `json:"HeartRate_bpm"`
	SpO2      float64 `json:"SpO2_percent"`
	Sleep     float64 `json:"Sleep_hrs"`
	Glucose   float64 `json:"Glucose_mg/dL"`
	Steps     float64 `json:"Steps_steps"`
	Burn      float64 `json:"Burn_kcal"`
	Stress    float64 `json:"Stress_score"`
	BPSys     float64 `json:"BP_sys"`
}

// Metrics returns the row's readings keyed by metric type, in the same
// order as domain.DeviceMetricTypes.
func (p DataPoint) Metrics() map[domain.MetricType]float64 {
	return map[domain.MetricType]float64{
		domain.MetricHeartRate: p.HeartRate,
		domain.MetricSpO2:      p.SpO2,
		domain.MetricSleep:     p.Sleep,
		domain.MetricSugar:     p.Glucose,
		domain.MetricSteps:     p.Steps,
		domain.MetricCalories:  p.Burn,
		domain.MetricStress:    p.Stress,
		domain.MetricBP:        p.BPSys,
	}
}

// LoadDataset parses the embedded wearable dataset.
func LoadDataset() ([]DataPoint, error) {
	var points []DataPoint
	if err := json.Unmarshal(datasetJSON, &points); err != nil {
		return nil, fmt.Errorf("parsing simulation dataset: %w", err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("simulation dataset is empty")
	}
	return points, nil
}
