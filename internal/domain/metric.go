package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricType identifies a category of health measurement. It is an open
// string key: new device metrics must not require a schema migration, so
// the well-known types below are constants, not a closed enum.
type MetricType string

const (
	MetricHeartRate MetricType = "heart_rate"
	MetricSpO2      MetricType = "spo2"
	MetricSleep     MetricType = "sleep"
	MetricSugar     MetricType = "sugar"
	MetricSteps     MetricType = "steps"
	MetricCalories  MetricType = "calories"
	MetricStress    MetricType = "stress"
	MetricBP        MetricType = "bp"
)

// MetricUnits maps the well-known metric types to their display units.
// Unknown types simply have no unit.
var MetricUnits = map[MetricType]string{
	MetricHeartRate: "bpm",
	MetricSpO2:      "%",
	MetricSleep:     "hrs",
	MetricSugar:     "mg/dL",
	MetricSteps:     "steps",
	MetricCalories:  "kcal",
	MetricStress:    "score",
	MetricBP:        "mmHg",
}

// DeviceMetricTypes lists the types written by the wearable-feed replayer,
// in dataset column order.
var DeviceMetricTypes = []MetricType{
	MetricHeartRate, MetricSpO2, MetricSleep, MetricSugar,
	MetricSteps, MetricCalories, MetricStress, MetricBP,
}

// MetricSample is one timestamped scalar observation of a metric type for
// a user. Samples are immutable once created; they are removed only by a
// full per-user reset.
type MetricSample struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_metric_samples_user_type_ts" json:"user_id"`
	Type      MetricType `gorm:"type:varchar(64);not null;index:idx_metric_samples_user_type_ts" json:"type"`
	Value     float64    `gorm:"not null" json:"value"`
	Timestamp time.Time  `gorm:"not null;index:idx_metric_samples_user_type_ts,sort:desc" json:"timestamp"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MetricSample) TableName() string {
	return "metric_samples"
}

// RecordMetricRequest is the request body for recording a metric sample.
// @Description Request payload for recording one health metric observation.
type RecordMetricRequest struct {
	// Metric type key, e.g. heart_rate or steps
	Type MetricType `json:"type" validate:"required,max=64" example:"steps"`
	// Observed numeric value; must be finite
	Value float64 `json:"value" example:"8432"`
	// Observation time in RFC3339 format; defaults to now when omitted
	Timestamp *time.Time `json:"timestamp,omitempty" example:"2024-01-15T09:30:00Z"`
}

// MetricSampleResponse is the response body for a recorded sample.
// @Description One recorded metric sample.
type MetricSampleResponse struct {
	ID        uuid.UUID  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    uuid.UUID  `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Type      MetricType `json:"type" example:"steps"`
	Value     float64    `json:"value" example:"8432"`
	Unit      string     `json:"unit,omitempty" example:"steps"`
	Timestamp time.Time  `json:"timestamp" example:"2024-01-15T09:30:00Z"`
}

func (m *MetricSample) ToResponse() MetricSampleResponse {
	return MetricSampleResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      m.Type,
		Value:     m.Value,
		Unit:      MetricUnits[m.Type],
		Timestamp: m.Timestamp,
	}
}

// MetricPoint is one chart-ready history entry: the sample value with a
// short human-readable date label ("Mon 15").
type MetricPoint struct {
	// Short weekday + day-of-month label for chart axes
	Date string `json:"date" example:"Mon 15"`
	// Recorded value
	Value float64 `json:"value" example:"8432"`
	// Full observation timestamp
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T09:30:00Z"`
}

// MetricHistoryResponse is the response for the history endpoint, ordered
// oldest to newest.
// @Description Metric history ordered oldest to newest for charting.
type MetricHistoryResponse struct {
	Type MetricType    `json:"type" example:"steps"`
	Unit string        `json:"unit,omitempty" example:"steps"`
	Data []MetricPoint `json:"data"`
}

// LatestMetricResponse is the response for the latest-value endpoint.
// When no sample exists the value is the zero sentinel and HasData is false.
// @Description Most recent value for a metric type, zero when absent.
type LatestMetricResponse struct {
	Type    MetricType `json:"type" example:"steps"`
	Value   float64    `json:"value" example:"9000"`
	Unit    string     `json:"unit,omitempty" example:"steps"`
	HasData bool       `json:"has_data" example:"true"`
}
