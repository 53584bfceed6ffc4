package domain

import (
	"time"

	"github.com/google/uuid"
)

// DietLogType discriminates diet log entries.
// @Description Entry kind: meal with macro breakdown, or water increment.
type DietLogType string

const (
	DietLogMeal  DietLogType = "meal"
	DietLogWater DietLogType = "water"
)

// DefaultWaterIncrement is one tap of the water button, in liters.
const DefaultWaterIncrement = 0.25

// DietLogEntry is one user-initiated diet record. Exactly one of the meal
// macro fields or the water Value field is meaningful, discriminated by
// Type. Entries are immutable; removed only by a full per-user reset.
type DietLogEntry struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index:idx_diet_logs_user_ts" json:"user_id"`
	Type      DietLogType `gorm:"type:varchar(10);not null" json:"type"`
	Name      string      `gorm:"type:varchar(128)" json:"name,omitempty"`
	Calories  float64     `json:"calories,omitempty"`
	Protein   float64     `json:"protein,omitempty"`
	Carbs     float64     `json:"carbs,omitempty"`
	Fats      float64     `json:"fats,omitempty"`
	Value     float64     `json:"value,omitempty"`
	Timestamp time.Time   `gorm:"not null;index:idx_diet_logs_user_ts,sort:desc" json:"timestamp"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DietLogEntry) TableName() string {
	return "diet_logs"
}

// CreateDietLogRequest is the request body for logging a meal or water.
// @Description Meal entries carry name and macros; water entries carry a
// @Description liter increment (defaults to 0.25 L when omitted).
type CreateDietLogRequest struct {
	// Entry kind: meal or water
	Type DietLogType `json:"type" validate:"required,oneof=meal water" example:"meal" enums:"meal,water"`
	// Meal name (meal entries only)
	Name string `json:"name,omitempty" validate:"omitempty,max=128" example:"Grilled chicken salad"`
	// Energy in kcal (meal entries only)
	Calories float64 `json:"calories,omitempty" validate:"omitempty,min=0" example:"420"`
	// Protein in grams (meal entries only)
	Protein float64 `json:"protein,omitempty" validate:"omitempty,min=0" example:"38"`
	// Carbohydrates in grams (meal entries only)
	Carbs float64 `json:"carbs,omitempty" validate:"omitempty,min=0" example:"22"`
	// Fats in grams (meal entries only)
	Fats float64 `json:"fats,omitempty" validate:"omitempty,min=0" example:"18"`
	// Water volume in liters (water entries only)
	Value float64 `json:"value,omitempty" validate:"omitempty,min=0" example:"0.25"`
}

// DietLogResponse is the response body for a diet log entry.
// @Description One diet log record.
type DietLogResponse struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Type      DietLogType `json:"type"`
	Name      string      `json:"name,omitempty"`
	Calories  float64     `json:"calories,omitempty"`
	Protein   float64     `json:"protein,omitempty"`
	Carbs     float64     `json:"carbs,omitempty"`
	Fats      float64     `json:"fats,omitempty"`
	Value     float64     `json:"value,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func (e *DietLogEntry) ToResponse() DietLogResponse {
	return DietLogResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Type:      e.Type,
		Name:      e.Name,
		Calories:  e.Calories,
		Protein:   e.Protein,
		Carbs:     e.Carbs,
		Fats:      e.Fats,
		Value:     e.Value,
		Timestamp: e.Timestamp,
	}
}

// DietLogListResponse is the response body for listing diet logs.
// @Description Paginated list of diet logs, newest first.
type DietLogListResponse struct {
	Data       []DietLogResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DietLogFilter contains filter parameters for listing diet logs.
type DietLogFilter struct {
	Limit  int
	Cursor string
}

// DailyTotals are the sums over today's diet log entries. Derived on read,
// never persisted.
// @Description Nutrition totals for the current local calendar day.
type DailyTotals struct {
	Calories float64 `json:"calories" example:"1850"`
	Protein  float64 `json:"protein" example:"96"`
	Carbs    float64 `json:"carbs" example:"180"`
	Fats     float64 `json:"fats" example:"64"`
	Water    float64 `json:"water" example:"1.75"`
}

// HistoryPoint is one weekday bucket of the trailing-week history.
type HistoryPoint struct {
	// Short weekday label
	Date string `json:"date" example:"Mon"`
	// Summed value for that day
	Value float64 `json:"value" example:"1850"`
}

// DietSummaryResponse is the response for the diet summary endpoint.
// @Description Today's totals plus 7-day histories per nutrition metric.
type DietSummaryResponse struct {
	Totals  DailyTotals               `json:"totals"`
	History map[string][]HistoryPoint `json:"history"`
}
