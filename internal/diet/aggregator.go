// Package diet derives daily totals and trailing-week histories from raw
// diet log entries. Every function here is pure: no I/O, no clock reads,
// the reference time is an explicit argument. Day boundaries follow the
// reference time's location (local wall-clock days, not UTC days).
package diet

import (
	"time"

	"github.com/vitapulse/health-tracker/internal/domain"
)

// MetricKey selects which nutrition series to aggregate.
type MetricKey string

const (
	KeyCalories MetricKey = "calories"
	KeyProtein  MetricKey = "protein"
	KeyCarbs    MetricKey = "carbs"
	KeyFats     MetricKey = "fats"
	KeyWater    MetricKey = "water"
)

// AllMetricKeys lists every aggregatable series.
var AllMetricKeys = []MetricKey{KeyCalories, KeyProtein, KeyCarbs, KeyFats, KeyWater}

// DailyTotals sums the entries that fall on ref's calendar day in ref's
// location. Meal entries contribute their macros, water entries their
// liter value. Order of entries is irrelevant; an empty slice yields zeros.
func DailyTotals(entries []domain.DietLogEntry, ref time.Time) domain.DailyTotals {
	loc := ref.Location()
	refY, refM, refD := ref.In(loc).Date()

	var totals domain.DailyTotals
	for _, e := range entries {
		y, m, d := e.Timestamp.In(loc).Date()
		if y != refY || m != refM || d != refD {
			continue
		}
		if e.Type == domain.DietLogWater {
			totals.Water += e.Value
		} else {
			totals.Calories += e.Calories
			totals.Protein += e.Protein
			totals.Carbs += e.Carbs
			totals.Fats += e.Fats
		}
	}
	return totals
}

// WeeklyHistory buckets entries into 7 weekday-labelled points covering
// ref's day and the 6 preceding days, oldest first. Entries outside those
// 7 calendar days contribute nothing, even when their weekday label
// collides with a bucket. An entry of the wrong type for the requested
// key contributes zero.
func WeeklyHistory(entries []domain.DietLogEntry, key MetricKey, ref time.Time) []domain.HistoryPoint {
	loc := ref.Location()
	refDay := ref.In(loc)

	points := make([]domain.HistoryPoint, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := refDay.AddDate(0, 0, i-6)
		dayKey := day.Format("2006-01-02")
		points[i] = domain.HistoryPoint{Date: day.Format("Mon")}
		index[dayKey] = i
	}

	for _, e := range entries {
		dayKey := e.Timestamp.In(loc).Format("2006-01-02")
		i, ok := index[dayKey]
		if !ok {
			continue
		}
		points[i].Value += entryValue(e, key)
	}

	return points
}

func entryValue(e domain.DietLogEntry, key MetricKey) float64 {
	if key == KeyWater {
		if e.Type == domain.DietLogWater {
			return e.Value
		}
		return 0
	}
	if e.Type == domain.DietLogWater {
		return 0
	}
	switch key {
	case KeyCalories:
		return e.Calories
	case KeyProtein:
		return e.Protein
	case KeyCarbs:
		return e.Carbs
	case KeyFats:
		return e.Fats
	}
	return 0
}
