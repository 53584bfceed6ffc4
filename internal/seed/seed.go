package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/pkg/logger"
)

const seededDays = 14

// metricRange bounds the randomized daily value for one metric type.
type metricRange struct {
	min, max float64
}

var seedRanges = map[domain.MetricType]metricRange{
	domain.MetricSteps:     {5000, 10000},
	domain.MetricCalories:  {1500, 2000},
	domain.MetricSpO2:      {96, 99},
	domain.MetricSleep:     {6, 9},
	domain.MetricStress:    {20, 60},
	domain.MetricSugar:     {80, 100},
	domain.MetricHeartRate: {60, 80},
	domain.MetricBP:        {110, 130},
}

// Run seeds the database with demo users, a two-week metric history, and a
// handful of diet logs. Safe to call multiple times.
func Run(db *gorm.DB, log *logger.Logger) error {
	if err := db.AutoMigrate(
		&domain.User{}, &domain.MetricSample{}, &domain.DietLogEntry{},
		&domain.CommunityMessage{}, &domain.College{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	colleges := []domain.College{
		{ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001"), Name: "Northfield College"},
		{ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002"), Name: "Lakeside Institute"},
	}
	for _, college := range colleges {
		if err := db.Where("id = ?", college.ID).FirstOrCreate(&college).Error; err != nil {
			return fmt.Errorf("failed to create college %s: %w", college.Name, err)
		}
	}

	users := []domain.User{
		{
			ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:     "Asha Demo",
			Email:    "asha@example.com",
			College:  "Northfield College",
			Timezone: "Asia/Kolkata",
		},
		{
			ID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:     "Ben Demo",
			Email:    "ben@example.com",
			College:  "Northfield College",
			Timezone: "America/New_York",
		},
		{
			ID:       uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Name:     "Chi Demo",
			Email:    "chi@example.com",
			College:  "Lakeside Institute",
			Timezone: "Asia/Tokyo",
		},
	}
	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedMetricsForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedDietLogsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Info("seed completed")
	return nil
}

func seedMetricsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	// Skip users that already have samples so restarts don't pile up data.
	var count int64
	if err := db.Model(&domain.MetricSample{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count samples for %s: %w", user.ID, err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		timestamp := time.Date(day.Year(), day.Month(), day.Day(), 8+rng.Intn(12), rng.Intn(60), 0, 0, time.UTC)

		for _, metricType := range domain.DeviceMetricTypes {
			bounds := seedRanges[metricType]
			sample := domain.MetricSample{
				UserID:    user.ID,
				Type:      metricType,
				Value:     roundTo(bounds.min+rng.Float64()*(bounds.max-bounds.min), metricType),
				Timestamp: timestamp,
			}
			if err := db.Create(&sample).Error; err != nil {
				return fmt.Errorf("failed to create %s sample: %w", metricType, err)
			}
		}
	}
	return nil
}

func seedDietLogsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	var count int64
	if err := db.Model(&domain.DietLogEntry{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count diet logs for %s: %w", user.ID, err)
	}
	if count > 0 {
		return nil
	}

	meals := []struct {
		name     string
		calories float64
		protein  float64
		carbs    float64
		fats     float64
		hour     int
	}{
		{"Oatmeal with banana", 320, 11, 58, 6, 8},
		{"Grilled chicken bowl", 540, 42, 45, 18, 13},
		{"Vegetable curry with rice", 610, 16, 88, 21, 19},
	}

	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		day := now.AddDate(0, 0, -i)

		for _, meal := range meals {
			entry := domain.DietLogEntry{
				UserID:    user.ID,
				Type:      domain.DietLogMeal,
				Name:      meal.name,
				Calories:  meal.calories + float64(rng.Intn(80)),
				Protein:   meal.protein,
				Carbs:     meal.carbs,
				Fats:      meal.fats,
				Timestamp: time.Date(day.Year(), day.Month(), day.Day(), meal.hour, rng.Intn(60), 0, 0, time.UTC),
			}
			if err := db.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create meal log: %w", err)
			}
		}

		for g := 0; g < 4+rng.Intn(4); g++ {
			water := domain.DietLogEntry{
				UserID:    user.ID,
				Type:      domain.DietLogWater,
				Name:      "Water",
				Value:     domain.DefaultWaterIncrement,
				Timestamp: time.Date(day.Year(), day.Month(), day.Day(), 7+2*g, rng.Intn(60), 0, 0, time.UTC),
			}
			if err := db.Create(&water).Error; err != nil {
				return fmt.Errorf("failed to create water log: %w", err)
			}
		}
	}
	return nil
}

// roundTo keeps count-like metrics whole while the rest get one decimal.
func roundTo(value float64, metricType domain.MetricType) float64 {
	switch metricType {
	case domain.MetricSteps, domain.MetricCalories, domain.MetricHeartRate, domain.MetricBP, domain.MetricSugar, domain.MetricStress:
		return float64(int(value))
	default:
		return float64(int(value*10)) / 10
	}
}
