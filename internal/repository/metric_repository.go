package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
	"gorm.io/gorm"
)

type MetricRepository interface {
	Create(ctx context.Context, sample *domain.MetricSample) error
	// ListRecent returns up to limit samples for the user/type, newest
	// first (storage order; callers reverse for charting).
	ListRecent(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, limit int) ([]domain.MetricSample, error)
	// Latest returns the timestamp-maximal sample, or domain.ErrNotFound
	// when none exists.
	Latest(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*domain.MetricSample, error)
}

type metricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{db: db}
}

func (r *metricRepository) Create(ctx context.Context, sample *domain.MetricSample) error {
	return r.db.WithContext(ctx).Create(sample).Error
}

func (r *metricRepository) ListRecent(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, limit int) ([]domain.MetricSample, error) {
	var samples []domain.MetricSample
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, metricType).
		Order("timestamp DESC").
		Limit(limit).
		Find(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func (r *metricRepository) Latest(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*domain.MetricSample, error) {
	var sample domain.MetricSample
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, metricType).
		Order("timestamp DESC").
		First(&sample).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sample, nil
}
