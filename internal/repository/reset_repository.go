package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
	"gorm.io/gorm"
)

// ResetRepository performs the bulk per-user data reset. Both collections
// are cleared in a single transaction so a reset never leaves diet logs
// behind when the metric delete succeeds.
type ResetRepository interface {
	ResetUserData(ctx context.Context, userID uuid.UUID) error
}

type resetRepository struct {
	db *gorm.DB
}

func NewResetRepository(db *gorm.DB) ResetRepository {
	return &resetRepository{db: db}
}

func (r *resetRepository) ResetUserData(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.MetricSample{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&domain.DietLogEntry{}).Error
	})
}
