package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/pkg/pagination"
	"gorm.io/gorm"
)

type DietLogRepository interface {
	Create(ctx context.Context, entry *domain.DietLogEntry) error
	// List returns entries newest first with cursor pagination; one extra
	// row past the limit signals more pages.
	List(ctx context.Context, userID uuid.UUID, filter domain.DietLogFilter) ([]domain.DietLogEntry, error)
	// ListSince returns every entry at or after the cutoff, used by the
	// summary aggregation.
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DietLogEntry, error)
}

type dietLogRepository struct {
	db *gorm.DB
}

func NewDietLogRepository(db *gorm.DB) DietLogRepository {
	return &dietLogRepository{db: db}
}

func (r *dietLogRepository) Create(ctx context.Context, entry *domain.DietLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *dietLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DietLogFilter) ([]domain.DietLogEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: continue below the cursor position.
			query = query.Where(
				"(timestamp < ?) OR (timestamp = ? AND id < ?)",
				cursor.Timestamp, cursor.Timestamp, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.DietLogEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *dietLogRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DietLogEntry, error) {
	var entries []domain.DietLogEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("timestamp ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
