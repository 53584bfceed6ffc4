package repository

import (
	"context"

	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/pkg/pagination"
	"gorm.io/gorm"
)

type CommunityRepository interface {
	Create(ctx context.Context, msg *domain.CommunityMessage) error
	// List returns messages oldest first with cursor pagination, so
	// polling clients can append from where they left off.
	List(ctx context.Context, limit int, cursor string) ([]domain.CommunityMessage, error)
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, msg *domain.CommunityMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *communityRepository) List(ctx context.Context, limit int, cursor string) ([]domain.CommunityMessage, error) {
	query := r.db.WithContext(ctx).Order("timestamp ASC")

	if cursor != "" {
		c, err := pagination.DecodeCursor(cursor)
		if err == nil && c != nil {
			// ASC order: continue past the cursor position.
			query = query.Where(
				"(timestamp > ?) OR (timestamp = ? AND id > ?)",
				c.Timestamp, c.Timestamp, c.ID,
			)
		}
	}

	limit = pagination.NormalizeLimit(limit)
	query = query.Limit(limit + 1)

	var messages []domain.CommunityMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
