package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
	"gorm.io/gorm"
)

type CollegeRepository interface {
	Create(ctx context.Context, college *domain.College) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.College, error)
	List(ctx context.Context) ([]domain.College, error)
}

type collegeRepository struct {
	db *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) CollegeRepository {
	return &collegeRepository{db: db}
}

func (r *collegeRepository) Create(ctx context.Context, college *domain.College) error {
	return r.db.WithContext(ctx).Create(college).Error
}

func (r *collegeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.College, error) {
	var college domain.College
	err := r.db.WithContext(ctx).First(&college, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &college, nil
}

func (r *collegeRepository) List(ctx context.Context) ([]domain.College, error) {
	var colleges []domain.College
	err := r.db.WithContext(ctx).Order("name ASC").Find(&colleges).Error
	if err != nil {
		return nil, err
	}
	return colleges, nil
}
