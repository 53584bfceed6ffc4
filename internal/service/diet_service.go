package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/diet"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/repository"
	"github.com/vitapulse/health-tracker/pkg/pagination"
)

// summaryWindowDays covers today plus the six preceding days.
const summaryWindowDays = 7

// DietService records diet log entries and derives the nutrition summary.
type DietService interface {
	// Log appends one immutable meal or water entry, timestamped now.
	Log(ctx context.Context, userID uuid.UUID, req *domain.CreateDietLogRequest) (*domain.DietLogEntry, error)
	// List returns diet logs newest first with cursor pagination.
	List(ctx context.Context, userID uuid.UUID, filter domain.DietLogFilter) (*domain.DietLogListResponse, error)
	// Summary computes today's totals and the trailing-week histories in
	// the user's local timezone.
	Summary(ctx context.Context, userID uuid.UUID) (*domain.DietSummaryResponse, error)
}

type dietService struct {
	repo     repository.DietLogRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewDietService(repo repository.DietLogRepository, userRepo repository.UserRepository) DietService {
	return &dietService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *dietService) Log(ctx context.Context, userID uuid.UUID, req *domain.CreateDietLogRequest) (*domain.DietLogEntry, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entry := &domain.DietLogEntry{
		UserID:    userID,
		Type:      req.Type,
		Timestamp: s.now().UTC(),
	}

	switch req.Type {
	case domain.DietLogMeal:
		if strings.TrimSpace(req.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		entry.Name = req.Name
		entry.Calories = req.Calories
		entry.Protein = req.Protein
		entry.Carbs = req.Carbs
		entry.Fats = req.Fats
	case domain.DietLogWater:
		entry.Name = "Water"
		entry.Value = req.Value
		if entry.Value <= 0 {
			entry.Value = domain.DefaultWaterIncrement
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *dietService) List(ctx context.Context, userID uuid.UUID, filter domain.DietLogFilter) (*domain.DietLogListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.DietLogListResponse{
		Data: make([]domain.DietLogResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, entry := range entries {
		response.Data[i] = entry.ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{ID: last.ID, Timestamp: last.Timestamp}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *dietService) Summary(ctx context.Context, userID uuid.UUID) (*domain.DietSummaryResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(user.Location())

	// Cover the oldest bucket from its local midnight.
	y, m, d := now.AddDate(0, 0, -(summaryWindowDays - 1)).Date()
	since := time.Date(y, m, d, 0, 0, 0, 0, user.Location())

	entries, err := s.repo.ListSince(ctx, userID, since.UTC())
	if err != nil {
		return nil, err
	}

	summary := &domain.DietSummaryResponse{
		Totals:  diet.DailyTotals(entries, now),
		History: make(map[string][]domain.HistoryPoint, len(diet.AllMetricKeys)),
	}
	for _, key := range diet.AllMetricKeys {
		summary.History[string(key)] = diet.WeeklyHistory(entries, key, now)
	}

	return summary, nil
}
