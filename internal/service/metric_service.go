package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/cache"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/repository"
	"github.com/vitapulse/health-tracker/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultHistoryLimit matches the dashboard's 14-day chart window.
	DefaultHistoryLimit = 14
	// MaxHistoryLimit caps a single history read.
	MaxHistoryLimit = 100

	// historyDateLayout renders the short chart label, e.g. "Mon 15".
	historyDateLayout = "Mon 2"
)

// MetricService is the append-only per-user, per-type health metric store.
type MetricService interface {
	// Record appends one sample. The timestamp defaults to now. Values
	// must be finite and the type non-empty; physiological range checks
	// are deliberately not performed.
	Record(ctx context.Context, userID uuid.UUID, req *domain.RecordMetricRequest) (*domain.MetricSample, error)
	// History returns the limit most recent samples ordered oldest to
	// newest, each with a chart-ready date label. Empty, not an error,
	// when nothing is recorded yet.
	History(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, limit int) (*domain.MetricHistoryResponse, error)
	// Latest returns the most recent value, or the zero sentinel when no
	// sample exists.
	Latest(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*domain.LatestMetricResponse, error)
	// Reset irreversibly deletes every metric sample and diet log entry
	// owned by the user.
	Reset(ctx context.Context, userID uuid.UUID) error
}

type metricService struct {
	repo        repository.MetricRepository
	resetRepo   repository.ResetRepository
	userRepo    repository.UserRepository
	latestCache cache.LatestCache
	log         *logger.Logger
}

// NewMetricService creates a new MetricService. latestCache may be nil,
// in which case every Latest read goes to the repository.
func NewMetricService(
	repo repository.MetricRepository,
	resetRepo repository.ResetRepository,
	userRepo repository.UserRepository,
	latestCache cache.LatestCache,
	log *logger.Logger,
) MetricService {
	return &metricService{
		repo:        repo,
		resetRepo:   resetRepo,
		userRepo:    userRepo,
		latestCache: latestCache,
		log:         log,
	}
}

func (s *metricService) Record(ctx context.Context, userID uuid.UUID, req *domain.RecordMetricRequest) (*domain.MetricSample, error) {
	if strings.TrimSpace(string(req.Type)) == "" {
		return nil, domain.ErrInvalidInput
	}
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != nil {
		timestamp = req.Timestamp.UTC()
	}

	sample := &domain.MetricSample{
		UserID:    userID,
		Type:      req.Type,
		Value:     req.Value,
		Timestamp: timestamp,
	}

	if err := s.repo.Create(ctx, sample); err != nil {
		return nil, err
	}

	s.cacheRecorded(ctx, sample)

	return sample, nil
}

// cacheRecorded updates the latest-value cache after a write. Samples may
// arrive backdated, so the cached entry is only replaced when the new
// sample's timestamp is at least as recent; otherwise a backdated record
// would shadow the true latest reading until the TTL expired. The
// read-then-write is not atomic, but the TTL bounds staleness from a
// racing writer.
func (s *metricService) cacheRecorded(ctx context.Context, sample *domain.MetricSample) {
	if s.latestCache == nil {
		return
	}

	cached, err := s.latestCache.Get(ctx, sample.UserID, sample.Type)
	if err != nil && err != cache.ErrCacheMiss {
		s.log.Warnw("latest cache get failed", "metric_type", sample.Type, "error", err)
		return
	}
	if cached != nil && cached.Timestamp.After(sample.Timestamp) {
		return
	}

	entry := cache.Entry{Value: sample.Value, Timestamp: sample.Timestamp}
	if err := s.latestCache.Set(ctx, sample.UserID, sample.Type, entry); err != nil {
		s.log.Warnw("latest cache set failed", "metric_type", sample.Type, "error", err)
	}
}

func (s *metricService) History(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, limit int) (*domain.MetricHistoryResponse, error) {
	tracer := otel.Tracer("health-tracker-api/metrics")
	ctx, span := tracer.Start(ctx, "MetricService.History",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("metric.type", string(metricType)),
		),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	limit = normalizeHistoryLimit(limit)
	span.SetAttributes(attribute.Int("metric.limit", limit))

	samples, err := s.repo.ListRecent(ctx, userID, metricType, limit)
	if err != nil {
		return nil, err
	}

	// Storage order is newest first; charts want oldest to newest.
	points := make([]domain.MetricPoint, len(samples))
	for i, sample := range samples {
		points[len(samples)-1-i] = domain.MetricPoint{
			Date:      sample.Timestamp.Format(historyDateLayout),
			Value:     sample.Value,
			Timestamp: sample.Timestamp,
		}
	}

	return &domain.MetricHistoryResponse{
		Type: metricType,
		Unit: domain.MetricUnits[metricType],
		Data: points,
	}, nil
}

func (s *metricService) Latest(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*domain.LatestMetricResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if s.latestCache != nil {
		if entry, err := s.latestCache.Get(ctx, userID, metricType); err == nil {
			return &domain.LatestMetricResponse{
				Type:    metricType,
				Value:   entry.Value,
				Unit:    domain.MetricUnits[metricType],
				HasData: true,
			}, nil
		} else if err != cache.ErrCacheMiss {
			s.log.Warnw("latest cache get failed", "metric_type", metricType, "error", err)
		}
	}

	sample, err := s.repo.Latest(ctx, userID, metricType)
	if err != nil {
		if err == domain.ErrNotFound {
			// Zero sentinel: no data recorded yet.
			return &domain.LatestMetricResponse{
				Type: metricType,
				Unit: domain.MetricUnits[metricType],
			}, nil
		}
		return nil, err
	}

	if s.latestCache != nil {
		entry := cache.Entry{Value: sample.Value, Timestamp: sample.Timestamp}
		if err := s.latestCache.Set(ctx, userID, metricType, entry); err != nil {
			s.log.Warnw("latest cache backfill failed", "metric_type", metricType, "error", err)
		}
	}

	return &domain.LatestMetricResponse{
		Type:    metricType,
		Value:   sample.Value,
		Unit:    domain.MetricUnits[metricType],
		HasData: true,
	}, nil
}

func (s *metricService) Reset(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := s.resetRepo.ResetUserData(ctx, userID); err != nil {
		return err
	}

	if s.latestCache != nil {
		if err := s.latestCache.InvalidateUser(ctx, userID); err != nil {
			s.log.Warnw("latest cache invalidation failed", "user_id", userID, "error", err)
		}
	}

	return nil
}

func normalizeHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
