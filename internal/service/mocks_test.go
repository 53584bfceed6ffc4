package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/cache"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/langfuse"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) ListByCollege(ctx context.Context, college string) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var users []domain.User
	for _, user := range m.users {
		if user.College == college {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// MockMetricRepository is a mock implementation of MetricRepository
type MockMetricRepository struct {
	samples     []domain.MetricSample
	err         error
	latestCalls int
}

func NewMockMetricRepository() *MockMetricRepository {
	return &MockMetricRepository{}
}

func (m *MockMetricRepository) Create(ctx context.Context, sample *domain.MetricSample) error {
	if m.err != nil {
		return m.err
	}
	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	sample.CreatedAt = time.Now()
	m.samples = append(m.samples, *sample)
	return nil
}

func (m *MockMetricRepository) ListRecent(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, limit int) ([]domain.MetricSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matched []domain.MetricSample
	for _, sample := range m.samples {
		if sample.UserID == userID && sample.Type == metricType {
			matched = append(matched, sample)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Timestamp.After(matched[j].Timestamp) })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *MockMetricRepository) Latest(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*domain.MetricSample, error) {
	m.latestCalls++
	if m.err != nil {
		return nil, m.err
	}
	recent, err := m.ListRecent(ctx, userID, metricType, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, domain.ErrNotFound
	}
	return &recent[0], nil
}

// MockLatestCache is an in-memory stand-in for the Redis latest-value cache.
type MockLatestCache struct {
	entries map[string]cache.Entry
	err     error
}

func NewMockLatestCache() *MockLatestCache {
	return &MockLatestCache{entries: make(map[string]cache.Entry)}
}

func latestCacheKey(userID uuid.UUID, metricType domain.MetricType) string {
	return userID.String() + ":" + string(metricType)
}

func (m *MockLatestCache) Get(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*cache.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[latestCacheKey(userID, metricType)]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return &entry, nil
}

func (m *MockLatestCache) Set(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, entry cache.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries[latestCacheKey(userID, metricType)] = entry
	return nil
}

func (m *MockLatestCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	prefix := userID.String() + ":"
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}

// MockDietLogRepository is a mock implementation of DietLogRepository
type MockDietLogRepository struct {
	entries []domain.DietLogEntry
	err     error
}

func NewMockDietLogRepository() *MockDietLogRepository {
	return &MockDietLogRepository{}
}

func (m *MockDietLogRepository) Create(ctx context.Context, entry *domain.DietLogEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockDietLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DietLogFilter) ([]domain.DietLogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matched []domain.DietLogEntry
	for _, entry := range m.entries {
		if entry.UserID == userID {
			matched = append(matched, entry)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Timestamp.After(matched[j].Timestamp) })
	return matched, nil
}

func (m *MockDietLogRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DietLogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matched []domain.DietLogEntry
	for _, entry := range m.entries {
		if entry.UserID == userID && !entry.Timestamp.Before(since) {
			matched = append(matched, entry)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Timestamp.Before(matched[j].Timestamp) })
	return matched, nil
}

// MockResetRepository is a mock implementation of ResetRepository. It
// clears the paired metric and diet log mocks like the transactional
// delete would.
type MockResetRepository struct {
	metrics *MockMetricRepository
	diets   *MockDietLogRepository
	err     error
}

func NewMockResetRepository(metrics *MockMetricRepository, diets *MockDietLogRepository) *MockResetRepository {
	return &MockResetRepository{metrics: metrics, diets: diets}
}

func (m *MockResetRepository) ResetUserData(ctx context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	var keptSamples []domain.MetricSample
	for _, sample := range m.metrics.samples {
		if sample.UserID != userID {
			keptSamples = append(keptSamples, sample)
		}
	}
	m.metrics.samples = keptSamples

	var keptEntries []domain.DietLogEntry
	for _, entry := range m.diets.entries {
		if entry.UserID != userID {
			keptEntries = append(keptEntries, entry)
		}
	}
	m.diets.entries = keptEntries
	return nil
}

// MockCommunityRepository is a mock implementation of CommunityRepository
type MockCommunityRepository struct {
	messages []domain.CommunityMessage
	err      error
}

func NewMockCommunityRepository() *MockCommunityRepository {
	return &MockCommunityRepository{}
}

func (m *MockCommunityRepository) Create(ctx context.Context, msg *domain.CommunityMessage) error {
	if m.err != nil {
		return m.err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *MockCommunityRepository) List(ctx context.Context, limit int, cursor string) ([]domain.CommunityMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	messages := make([]domain.CommunityMessage, len(m.messages))
	copy(messages, m.messages)
	sort.Slice(messages, func(i, j int) bool { return messages[i].Timestamp.Before(messages[j].Timestamp) })
	if len(messages) > limit+1 {
		messages = messages[:limit+1]
	}
	return messages, nil
}

// MockCollegeRepository is a mock implementation of CollegeRepository
type MockCollegeRepository struct {
	colleges map[uuid.UUID]*domain.College
	err      error
}

func NewMockCollegeRepository() *MockCollegeRepository {
	return &MockCollegeRepository{colleges: make(map[uuid.UUID]*domain.College)}
}

func (m *MockCollegeRepository) Create(ctx context.Context, college *domain.College) error {
	if m.err != nil {
		return m.err
	}
	if college.ID == uuid.Nil {
		college.ID = uuid.New()
	}
	college.CreatedAt = time.Now()
	m.colleges[college.ID] = college
	return nil
}

func (m *MockCollegeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.College, error) {
	if m.err != nil {
		return nil, m.err
	}
	college, ok := m.colleges[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return college, nil
}

func (m *MockCollegeRepository) List(ctx context.Context) ([]domain.College, error) {
	if m.err != nil {
		return nil, m.err
	}
	var colleges []domain.College
	for _, college := range m.colleges {
		colleges = append(colleges, *college)
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].Name < colleges[j].Name })
	return colleges, nil
}

// MockTextGenerator is a mock implementation of llm.TextGenerator
type MockTextGenerator struct {
	reply        string
	err          error
	lastSystem   string
	lastPrompt   string
	lastImage    string
	generateCall int
}

func (m *MockTextGenerator) Generate(ctx context.Context, systemPrompt, prompt, imageBase64 string) (string, error) {
	m.generateCall++
	m.lastSystem = systemPrompt
	m.lastPrompt = prompt
	m.lastImage = imageBase64
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled    bool
	traceID    string
	traceErr   error
	scoreErr   error
	lastTrace  langfuse.TraceInput
	lastScore  langfuse.ScoreInput
	traceCalls int
	scoreCalls int
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traceCalls++
	m.lastTrace = in
	if m.traceErr != nil {
		return "", m.traceErr
	}
	return m.traceID, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return m.scoreErr
}
