package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Name: req.Name, Email: req.Email, Timezone: "UTC", CreatedAt: time.Now()}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockMetricService is a mock implementation of MetricService
type MockMetricService struct {
	recordFunc  func(ctx context.Context, userID uuid.UUID, req *domain.RecordMetricRequest) (*domain.MetricSample, error)
	historyFunc func(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, limit int) (*domain.MetricHistoryResponse, error)
	latestFunc  func(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*domain.LatestMetricResponse, error)
	resetFunc   func(ctx context.Context, userID uuid.UUID) error
}

func (m *MockMetricService) Record(ctx context.Context, userID uuid.UUID, req *domain.RecordMetricRequest) (*domain.MetricSample, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, userID, req)
	}
	return &domain.MetricSample{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      req.Type,
		Value:     req.Value,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (m *MockMetricService) History(ctx context.Context, userID uuid.UUID, metricType domain.MetricType, limit int) (*domain.MetricHistoryResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, metricType, limit)
	}
	return &domain.MetricHistoryResponse{Type: metricType, Data: []domain.MetricPoint{}}, nil
}

func (m *MockMetricService) Latest(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (*domain.LatestMetricResponse, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, userID, metricType)
	}
	return &domain.LatestMetricResponse{Type: metricType}, nil
}

func (m *MockMetricService) Reset(ctx context.Context, userID uuid.UUID) error {
	if m.resetFunc != nil {
		return m.resetFunc(ctx, userID)
	}
	return nil
}

// MockDietService is a mock implementation of DietService
type MockDietService struct {
	logFunc     func(ctx context.Context, userID uuid.UUID, req *domain.CreateDietLogRequest) (*domain.DietLogEntry, error)
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.DietLogFilter) (*domain.DietLogListResponse, error)
	summaryFunc func(ctx context.Context, userID uuid.UUID) (*domain.DietSummaryResponse, error)
}

func (m *MockDietService) Log(ctx context.Context, userID uuid.UUID, req *domain.CreateDietLogRequest) (*domain.DietLogEntry, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, userID, req)
	}
	return &domain.DietLogEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      req.Type,
		Name:      req.Name,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (m *MockDietService) List(ctx context.Context, userID uuid.UUID, filter domain.DietLogFilter) (*domain.DietLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.DietLogListResponse{Data: []domain.DietLogResponse{}}, nil
}

func (m *MockDietService) Summary(ctx context.Context, userID uuid.UUID) (*domain.DietSummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID)
	}
	return &domain.DietSummaryResponse{History: map[string][]domain.HistoryPoint{}}, nil
}

// MockAssistantService is a mock implementation of AssistantService
type MockAssistantService struct {
	chatFunc     func(ctx context.Context, userID uuid.UUID, req *domain.AssistantRequest) (*domain.AssistantResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.AssistantFeedbackRequest) error
}

func (m *MockAssistantService) Chat(ctx context.Context, userID uuid.UUID, req *domain.AssistantRequest) (*domain.AssistantResponse, error) {
	if m.chatFunc != nil {
		return m.chatFunc(ctx, userID, req)
	}
	return &domain.AssistantResponse{Reply: "ok"}, nil
}

func (m *MockAssistantService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.AssistantFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// MockCommunityService is a mock implementation of CommunityService
type MockCommunityService struct {
	postFunc func(ctx context.Context, userID uuid.UUID, req *domain.PostMessageRequest) (*domain.CommunityMessage, error)
	listFunc func(ctx context.Context, limit int, cursor string) (*domain.CommunityMessageListResponse, error)
}

func (m *MockCommunityService) Post(ctx context.Context, userID uuid.UUID, req *domain.PostMessageRequest) (*domain.CommunityMessage, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, userID, req)
	}
	return &domain.CommunityMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Sender:    "Test",
		Text:      req.Text,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (m *MockCommunityService) List(ctx context.Context, limit int, cursor string) (*domain.CommunityMessageListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, cursor)
	}
	return &domain.CommunityMessageListResponse{Data: []domain.CommunityMessageResponse{}}, nil
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	addCollegeFunc   func(ctx context.Context, req *domain.CreateCollegeRequest) (*domain.College, error)
	listCollegesFunc func(ctx context.Context) ([]domain.CollegeResponse, error)
	overviewFunc     func(ctx context.Context, collegeID uuid.UUID) (*domain.StudentOverviewListResponse, error)
}

func (m *MockAdminService) AddCollege(ctx context.Context, req *domain.CreateCollegeRequest) (*domain.College, error) {
	if m.addCollegeFunc != nil {
		return m.addCollegeFunc(ctx, req)
	}
	return &domain.College{ID: uuid.New(), Name: req.Name, CreatedAt: time.Now()}, nil
}

func (m *MockAdminService) ListColleges(ctx context.Context) ([]domain.CollegeResponse, error) {
	if m.listCollegesFunc != nil {
		return m.listCollegesFunc(ctx)
	}
	return []domain.CollegeResponse{}, nil
}

func (m *MockAdminService) StudentOverview(ctx context.Context, collegeID uuid.UUID) (*domain.StudentOverviewListResponse, error) {
	if m.overviewFunc != nil {
		return m.overviewFunc(ctx, collegeID)
	}
	return nil, domain.ErrNotFound
}
