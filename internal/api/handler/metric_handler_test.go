package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
)

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestMetricHandler_Record(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		body           string
		mockService    *MockMetricService
		wantStatusCode int
	}{
		{
			name:           "valid request",
			userID:         userID.String(),
			body:           `{"type": "steps", "value": 8432}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid UUID",
			userID:         "not-a-uuid",
			body:           `{"type": "steps", "value": 8432}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			userID:         userID.String(),
			body:           `{invalid}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing type",
			userID:         userID.String(),
			body:           `{"value": 8432}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "unknown user",
			userID: userID.String(),
			body:   `{"type": "steps", "value": 8432}`,
			mockService: &MockMetricService{
				recordFunc: func(ctx context.Context, userID uuid.UUID, req *domain.RecordMetricRequest) (*domain.MetricSample, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "non-finite value",
			userID: userID.String(),
			body:   `{"type": "steps", "value": 1}`,
			mockService: &MockMetricService{
				recordFunc: func(ctx context.Context, userID uuid.UUID, req *domain.RecordMetricRequest) (*domain.MetricSample, error) {
					return nil, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMetricHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+tt.userID+"/metrics", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParams(req, map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.Record(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Record() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestMetricHandler_History(t *testing.T) {
	userID := uuid.New()

	mockService := &MockMetricService{
		historyFunc: func(ctx context.Context, id uuid.UUID, metricType domain.MetricType, limit int) (*domain.MetricHistoryResponse, error) {
			if limit != 7 {
				t.Errorf("expected limit 7 passed through, got %d", limit)
			}
			return &domain.MetricHistoryResponse{
				Type: metricType,
				Unit: "steps",
				Data: []domain.MetricPoint{{Date: "Mon 18", Value: 8432}},
			}, nil
		},
	}
	handler := NewMetricHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/metrics/steps/history?limit=7", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String(), "metricType": "steps"})
	rec := httptest.NewRecorder()

	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("History() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var response domain.MetricHistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Data) != 1 || response.Data[0].Date != "Mon 18" {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestMetricHandler_HistoryInvalidLimit(t *testing.T) {
	userID := uuid.New()
	handler := NewMetricHandler(&MockMetricService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/metrics/steps/history?limit=abc", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String(), "metricType": "steps"})
	rec := httptest.NewRecorder()

	handler.History(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("History() status = %d, want 400", rec.Code)
	}
}

func TestMetricHandler_Latest(t *testing.T) {
	userID := uuid.New()

	mockService := &MockMetricService{
		latestFunc: func(ctx context.Context, id uuid.UUID, metricType domain.MetricType) (*domain.LatestMetricResponse, error) {
			return &domain.LatestMetricResponse{Type: metricType, Value: 9000, Unit: "steps", HasData: true}, nil
		},
	}
	handler := NewMetricHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/metrics/steps/latest", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String(), "metricType": "steps"})
	rec := httptest.NewRecorder()

	handler.Latest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Latest() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var response domain.LatestMetricResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Value != 9000 || !response.HasData {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestMetricHandler_Reset(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		mockService    *MockMetricService
		wantStatusCode int
	}{
		{
			name:           "success",
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "unknown user",
			mockService: &MockMetricService{
				resetFunc: func(ctx context.Context, id uuid.UUID) error {
					return domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMetricHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodDelete, "/v1/users/"+userID.String()+"/data", nil)
			req = withURLParams(req, map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.Reset(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Reset() status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
		})
	}
}
