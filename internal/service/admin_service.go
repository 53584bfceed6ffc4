package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/repository"
)

// AdminService manages colleges and the per-college student overview.
type AdminService interface {
	AddCollege(ctx context.Context, req *domain.CreateCollegeRequest) (*domain.College, error)
	ListColleges(ctx context.Context) ([]domain.CollegeResponse, error)
	// StudentOverview lists the college's students with their latest
	// steps and stress readings; students without samples report zero.
	StudentOverview(ctx context.Context, collegeID uuid.UUID) (*domain.StudentOverviewListResponse, error)
}

type adminService struct {
	collegeRepo repository.CollegeRepository
	userRepo    repository.UserRepository
	metricRepo  repository.MetricRepository
}

func NewAdminService(
	collegeRepo repository.CollegeRepository,
	userRepo repository.UserRepository,
	metricRepo repository.MetricRepository,
) AdminService {
	return &adminService{
		collegeRepo: collegeRepo,
		userRepo:    userRepo,
		metricRepo:  metricRepo,
	}
}

func (s *adminService) AddCollege(ctx context.Context, req *domain.CreateCollegeRequest) (*domain.College, error) {
	college := &domain.College{Name: req.Name}
	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

func (s *adminService) ListColleges(ctx context.Context) ([]domain.CollegeResponse, error) {
	colleges, err := s.collegeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CollegeResponse, len(colleges))
	for i, college := range colleges {
		responses[i] = college.ToResponse()
	}
	return responses, nil
}

func (s *adminService) StudentOverview(ctx context.Context, collegeID uuid.UUID) (*domain.StudentOverviewListResponse, error) {
	college, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	students, err := s.userRepo.ListByCollege(ctx, college.Name)
	if err != nil {
		return nil, err
	}

	response := &domain.StudentOverviewListResponse{
		College: college.Name,
		Data:    make([]domain.StudentOverview, len(students)),
	}

	for i, student := range students {
		overview := domain.StudentOverview{User: student.ToResponse()}

		steps, err := s.latestValue(ctx, student.ID, domain.MetricSteps)
		if err != nil {
			return nil, err
		}
		overview.Steps = steps

		stress, err := s.latestValue(ctx, student.ID, domain.MetricStress)
		if err != nil {
			return nil, err
		}
		overview.Stress = stress

		response.Data[i] = overview
	}

	return response, nil
}

func (s *adminService) latestValue(ctx context.Context, userID uuid.UUID, metricType domain.MetricType) (float64, error) {
	sample, err := s.metricRepo.Latest(ctx, userID, metricType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return sample.Value, nil
}
