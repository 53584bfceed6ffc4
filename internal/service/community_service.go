package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/repository"
	"github.com/vitapulse/health-tracker/pkg/pagination"
)

// CommunityService handles the shared community message stream. Clients
// poll List with the cursor of the last message they have seen; this
// stands in for the live subscription of the original store.
type CommunityService interface {
	Post(ctx context.Context, userID uuid.UUID, req *domain.PostMessageRequest) (*domain.CommunityMessage, error)
	List(ctx context.Context, limit int, cursor string) (*domain.CommunityMessageListResponse, error)
}

type communityService struct {
	repo     repository.CommunityRepository
	userRepo repository.UserRepository
}

func NewCommunityService(repo repository.CommunityRepository, userRepo repository.UserRepository) CommunityService {
	return &communityService{repo: repo, userRepo: userRepo}
}

func (s *communityService) Post(ctx context.Context, userID uuid.UUID, req *domain.PostMessageRequest) (*domain.CommunityMessage, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	msg := &domain.CommunityMessage{
		UserID:    userID,
		Sender:    user.Name,
		Text:      req.Text,
		Timestamp: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *communityService) List(ctx context.Context, limit int, cursor string) (*domain.CommunityMessageListResponse, error) {
	messages, err := s.repo.List(ctx, limit, cursor)
	if err != nil {
		return nil, err
	}

	limit = pagination.NormalizeLimit(limit)
	hasMore := len(messages) > limit
	if hasMore {
		messages = messages[:limit]
	}

	response := &domain.CommunityMessageListResponse{
		Data: make([]domain.CommunityMessageResponse, len(messages)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, msg := range messages {
		response.Data[i] = msg.ToResponse()
	}

	if hasMore && len(messages) > 0 {
		last := messages[len(messages)-1]
		cursor := &pagination.Cursor{ID: last.ID, Timestamp: last.Timestamp}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
