package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/langfuse"
	"github.com/vitapulse/health-tracker/internal/llm"
	"github.com/vitapulse/health-tracker/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultSystemPrompt is the built-in assistant instruction, used when no
// managed prompt is configured.
const DefaultSystemPrompt = `You are Vita, a professional Health Assistant. Your goal is to provide accurate, medical, and health-related advice.

RULES:
1. Keep responses STRICTLY under 50 words.
2. Be specific (e.g., name exact yoga poses or books) but extremely concise.
3. Use bullet points if possible to save space.
4. If an image is provided, give a quick 1-sentence analysis.
5. Maintain a professional, clinical, yet helpful tone.`

// AssistantService is the conversational health assistant. The upstream
// text API is stateless, so each call carries the full history serialized
// into the prompt.
type AssistantService interface {
	Chat(ctx context.Context, userID uuid.UUID, req *domain.AssistantRequest) (*domain.AssistantResponse, error)
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.AssistantFeedbackRequest) error
}

type assistantService struct {
	generator      llm.TextGenerator
	userRepo       repository.UserRepository
	langfuseClient langfuse.Client
	systemPrompt   string
}

// NewAssistantService creates a new AssistantService. systemPrompt falls
// back to DefaultSystemPrompt when empty.
func NewAssistantService(
	generator llm.TextGenerator,
	userRepo repository.UserRepository,
	langfuseClient langfuse.Client,
	systemPrompt string,
) AssistantService {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &assistantService{
		generator:      generator,
		userRepo:       userRepo,
		langfuseClient: langfuseClient,
		systemPrompt:   systemPrompt,
	}
}

func (s *assistantService) Chat(ctx context.Context, userID uuid.UUID, req *domain.AssistantRequest) (*domain.AssistantResponse, error) {
	tracer := otel.Tracer("health-tracker-api/assistant")
	ctx, span := tracer.Start(ctx, "AssistantService.Chat",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("chat.history_turns", len(req.History)),
			attribute.Bool("chat.has_image", req.ImageBase64 != ""),
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

	prompt := BuildAssistantPrompt(req.History, req.Message)

	reply, err := s.generator.Generate(ctx, s.systemPrompt, prompt, req.ImageBase64)
	if err != nil {
		if errors.Is(err, llm.ErrGeminiUnavailable) {
			return nil, domain.ErrAssistantUnavailable
		}
		return nil, err
	}

	response := &domain.AssistantResponse{Reply: reply}

	if s.langfuseClient != nil && s.langfuseClient.IsEnabled() {
		traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			UserID: userID.String(),
			Name:   "health-assistant",
			Input:  map[string]any{"message": req.Message, "history_turns": len(req.History)},
			Output: map[string]any{"reply": reply},
			Tags:   []string{"assistant"},
		})
		if err == nil {
			response.TraceID = traceID
		}
	}

	return response, nil
}

func (s *assistantService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.AssistantFeedbackRequest) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if s.langfuseClient == nil || !s.langfuseClient.IsEnabled() {
		return domain.ErrAssistantUnavailable
	}

	return s.langfuseClient.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Rating),
		Comment: req.Comment,
	})
}

// BuildAssistantPrompt serializes prior turns and the current message into
// a single prompt, since the generation API keeps no server-side session.
func BuildAssistantPrompt(history []domain.ChatTurn, message string) string {
	var b strings.Builder
	b.WriteString("Previous Conversation:\n")
	for _, turn := range history {
		speaker := "Vita"
		if turn.Sender == domain.SenderUser {
			speaker = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, turn.Text)
	}
	fmt.Fprintf(&b, "\nCurrent User Message: %s", message)
	return b.String()
}
