package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrGeminiUnavailable indicates the Gemini service is not configured or unavailable.
	ErrGeminiUnavailable = errors.New("Gemini service unavailable")
	// ErrGeminiRequest indicates an error during the Gemini API request.
	ErrGeminiRequest = errors.New("Gemini request failed")
	// ErrGeminiResponse indicates an empty or malformed Gemini response.
	ErrGeminiResponse = errors.New("empty Gemini response")
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	// DefaultModel is the generation model used when none is configured.
	DefaultModel = "gemini-2.0-flash"
)

// TextGenerator is the single-shot text generation contract: all
// conversational context must already be serialized into the prompt.
type TextGenerator interface {
	// Generate produces a reply for the prompt. imageBase64, when
	// non-empty, is a base64 JPEG attached for analysis.
	Generate(ctx context.Context, systemPrompt, prompt, imageBase64 string) (string, error)
}

// GeminiClient implements TextGenerator against Gemini's OpenAI-compatible
// chat completions API.
type GeminiClient struct {
	client openai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client.
// Returns nil if apiKey is empty.
func NewGeminiClient(apiKey, model, baseURL string) *GeminiClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)

	return &GeminiClient{
		client: client,
		model:  model,
	}
}

// Generate calls Gemini and returns the reply text.
func (c *GeminiClient) Generate(ctx context.Context, systemPrompt, prompt, imageBase64 string) (string, error) {
	if c == nil {
		return "", ErrGeminiUnavailable
	}

	var userMessage openai.ChatCompletionMessageParamUnion
	if imageBase64 != "" {
		userMessage = openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(prompt),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: asDataURL(imageBase64),
			}),
		})
	} else {
		userMessage = openai.UserMessage(prompt)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			userMessage,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeminiRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrGeminiResponse)
	}

	reply := resp.Choices[0].Message.Content
	if reply == "" {
		return "", ErrGeminiResponse
	}
	return reply, nil
}

// asDataURL normalizes a raw base64 payload to a data URL; payloads that
// already carry a data URL prefix pass through.
func asDataURL(imageBase64 string) string {
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64
	}
	return "data:image/jpeg;base64," + imageBase64
}
