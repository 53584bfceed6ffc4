package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PromptLoaderConfig describes how to load a managed prompt from Langfuse.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
}

var errPromptDisabled = errors.New("langfuse prompt loading disabled")

// LoadPrompt retrieves a text prompt from Langfuse, returning fallback
// when Langfuse is not configured or the fetch fails. This lets the
// assistant system prompt be tuned without a redeploy while the built-in
// prompt keeps the service functional.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig, fallback string) string {
	prompt, err := fetchPrompt(ctx, cfg)
	if err != nil {
		return fallback
	}
	return prompt
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" || cfg.PromptName == "" {
		return "", errPromptDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		query := parsed.Query()
		query.Set("label", cfg.PromptLabel)
		parsed.RawQuery = query.Encode()
	}

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	if promptResp.Type != "" && promptResp.Type != "text" {
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}

	var textPrompt string
	if err := json.Unmarshal(promptResp.Prompt, &textPrompt); err != nil {
		return "", fmt.Errorf("parse text prompt: %w", err)
	}
	return textPrompt, nil
}
