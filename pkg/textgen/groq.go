package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/model"
)

// Sampling temperature per content category.
var temperatures = map[Category]float64{
	CategoryTaskName:           0.7,
	CategoryTaskDescription:    0.8,
	CategoryComment:            0.9,
	CategoryProjectDescription: 0.6,
}

// GroqProvider talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqProvider struct {
	apiKey     string
	url        string
	model      string
	maxRetries int
	client     *http.Client
}

func NewGroqProvider(cfg *config.LLMConfig) *GroqProvider {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if !strings.HasSuffix(baseURL, "/chat/completions") {
		baseURL += "/chat/completions"
	}
	return &GroqProvider{
		apiKey:     cfg.APIKey,
		url:        baseURL,
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *GroqProvider) Generate(ctx context.Context, category Category, tctx Context) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: buildPrompt(category, tctx)}},
		Temperature: temperatures[category],
		MaxTokens:   200,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	var text string
	operation := func() error {
		var opErr error
		text, opErr = p.call(ctx, body)
		return opErr
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(p.maxRetries)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return text, nil
}

func (p *GroqProvider) call(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", backoff.Permanent(fmt.Errorf("request rejected with status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices")
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("response contained empty content")
	}
	return text, nil
}

func buildPrompt(category Category, tctx Context) string {
	switch category {
	case CategoryTaskName:
		return fmt.Sprintf(
			"Generate a realistic %s task name for the project %q. Output only the task name, no other text.",
			teamDiscipline(tctx.TeamType), tctx.ProjectName)
	case CategoryTaskDescription:
		return fmt.Sprintf(
			"Write a short work-tracker description (one to three sentences) for the task %q. Output only the description.",
			tctx.TaskName)
	case CategoryComment:
		return fmt.Sprintf(
			"Write one short status-update comment a teammate might leave on the task %q. Output only the comment.",
			tctx.TaskName)
	case CategoryProjectDescription:
		return fmt.Sprintf(
			"Write a one-sentence description for a %s project named %q. Output only the sentence.",
			teamDiscipline(tctx.TeamType), tctx.ProjectName)
	default:
		return fmt.Sprintf("Generate a short piece of project-management text about %q.", tctx.ProjectName)
	}
}

func teamDiscipline(t model.TeamType) string {
	switch t {
	case model.TeamProduct:
		return "software engineering"
	case model.TeamMarketing:
		return "marketing"
	case model.TeamOperations:
		return "business operations"
	default:
		return "general"
	}
}
