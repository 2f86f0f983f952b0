package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Anujnegi157/evalease-screens/internal/config"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type azureOpenAIService struct {
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
	maxTokens  int
	timeout    time.Duration
}

func NewAzureOpenAIService(cfg config.TextGenConfig) TextGenerator {
	return &azureOpenAIService{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		deployment: cfg.Deployment,
		apiVersion: cfg.APIVersion,
		maxTokens:  cfg.MaxOutputTokens,
		timeout:    cfg.Timeout,
	}
}

func (a *azureOpenAIService) completionsURL() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		a.endpoint, url.PathEscape(a.deployment), url.QueryEscape(a.apiVersion))
}

// Generate implements TextGenerator.
func (a *azureOpenAIService) Generate(ctx context.Context, system, user string) (string, error) {
	agent := fiber.Post(a.completionsURL())
	agent.Set("api-key", a.apiKey)
	agent.JSON(chatCompletionRequest{
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxCompletionTokens: a.maxTokens,
	})

	code, body, err := doRequest(ctx, agent, a.timeout)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	var resp chatCompletionResponse
	if !isSuccess(code) {
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &resp) == nil && resp.Error != nil && resp.Error.Message != "" {
			msg = resp.Error.Message
		}
		return "", fmt.Errorf("chat completion returned status %d: %s", code, msg)
	}

	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion")
	}

	return resp.Choices[0].Message.Content, nil
}
