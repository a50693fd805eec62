package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"mealplan-api/internal/config"

	"github.com/google/uuid"
)

// requestTimeout bounds a single generation round-trip. There is exactly one
// attempt per call; a timeout surfaces as ErrUpstream.
const requestTimeout = 30 * time.Second

// openAIClient talks to any OpenAI-compatible chat-completions endpoint.
type openAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewOpenAIClient creates a chat-completions client for the configured
// base URL and model.
func NewOpenAIClient(cfg config.LLMConfig, log *slog.Logger) Generator {
	return &openAIClient{
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: cfg.OpenAIBaseURL,
		model:   cfg.OpenAIModel,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log,
	}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the messages to the chat-completions API and returns the
// first completion's content. The full exchange is logged at debug level
// under a per-exchange id; nothing is logged above debug.
func (c *openAIClient) Generate(ctx context.Context, messages []Message) (string, error) {
	exchangeID := uuid.New().String()

	jsonBody, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	c.log.Debug("llm request",
		"exchange_id", exchangeID,
		"model", c.model,
		"body", string(jsonBody),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status=%d body=%s", ErrUpstream, resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrMalformedReply)
	}

	content := chatResp.Choices[0].Message.Content

	c.log.Debug("llm response",
		"exchange_id", exchangeID,
		"content", content,
	)

	return content, nil
}
