package llm

import (
	"context"
	"fmt"
	"strings"

	"mealplan-api/internal/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiClient is an alternative generation backend using the Google
// Gemini API. Selected with LLM_PROVIDER=gemini.
type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini API client.
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	return &geminiClient{client: client, model: model}, nil
}

// Generate sends the messages to the Gemini model and returns the generated
// text. Gemini has no separate system role on this path, so system messages
// become the prompt preamble.
func (c *geminiClient) Generate(ctx context.Context, messages []Message) (string, error) {
	var prompt strings.Builder
	for _, m := range messages {
		if prompt.Len() > 0 {
			prompt.WriteString("\n\n")
		}
		prompt.WriteString(m.Content)
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrMalformedReply)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("%w: generated content is not text", ErrMalformedReply)
	}

	return string(text), nil
}

// Close closes the underlying Gemini client.
func (c *geminiClient) Close() error {
	return c.client.Close()
}
