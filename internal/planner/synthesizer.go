// Package planner turns meal tags into structured meal-plan content via an
// external generation model.
package planner

import (
	"context"
	"fmt"
	"os"
	"strings"

	"mealplan-api/internal/llm"
)

const tagPreamblePrefix = "The following are meal tags that will be used as part of generating the query: "

// Synthesizer builds the generation prompt from a fixed instruction template
// plus caller-supplied tags and submits it to a generation backend.
type Synthesizer struct {
	gen      llm.Generator
	template string
}

// NewSynthesizer loads the instruction template from promptPath and returns
// a synthesizer bound to the given generator. The template is read once at
// startup, not per request.
func NewSynthesizer(gen llm.Generator, promptPath string) (*Synthesizer, error) {
	data, err := os.ReadFile(promptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template %s: %w", promptPath, err)
	}

	return &Synthesizer{
		gen:      gen,
		template: string(data),
	}, nil
}

// BuildTagPreamble returns the system message content: the fixed prefix
// followed by the tags joined with commas. Tags are not escaped, so a tag
// containing a comma is indistinguishable from two tags; the plain join is
// kept for prompt compatibility.
func BuildTagPreamble(tags []string) string {
	return tagPreamblePrefix + strings.Join(tags, ",")
}

// Synthesize submits the tag preamble (system role) and the instruction
// template (user role) to the generation backend and returns the raw text of
// the first completion. One attempt, no retries; the 30s bound lives in the
// backend's HTTP client.
func (s *Synthesizer) Synthesize(ctx context.Context, tags []string) (string, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: BuildTagPreamble(tags)},
		{Role: llm.RoleUser, Content: s.template},
	}

	raw, err := s.gen.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to synthesize meal plan: %w", err)
	}

	return raw, nil
}
