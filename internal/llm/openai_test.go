package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealplan-api/internal/config"
	"mealplan-api/pkg/logger"
)

func newTestClient(baseURL string) Generator {
	return NewOpenAIClient(config.LLMConfig{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: baseURL,
		OpenAIModel:   "gpt-3.5-turbo",
	}, logger.New("error"))
}

func TestOpenAIClient_Generate(t *testing.T) {
	var captured chatRequest
	var capturedAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"generated text"}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	messages := []Message{
		{Role: RoleSystem, Content: "tags: vegan,quick"},
		{Role: RoleUser, Content: "make a plan"},
	}

	got, err := client.Generate(context.Background(), messages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "generated text" {
		t.Errorf("expected %q, got %q", "generated text", got)
	}

	if capturedAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth header, got %q", capturedAuth)
	}

	if captured.Model != "gpt-3.5-turbo" {
		t.Errorf("expected model gpt-3.5-turbo, got %q", captured.Model)
	}

	if len(captured.Messages) != 2 || captured.Messages[0].Role != RoleSystem {
		t.Errorf("unexpected messages sent: %+v", captured.Messages)
	}
}

func TestOpenAIClient_Generate_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestOpenAIClient_Generate_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := newTestClient(srv.URL)

	_, err := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestOpenAIClient_Generate_MissingChoices(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty choices", `{"choices":[]}`},
		{"no choices field", `{}`},
		{"not json", `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)

			_, err := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
			if !errors.Is(err, ErrMalformedReply) {
				t.Errorf("expected ErrMalformedReply, got %v", err)
			}
		})
	}
}
