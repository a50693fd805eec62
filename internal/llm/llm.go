package llm

import (
	"context"
	"errors"
)

// Chat roles understood by the generation APIs.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single chat message in a generation request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var (
	// ErrUpstream indicates the generation API could not be reached or
	// returned a non-success status.
	ErrUpstream = errors.New("generation api unavailable")

	// ErrMalformedReply indicates the generation API answered 2xx but the
	// body did not contain a completion (e.g. missing choices).
	ErrMalformedReply = errors.New("malformed generation api reply")
)

// Generator produces raw text from an ordered list of chat messages.
// Implementations make exactly one attempt; there are no retries.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Closer is implemented by generators holding network resources.
type Closer interface {
	Close() error
}
