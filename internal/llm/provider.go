package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one reply from a hosted model. The lesson service
// is the only caller; it always sends a Schema and expects the reply
// Content to be a JSON lesson document that already passed Schema.Check.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, used in logs and lesson metadata.
	ModelID() string
}

// Request is a single prompt: a system instruction plus the messages.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON output and is enforced on the
	// reply. Without it Content is the model's raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one turn of the prompt.
type Message struct {
	Role    Role
	Content string
}

// UserMessage is shorthand for a user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema sent with a request. Name is kebab-case
// ("practice-lesson") and keys the compiled-schema cache, so two schemas
// must not share a name.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is a provider reply.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which may
	// differ from ModelID behind a router.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Usage is the token count for one reply.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
