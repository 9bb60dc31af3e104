// Package inference provides the remote chat completion client.
//
// The package abstracts chat completions behind a Provider interface and
// ships an HTTP client that works with any OpenAI-compatible API. The
// defaults target Perplexity, which is what Nova's conversational brain
// runs on.
//
// Example usage:
//
//	client, _ := inference.NewClient(
//	    inference.WithAPIKey(os.Getenv("PERPLEXITY_API_KEY")),
//	)
//	defer client.Close()
//
//	answer, _ := client.Complete(ctx, inference.SystemPrompt, "What is the weather like today?")
package inference

import "context"

// Provider is the chat completion interface consumed by the dispatcher.
type Provider interface {
	// Chat generates a response from a sequence of messages.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Complete is the single-turn convenience used by the dispatcher:
	// one system prompt, one user prompt, the configured model defaults.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Health checks provider connectivity and API key validity.
	Health(ctx context.Context) error

	// Close releases any resources held by the provider.
	Close() error
}

// SystemPrompt is the fixed persona instruction for every completion.
// Responses must stay short enough to be spoken aloud.
const SystemPrompt = "You are Nova, an intelligent and helpful voice assistant. " +
	"Respond in a natural, conversational way. Keep responses brief (2-3 sentences max) " +
	"and suitable for speech. Be friendly, informative, and concise."

// Role defines message roles in a conversation.
type Role string

const (
	// RoleSystem is for system instructions.
	RoleSystem Role = "system"

	// RoleUser is for user messages.
	RoleUser Role = "user"

	// RoleAssistant is for assistant responses.
	RoleAssistant Role = "assistant"
)

// Message represents a chat message in a conversation.
type Message struct {
	// Role identifies the message sender.
	Role Role

	// Content is the text content of the message.
	Content string
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ChatRequest for chat completions.
type ChatRequest struct {
	// Messages is the conversation history.
	Messages []Message

	// Model overrides the default model.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls randomness (0.0-2.0).
	Temperature float64
}

// ChatResponse from chat completion.
type ChatResponse struct {
	// Message is the assistant's response.
	Message Message

	// FinishReason indicates why generation stopped.
	FinishReason string

	// Usage tracks token consumption.
	Usage Usage

	// Model used for generation.
	Model string

	// LatencyMs is the response time in milliseconds.
	LatencyMs int64
}

// Usage tracks token consumption for billing and limits.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
