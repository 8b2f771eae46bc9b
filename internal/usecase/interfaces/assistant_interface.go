package interfaces

import "context"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of an assistant conversation. Role is one of
// the ChatRole constants; the system prompt never crosses this boundary.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// IAssistant answers a user message given the prior conversation turns.
// Implementations own the model, prompt, and transport.
type IAssistant interface {
	Chat(ctx context.Context, message string, history []ChatMessage) (string, error)
}
