package request

import "kyndly_ichra/internal/usecase/interfaces"

type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type AssistantChatRequest struct {
	Message             string        `json:"message" binding:"required"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
}

func (r AssistantChatRequest) History() []interfaces.ChatMessage {
	out := make([]interfaces.ChatMessage, 0, len(r.ConversationHistory))
	for _, m := range r.ConversationHistory {
		out = append(out, interfaces.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}

type AssistantTopicRequest struct {
	Query string `json:"query" binding:"required"`
}
