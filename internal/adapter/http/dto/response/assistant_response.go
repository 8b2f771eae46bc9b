package response

import (
	"kyndly_ichra/internal/usecase"
	"kyndly_ichra/internal/usecase/interfaces"
)

type AssistantChatResponse struct {
	Response            string                   `json:"response"`
	ConversationHistory []interfaces.ChatMessage `json:"conversationHistory"`
}

func FromAssistantReply(r usecase.AssistantReply) AssistantChatResponse {
	return AssistantChatResponse{
		Response:            r.Response,
		ConversationHistory: r.ConversationHistory,
	}
}

type AssistantTopicResponse struct {
	Response string `json:"response"`
}
