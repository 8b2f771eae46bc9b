package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"kyndly_ichra/internal/domain/auth"
	"kyndly_ichra/internal/usecase/interfaces"
)

var (
	ErrMissingChatMessage     = errors.New("message is required")
	ErrMissingTopicQuery      = errors.New("query is required")
	ErrInvalidChatHistory     = errors.New("conversation history entries need a role and content")
	ErrAssistantNotConfigured = errors.New("assistant is not configured")
)

// AssistantReply carries the assistant's answer plus the conversation
// history extended with this exchange, ready to send back on the next turn.
type AssistantReply struct {
	Response            string
	ConversationHistory []interfaces.ChatMessage
}

type IAssistantUseCase interface {
	Chat(ctx context.Context, actor auth.Actor, message string, history []interfaces.ChatMessage) (AssistantReply, error)
	TopicInfo(ctx context.Context, actor auth.Actor, query string) (string, error)
}

// AssistantUseCase fronts the ICHRA knowledge center. The assistant
// holds no tenant data, so any authenticated actor may use it.
type AssistantUseCase struct {
	assistant interfaces.IAssistant
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(assistant interfaces.IAssistant) *AssistantUseCase {
	return &AssistantUseCase{assistant: assistant}
}

func (u *AssistantUseCase) Chat(ctx context.Context, actor auth.Actor, message string, history []interfaces.ChatMessage) (AssistantReply, error) {
	if u.assistant == nil {
		return AssistantReply{}, ErrAssistantNotConfigured
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return AssistantReply{}, ErrMissingChatMessage
	}
	for _, m := range history {
		if m.Role == "" || m.Content == "" {
			return AssistantReply{}, ErrInvalidChatHistory
		}
	}

	answer, err := u.assistant.Chat(ctx, message, history)
	if err != nil {
		return AssistantReply{}, err
	}
	log.Printf("[assistant][usecase] chat answered sub=%s turns=%d", actor.Sub, len(history)+2)

	updated := make([]interfaces.ChatMessage, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		interfaces.ChatMessage{Role: interfaces.ChatRoleUser, Content: message},
		interfaces.ChatMessage{Role: interfaces.ChatRoleAssistant, Content: answer},
	)
	return AssistantReply{Response: answer, ConversationHistory: updated}, nil
}

// TopicInfo asks for a focused answer on a single ICHRA topic, without
// carrying any conversation state.
func (u *AssistantUseCase) TopicInfo(ctx context.Context, actor auth.Actor, query string) (string, error) {
	if u.assistant == nil {
		return "", ErrAssistantNotConfigured
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrMissingTopicQuery
	}

	prompt := fmt.Sprintf(`The user wants to know about: %s

Provide specific, accurate information about this ICHRA-related topic. Focus on practical information
and include any relevant regulatory references if applicable.`, query)

	answer, err := u.assistant.Chat(ctx, prompt, nil)
	if err != nil {
		return "", err
	}
	log.Printf("[assistant][usecase] topic answered sub=%s", actor.Sub)
	return answer, nil
}
