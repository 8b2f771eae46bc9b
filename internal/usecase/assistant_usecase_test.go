package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kyndly_ichra/internal/usecase/interfaces"
	mock_interfaces "kyndly_ichra/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssistantUseCase_Chat(t *testing.T) {
	t.Run("unconfigured assistant", func(t *testing.T) {
		uc := NewAssistantUseCase(nil)
		_, err := uc.Chat(context.Background(), tpaActor("tpa-1"), "What is an ICHRA?", nil)
		if !errors.Is(err, ErrAssistantNotConfigured) {
			t.Fatalf("expected ErrAssistantNotConfigured, got %v", err)
		}
	})

	t.Run("message is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAssistantUseCase(mock_interfaces.NewMockIAssistant(ctrl))

		_, err := uc.Chat(context.Background(), tpaActor("tpa-1"), "   ", nil)
		if !errors.Is(err, ErrMissingChatMessage) {
			t.Fatalf("expected ErrMissingChatMessage, got %v", err)
		}
	})

	t.Run("malformed history entry rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAssistantUseCase(mock_interfaces.NewMockIAssistant(ctrl))

		history := []interfaces.ChatMessage{{Role: "", Content: "orphaned"}}
		_, err := uc.Chat(context.Background(), tpaActor("tpa-1"), "hello", history)
		if !errors.Is(err, ErrInvalidChatHistory) {
			t.Fatalf("expected ErrInvalidChatHistory, got %v", err)
		}
	})

	t.Run("reply extends the conversation history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mock_interfaces.NewMockIAssistant(ctrl)
		uc := NewAssistantUseCase(assistant)

		history := []interfaces.ChatMessage{
			{Role: interfaces.ChatRoleUser, Content: "What is an ICHRA?"},
			{Role: interfaces.ChatRoleAssistant, Content: "A health reimbursement arrangement."},
		}
		assistant.EXPECT().Chat(gomock.Any(), "Who qualifies?", history).
			Return("Any W-2 employee in a covered class.", nil)

		reply, err := uc.Chat(context.Background(), tpaActor("tpa-1"), "Who qualifies?", history)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Response != "Any W-2 employee in a covered class." {
			t.Fatalf("unexpected response: %q", reply.Response)
		}
		if len(reply.ConversationHistory) != 4 {
			t.Fatalf("expected 4 history turns, got %d", len(reply.ConversationHistory))
		}
		last := reply.ConversationHistory[3]
		if last.Role != interfaces.ChatRoleAssistant || last.Content != reply.Response {
			t.Fatalf("history does not end with the assistant reply: %+v", last)
		}
		if reply.ConversationHistory[2].Role != interfaces.ChatRoleUser || reply.ConversationHistory[2].Content != "Who qualifies?" {
			t.Fatalf("history missing the user turn: %+v", reply.ConversationHistory[2])
		}
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mock_interfaces.NewMockIAssistant(ctrl)
		uc := NewAssistantUseCase(assistant)

		assistant.EXPECT().Chat(gomock.Any(), "hello", gomock.Any()).
			Return("", errors.New("rate limited"))

		if _, err := uc.Chat(context.Background(), tpaActor("tpa-1"), "hello", nil); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAssistantUseCase_TopicInfo(t *testing.T) {
	t.Run("query is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAssistantUseCase(mock_interfaces.NewMockIAssistant(ctrl))

		_, err := uc.TopicInfo(context.Background(), tpaActor("tpa-1"), "")
		if !errors.Is(err, ErrMissingTopicQuery) {
			t.Fatalf("expected ErrMissingTopicQuery, got %v", err)
		}
	})

	t.Run("query is wrapped into a focused prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mock_interfaces.NewMockIAssistant(ctrl)
		uc := NewAssistantUseCase(assistant)

		var prompt string
		assistant.EXPECT().Chat(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, message string, _ []interfaces.ChatMessage) (string, error) {
				prompt = message
				return "Affordability is tested against the lowest-cost silver plan.", nil
			})

		info, err := uc.TopicInfo(context.Background(), adminActor(), "affordability rules")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info == "" {
			t.Fatal("expected a response")
		}
		if !strings.Contains(prompt, "affordability rules") {
			t.Fatalf("prompt does not carry the query: %q", prompt)
		}
	})
}
