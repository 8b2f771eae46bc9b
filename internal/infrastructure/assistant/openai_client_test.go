package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kyndly_ichra/internal/usecase/interfaces"
)

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIClient("", ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestOpenAIClient_Chat(t *testing.T) {
	var got chatCompletionRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "An ICHRA reimburses individual premiums."}},
			},
		})
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("sk-test", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.url = srv.URL

	history := []interfaces.ChatMessage{
		{Role: interfaces.ChatRoleUser, Content: "Hi"},
		{Role: interfaces.ChatRoleAssistant, Content: "Hello!"},
	}
	answer, err := c.Chat(context.Background(), "What is an ICHRA?", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "An ICHRA reimburses individual premiums." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
	if got.Model != "gpt-4o" {
		t.Fatalf("expected default model, got %q", got.Model)
	}
	// system prompt + two history turns + the new user message
	if len(got.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" {
		t.Fatalf("first message must be the system prompt, got role %q", got.Messages[0].Role)
	}
	last := got.Messages[3]
	if last.Role != interfaces.ChatRoleUser || last.Content != "What is an ICHRA?" {
		t.Fatalf("last message must be the user turn: %+v", last)
	}
}

func TestOpenAIClient_Chat_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("sk-test", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.url = srv.URL

	if _, err := c.Chat(context.Background(), "hello", nil); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestOpenAIClient_Chat_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("sk-test", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.url = srv.URL

	if _, err := c.Chat(context.Background(), "hello", nil); err == nil {
		t.Fatal("expected error on empty choices")
	}
}
