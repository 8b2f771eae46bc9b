package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kyndly_ichra/internal/adapter/http/handlers/mocks"
	"kyndly_ichra/internal/adapter/http/middleware"
	"kyndly_ichra/internal/domain/auth"
	"kyndly_ichra/internal/usecase"
	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func assistantRouter(h *AssistantHandler, actor *auth.Actor) *gin.Engine {
	r := gin.New()
	if actor != nil {
		a := *actor
		r.Use(func(c *gin.Context) {
			middleware.SetActor(c, a)
			c.Next()
		})
	}
	r.POST("/v1/ai/chat", h.Chat)
	r.POST("/v1/ai/ichra-info", h.TopicInfo)
	return r
}

func TestAssistantHandler_Chat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAssistantHandler(mocks.NewMockIAssistantUseCase(ctrl))

		r := assistantRouter(h, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/ai/chat", bytes.NewBufferString(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing message rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAssistantHandler(mocks.NewMockIAssistantUseCase(ctrl))

		actor := testActor()
		r := assistantRouter(h, &actor)
		req := httptest.NewRequest(http.MethodPost, "/v1/ai/chat", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unconfigured assistant maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		uc.EXPECT().Chat(gomock.Any(), gomock.Any(), "hi", gomock.Any()).
			Return(usecase.AssistantReply{}, usecase.ErrAssistantNotConfigured)

		actor := testActor()
		r := assistantRouter(h, &actor)
		req := httptest.NewRequest(http.MethodPost, "/v1/ai/chat", bytes.NewBufferString(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "ASSISTANT_UNAVAILABLE") {
			t.Fatalf("expected ASSISTANT_UNAVAILABLE code, got %s", w.Body.String())
		}
	})

	t.Run("reply carries the extended history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		history := []interfaces.ChatMessage{{Role: interfaces.ChatRoleUser, Content: "earlier"}}
		uc.EXPECT().Chat(gomock.Any(), gomock.Any(), "What is an ICHRA?", history).
			Return(usecase.AssistantReply{
				Response: "A reimbursement arrangement.",
				ConversationHistory: append(history,
					interfaces.ChatMessage{Role: interfaces.ChatRoleUser, Content: "What is an ICHRA?"},
					interfaces.ChatMessage{Role: interfaces.ChatRoleAssistant, Content: "A reimbursement arrangement."},
				),
			}, nil)

		actor := testActor()
		r := assistantRouter(h, &actor)
		body := `{"message":"What is an ICHRA?","conversationHistory":[{"role":"user","content":"earlier"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/ai/chat", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Response            string                   `json:"response"`
			ConversationHistory []interfaces.ChatMessage `json:"conversationHistory"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Response != "A reimbursement arrangement." {
			t.Fatalf("unexpected response: %q", resp.Response)
		}
		if len(resp.ConversationHistory) != 3 {
			t.Fatalf("expected 3 history turns, got %d", len(resp.ConversationHistory))
		}
	})
}

func TestAssistantHandler_TopicInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		uc.EXPECT().TopicInfo(gomock.Any(), gomock.Any(), "affordability").
			Return("Tested against the lowest-cost silver plan.", nil)

		actor := testActor()
		r := assistantRouter(h, &actor)
		req := httptest.NewRequest(http.MethodPost, "/v1/ai/ichra-info", bytes.NewBufferString(`{"query":"affordability"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "lowest-cost silver plan") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
