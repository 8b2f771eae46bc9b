package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"kyndly_ichra/internal/usecase/interfaces"
)

var ErrMissingAPIKey = errors.New("missing OpenAI API key")

const (
	defaultChatCompletionsURL = "https://api.openai.com/v1/chat/completions"
	defaultModel              = "gpt-4o"

	chatRequestTimeout = 30 * time.Second
	chatTemperature    = 0.7
	chatMaxTokens      = 800
)

// systemPrompt pins the assistant to the ICHRA knowledge-center persona.
const systemPrompt = `You are an expert AI assistant specializing in Individual Coverage Health Reimbursement Arrangements (ICHRA).
Your name is Kyndly Assistant, and you work for Kyndly Health, a company that helps employers implement ICHRA plans.

Key areas of your expertise include:
- ICHRA regulations and compliance requirements
- How ICHRAs compare to traditional group health insurance
- Implementation strategies for employers of different sizes
- Cost considerations and potential savings
- Employee education and onboarding
- Common questions and misconceptions about ICHRAs

When responding:
- Be accurate and up-to-date with health insurance regulations
- Provide practical, actionable information
- Explain complex topics in simple terms
- Focus on the benefits of ICHRAs while acknowledging limitations
- Reference specific regulations when relevant (ACA, IRS rules, etc.)
- When you don't know something, acknowledge it rather than providing incorrect information

Maintain a professional, helpful tone while making complex insurance concepts accessible.`

// OpenAIClient calls the OpenAI chat completions API with the knowledge
// center system prompt prepended to every conversation.
type OpenAIClient struct {
	apiKey string
	model  string
	url    string
	client *http.Client
}

var _ interfaces.IAssistant = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAIClient{
		apiKey: apiKey,
		model:  model,
		url:    defaultChatCompletionsURL,
		client: &http.Client{Timeout: chatRequestTimeout},
	}, nil
}

type chatCompletionRequest struct {
	Model       string                   `json:"model"`
	Messages    []interfaces.ChatMessage `json:"messages"`
	Temperature float64                  `json:"temperature"`
	MaxTokens   int                      `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message interfaces.ChatMessage `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIClient) Chat(ctx context.Context, message string, history []interfaces.ChatMessage) (string, error) {
	messages := make([]interfaces.ChatMessage, 0, len(history)+2)
	messages = append(messages, interfaces.ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, interfaces.ChatMessage{Role: interfaces.ChatRoleUser, Content: message})

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("post chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain enough of the body to log the provider's error shape.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[assistant][openai] api error status=%d body=%s", resp.StatusCode, snippet)
		return "", fmt.Errorf("chat completions returned status %d", resp.StatusCode)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat completions returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
