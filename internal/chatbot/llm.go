package chatbot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"health-screen/internal/config"
	"health-screen/internal/domain"
	"health-screen/internal/logger"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("chatbot: empty model response")

// NewModel builds the langchaingo client for the configured provider.
func NewModel(cfg config.LLMConfig) (llms.Model, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case config.ProviderOllama:
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return llm, nil
	case config.ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai API key cannot be empty")
		}
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(httpClient),
		}
		if cfg.ServerURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// LLMResponder sends the conversation to a language model.
type LLMResponder struct {
	model       llms.Model
	temperature float64
	maxTokens   int
}

// NewLLMResponder wraps model with the sampling settings from cfg.
func NewLLMResponder(model llms.Model, cfg config.LLMConfig) *LLMResponder {
	return &LLMResponder{
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Reply sends the system prompt, the last HistoryWindow turns and message.
func (r *LLMResponder) Reply(ctx context.Context, message string, history []domain.ChatTurn) (string, error) {
	resp, err := r.model.GenerateContent(ctx, BuildMessages(message, history),
		llms.WithTemperature(r.temperature),
		llms.WithMaxTokens(r.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := stripThinking(resp.Choices[0].Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	logger.Get().Debug("LLM reply received", zap.Int("length", len(text)))
	return text, nil
}

// BuildMessages assembles the model input for one reply.
func BuildMessages(message string, history []domain.ChatTurn) []llms.MessageContent {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, SystemPrompt))
	for _, turn := range history {
		role := llms.ChatMessageTypeHuman
		if turn.Role == domain.ChatRoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, turn.Content))
	}
	return append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))
}

// stripThinking removes a <think>...</think> block some local models emit.
func stripThinking(s string) string {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "<think>")
	end := strings.Index(s, "</think>")
	if start != -1 && end > start {
		s = s[:start] + s[end+len("</think>"):]
	}
	return strings.TrimSpace(s)
}
