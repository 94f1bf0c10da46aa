package service

import (
	"context"

	"go.uber.org/zap"

	"health-screen/internal/chatbot"
	"health-screen/internal/config"
	"health-screen/internal/domain"
	"health-screen/internal/logger"
	"health-screen/internal/metrics"
)

// Responder produces a model reply for a conversation.
type Responder interface {
	Reply(ctx context.Context, message string, history []domain.ChatTurn) (string, error)
}

// ChatService answers health questions. It prefers the language model and
// falls back to the keyword table when the model is disabled or fails.
type ChatService interface {
	Reply(ctx context.Context, message string, history []domain.ChatTurn) (*domain.ChatReply, error)
	Status() domain.ChatStatus
}

type chatServiceImpl struct {
	llm       Responder
	rules     chatbot.RuleBased
	llmConfig config.LLMConfig
	metrics   *metrics.Metrics
}

// NewChatService creates a chat service. llm may be nil, in which case every
// message is answered by the rule-based responder.
func NewChatService(llm Responder, llmConfig config.LLMConfig, m *metrics.Metrics) ChatService {
	return &chatServiceImpl{
		llm:       llm,
		llmConfig: llmConfig,
		metrics:   m,
	}
}

func (s *chatServiceImpl) Reply(ctx context.Context, message string, history []domain.ChatTurn) (*domain.ChatReply, error) {
	if s.llm != nil {
		text, err := s.llm.Reply(ctx, message, history)
		if err == nil {
			s.metrics.ObserveChatReply(domain.ChatModeLLM)
			return &domain.ChatReply{Response: text, Mode: domain.ChatModeLLM}, nil
		}
		logger.Get().Warn("LLM reply failed, using rule-based answer",
			zap.Error(err),
			zap.String("provider", s.llmConfig.Provider))
	}

	s.metrics.ObserveChatReply(domain.ChatModeRuleBased)
	return &domain.ChatReply{Response: s.rules.Reply(message), Mode: domain.ChatModeRuleBased}, nil
}

func (s *chatServiceImpl) Status() domain.ChatStatus {
	if s.llm == nil {
		return domain.ChatStatus{Mode: domain.ChatModeRuleBased}
	}
	return domain.ChatStatus{
		Mode:     domain.ChatModeLLM,
		Provider: s.llmConfig.Provider,
		Model:    s.llmConfig.Model,
	}
}
