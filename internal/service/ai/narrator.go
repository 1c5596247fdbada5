package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/AbonDev/realm-of-legends/internal/config"
	"github.com/AbonDev/realm-of-legends/internal/model/chat"
)

// Service drives the narrator language model. It receives the fully ordered
// prompt (system turn, stored history, new user turn) and never reorders or
// trims it; the reply length ceiling comes from the model configuration.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
}

// NewService builds the configured chat model and wraps it.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewServiceWithModel(chatModel, cfg), nil
}

// NewServiceWithModel wraps an existing chat model. Used by tests and by
// callers that share one model across services.
func NewServiceWithModel(chatModel model.ChatModel, cfg config.AIConfig) *Service {
	return &Service{chatModel: chatModel, cfg: cfg}
}

// StreamingEnabled reports whether SSE streaming replies are switched on.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// Generate produces one complete narrator reply for the given prompt.
func (s *Service) Generate(ctx context.Context, turns []chat.Turn) (string, error) {
	response, err := s.chatModel.Generate(ctx, toSchemaMessages(turns))
	if err != nil {
		return "", fmt.Errorf("failed to run narrator model: %w", err)
	}

	log.Printf("[ai] generated reply, prompt=%d turns, length=%d", len(turns), len(response.Content))
	return response.Content, nil
}

// Stream returns the narrator reply as a chunk stream.
func (s *Service) Stream(ctx context.Context, turns []chat.Turn) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	stream, err := s.chatModel.Stream(ctx, toSchemaMessages(turns))
	if err != nil {
		return nil, fmt.Errorf("failed to stream narrator model output: %w", err)
	}
	return stream, nil
}

func toSchemaMessages(turns []chat.Turn) []*schema.Message {
	messages := make([]*schema.Message, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case chat.RoleSystem:
			messages = append(messages, schema.SystemMessage(turn.Content))
		case chat.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		default:
			messages = append(messages, schema.UserMessage(turn.Content))
		}
	}
	return messages
}
