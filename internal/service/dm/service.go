package dm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AbonDev/realm-of-legends/internal/model/chat"
	"github.com/AbonDev/realm-of-legends/internal/service/ai"
	"github.com/AbonDev/realm-of-legends/internal/session"
)

var (
	ErrInvalidRequest = errors.New("message and session id are required")
	ErrUpstream       = errors.New("narrator provider failed")
	ErrUnavailable    = errors.New("narrator not configured")
)

// Narrator produces the next assistant reply for a fully ordered prompt.
type Narrator interface {
	Generate(ctx context.Context, turns []chat.Turn) (string, error)
}

// Service orchestrates one Dungeon Master exchange: load the transcript,
// call the narrator with the full history, record the user/assistant pair.
type Service struct {
	narrator Narrator
	store    *session.Store
	timeout  time.Duration
}

// NewService wires the orchestrator. timeout bounds each outbound narrator
// call; zero means no deadline.
func NewService(narrator Narrator, store *session.Store, timeout time.Duration) *Service {
	return &Service{
		narrator: narrator,
		store:    store,
		timeout:  timeout,
	}
}

// Prompt validates the request, loads the stored transcript and assembles
// the outbound message list: system turn, stored turns in order, new user
// turn. The full history is replayed on every call; there is no windowing.
func (s *Service) Prompt(ctx context.Context, sessionID, message string) ([]chat.Turn, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(message) == "" {
		return nil, ErrInvalidRequest
	}

	history, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		return nil, err
	}

	prompt := make([]chat.Turn, 0, len(history)+2)
	prompt = append(prompt, chat.Turn{Role: chat.RoleSystem, Content: ai.SystemPrompt})
	prompt = append(prompt, history...)
	prompt = append(prompt, chat.Turn{Role: chat.RoleUser, Content: message})
	return prompt, nil
}

// Ask produces the narrator's reply to one user utterance and durably
// records the exchange. A provider failure persists nothing, so the
// transcript keeps its strict user/assistant alternation.
func (s *Service) Ask(ctx context.Context, sessionID, message string) (string, error) {
	prompt, err := s.Prompt(ctx, sessionID, message)
	if err != nil {
		return "", err
	}
	if s.narrator == nil {
		return "", ErrUnavailable
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.narrator.Generate(callCtx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.RecordExchange(ctx, sessionID, message, reply)
	return reply, nil
}

// RecordExchange appends the user turn then the assistant turn. The reply
// already exists by the time this runs, so a persistence failure is logged
// and accepted as transcript drift rather than surfaced to the player.
func (s *Service) RecordExchange(ctx context.Context, sessionID, message, reply string) {
	if err := s.store.Append(ctx, sessionID, chat.Turn{Role: chat.RoleUser, Content: message}); err != nil {
		log.Printf("[dm] failed to record player turn for session=%s: %v", sessionID, err)
		return
	}
	if err := s.store.Append(ctx, sessionID, chat.Turn{Role: chat.RoleAssistant, Content: reply}); err != nil {
		log.Printf("[dm] failed to record narrator turn for session=%s: %v", sessionID, err)
	}
}

// History returns the stored transcript, without the synthetic system turn
// (which is never persisted).
func (s *Service) History(ctx context.Context, sessionID string) ([]chat.Turn, error) {
	turns, err := s.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		return nil, err
	}
	return turns, nil
}
