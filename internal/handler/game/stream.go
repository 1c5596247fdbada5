package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/AbonDev/realm-of-legends/internal/model/chat"
	"github.com/AbonDev/realm-of-legends/internal/service/dm"
	"github.com/AbonDev/realm-of-legends/pkg/utils"
)

// Streamer produces narrator replies as a chunk stream.
type Streamer interface {
	Stream(ctx context.Context, turns []chat.Turn) (*schema.StreamReader[*schema.Message], error)
}

// Prompter assembles prompts and records completed exchanges; implemented
// by the dm service.
type Prompter interface {
	Prompt(ctx context.Context, sessionID, message string) ([]chat.Turn, error)
	RecordExchange(ctx context.Context, sessionID, message, reply string)
}

// StreamHandler streams narrator replies over Server-Sent Events.
type StreamHandler struct {
	streamer Streamer
	prompter Prompter
}

// NewStreamHandler creates the SSE handler.
func NewStreamHandler(streamer Streamer, prompter Prompter) *StreamHandler {
	return &StreamHandler{streamer: streamer, prompter: prompter}
}

// StreamResponse is one SSE chunk sent to the client.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStreamRequest streams the reply for one user utterance. The
// user/narrator pair is recorded only after the stream completes, so an
// aborted or failed stream persists nothing.
func (h *StreamHandler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, message string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	prompt, err := h.prompter.Prompt(ctx, sessionID, message)
	if err != nil {
		if errors.Is(err, dm.ErrInvalidRequest) {
			return err
		}
		utils.SetupSSEHeaders(w)
		h.sendError(w, flusher, sessionID, "failed to load session")
		return err
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEChunk(w, flusher, StreamResponse{Event: "start", SessionID: sessionID})

	stream, err := h.streamer.Stream(ctx, prompt)
	if err != nil {
		h.sendError(w, flusher, sessionID, "narrator stream failed")
		return err
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			h.sendError(w, flusher, sessionID, "narrator stream interrupted")
			return err
		}
		if msg.Content == "" {
			continue
		}
		reply.WriteString(msg.Content)
		utils.SendSSEChunk(w, flusher, StreamResponse{
			Event:     "chunk",
			SessionID: sessionID,
			Content:   msg.Content,
		})
	}

	// A stream that produced no content would record an empty narrator
	// turn; treat it as a provider failure instead.
	if reply.Len() == 0 {
		h.sendError(w, flusher, sessionID, "narrator returned no content")
		return fmt.Errorf("narrator stream produced no content")
	}

	h.prompter.RecordExchange(ctx, sessionID, message, reply.String())

	utils.SendSSEChunk(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: sessionID,
		Finished:  true,
	})
	return nil
}

func (h *StreamHandler) sendError(w http.ResponseWriter, flusher http.Flusher, sessionID, message string) {
	utils.SendSSEChunk(w, flusher, StreamResponse{
		Event:     "error",
		SessionID: sessionID,
		Error:     message,
	})
}
