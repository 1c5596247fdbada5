package game

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AbonDev/realm-of-legends/internal/model/chat"
	"github.com/AbonDev/realm-of-legends/internal/service/dm"
	"github.com/AbonDev/realm-of-legends/pkg/utils"
)

// DungeonMaster abstracts the turn orchestrator so tests can fake it.
type DungeonMaster interface {
	Ask(ctx context.Context, sessionID, message string) (string, error)
	History(ctx context.Context, sessionID string) ([]chat.Turn, error)
}

// Handler serves the Dungeon Master chat endpoints.
type Handler struct {
	dm DungeonMaster
}

// New creates the game handler.
func New(dungeonMaster DungeonMaster) *Handler {
	return &Handler{dm: dungeonMaster}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ask-gpt", h.handleAsk)
	r.Get("/session-history/{sessionID}", h.handleHistory)
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.dm.Ask(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		if errors.Is(err, dm.ErrInvalidRequest) {
			utils.RespondError(w, http.StatusBadRequest, "message and sessionId are required")
			return
		}
		if errors.Is(err, dm.ErrUnavailable) {
			utils.RespondError(w, http.StatusServiceUnavailable, "ai narration unavailable")
			return
		}
		log.Printf("[game] ask failed for session=%s: %v", payload.SessionID, err)
		utils.RespondFailure(w, http.StatusInternalServerError, "Failed to reach the Dungeon Master", err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

type historyMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	turns, err := h.dm.History(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, dm.ErrInvalidRequest) {
			utils.RespondError(w, http.StatusBadRequest, "invalid session id")
			return
		}
		log.Printf("[game] history failed for session=%s: %v", sessionID, err)
		utils.RespondFailure(w, http.StatusInternalServerError, "Failed to load session history", err.Error())
		return
	}

	messages := make([]historyMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, historyMessage{Role: turn.Role.Speaker(), Content: turn.Content})
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
