package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	characterHandler "github.com/AbonDev/realm-of-legends/internal/handler/character"
	"github.com/AbonDev/realm-of-legends/internal/handler/game"
	speechHandler "github.com/AbonDev/realm-of-legends/internal/handler/speech"
	middlewarePkg "github.com/AbonDev/realm-of-legends/internal/middleware"
	characterModel "github.com/AbonDev/realm-of-legends/internal/model/character"
	"github.com/AbonDev/realm-of-legends/internal/service/dm"
	"github.com/AbonDev/realm-of-legends/pkg/utils"
)

// NewRouter wires HTTP routes to core services. streamHandler and tts are
// nil when the matching provider credentials are absent; their routes then
// answer 503 instead of disappearing.
func NewRouter(dmSvc *dm.Service, streamHandler *game.StreamHandler, tts speechHandler.Synthesizer, characters characterModel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	gameHandler := game.New(dmSvc)
	charHandler := characterHandler.New(characters)

	r.Route("/api", func(api chi.Router) {
		gameHandler.RegisterRoutes(api)
		charHandler.RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			userMessage := r.URL.Query().Get("message")

			if streamHandler == nil {
				utils.RespondError(w, http.StatusServiceUnavailable, "ai streaming unavailable")
				return
			}
			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
				// Invalid requests are rejected before any SSE bytes go
				// out, so a plain error response is still possible here.
				if errors.Is(err, dm.ErrInvalidRequest) {
					utils.RespondError(w, http.StatusBadRequest, err.Error())
					return
				}
				log.Printf("[stream] error handling request: %v", err)
			}
		})

		if tts != nil {
			speechHandler.New(tts).RegisterRoutes(api)
		} else {
			api.Post("/tts", func(w http.ResponseWriter, _ *http.Request) {
				utils.RespondError(w, http.StatusServiceUnavailable, "speech synthesis unavailable")
			})
		}

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
		})
	})

	return r
}
