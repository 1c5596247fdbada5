package character

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AbonDev/realm-of-legends/internal/model/character"
	"github.com/AbonDev/realm-of-legends/internal/model/gamedata"
	"github.com/AbonDev/realm-of-legends/pkg/utils"
)

// Handler serves character records and the static creation catalogs.
type Handler struct {
	store character.Store
}

// New creates the character handler.
func New(store character.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the character and game-data routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/characters", func(cr chi.Router) {
		cr.Get("/", h.handleList)
		cr.Post("/", h.handleCreate)
		cr.Get("/{characterID}", h.handleGet)
		cr.Put("/{characterID}", h.handleUpdate)
		cr.Delete("/{characterID}", h.handleDelete)
	})

	r.Route("/game-data", func(gr chi.Router) {
		gr.Get("/races", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, gamedata.Races())
		})
		gr.Get("/classes", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, gamedata.Classes())
		})
		gr.Get("/backgrounds", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, gamedata.Backgrounds())
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	characters, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("[character] list failed: %v", err)
		utils.RespondFailure(w, http.StatusInternalServerError, "Failed to get characters", err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, characters)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload character.Character
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Name == "" || payload.Race == "" || payload.Class == "" {
		utils.RespondError(w, http.StatusBadRequest, "name, race and class are required")
		return
	}

	saved, err := h.store.Create(r.Context(), payload)
	if err != nil {
		log.Printf("[character] create failed: %v", err)
		utils.RespondFailure(w, http.StatusInternalServerError, "Failed to create character", err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, saved)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "characterID")

	found, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, character.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "character not found")
			return
		}
		log.Printf("[character] get failed: %v", err)
		utils.RespondFailure(w, http.StatusInternalServerError, "Failed to get character", err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, found)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "characterID")

	var payload character.Character
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.store.Update(r.Context(), id, payload)
	if err != nil {
		if errors.Is(err, character.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "character not found")
			return
		}
		log.Printf("[character] update failed: %v", err)
		utils.RespondFailure(w, http.StatusInternalServerError, "Failed to update character", err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "characterID")

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, character.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "character not found")
			return
		}
		log.Printf("[character] delete failed: %v", err)
		utils.RespondFailure(w, http.StatusInternalServerError, "Failed to delete character", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
