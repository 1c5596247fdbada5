package character

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	characterModel "github.com/AbonDev/realm-of-legends/internal/model/character"
)

func setupRouter() (*chi.Mux, *characterModel.MemoryStore) {
	store := characterModel.NewMemoryStore()
	r := chi.NewRouter()
	New(store).RegisterRoutes(r)
	return r, store
}

func TestCreateCharacter(t *testing.T) {
	r, _ := setupRouter()

	payload, _ := json.Marshal(map[string]any{
		"name":  "Kaelen",
		"race":  "elf",
		"class": "ranger",
	})
	req := httptest.NewRequest(http.MethodPost, "/characters/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var created characterModel.Character
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode body err: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
}

func TestCreateCharacterMissingFields(t *testing.T) {
	r, _ := setupRouter()

	payload := []byte(`{"name":"No Class"}`)
	req := httptest.NewRequest(http.MethodPost, "/characters/", bytes.NewReader(payload))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGetCharacterNotFound(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/characters/missing", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDeleteCharacter(t *testing.T) {
	r, store := setupRouter()

	created, err := store.Create(context.Background(), characterModel.Character{
		Name: "Doomed", Race: "human", Class: "warrior",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/characters/"+created.ID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestGameDataCatalogs(t *testing.T) {
	r, _ := setupRouter()

	for _, path := range []string{"/game-data/races", "/game-data/classes", "/game-data/backgrounds"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
		var items []map[string]any
		if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
			t.Fatalf("%s: decode err: %v", path, err)
		}
		if len(items) != 5 {
			t.Fatalf("%s: expected 5 catalog entries, got %d", path, len(items))
		}
	}
}
