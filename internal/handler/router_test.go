package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/AbonDev/realm-of-legends/internal/handler/game"
	characterModel "github.com/AbonDev/realm-of-legends/internal/model/character"
	"github.com/AbonDev/realm-of-legends/internal/model/chat"
	"github.com/AbonDev/realm-of-legends/internal/service/dm"
	"github.com/AbonDev/realm-of-legends/internal/session"
)

type noStreamer struct{}

func (noStreamer) Stream(context.Context, []chat.Turn) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream must not be reached")
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dmSvc := dm.NewService(nil, session.NewStore(t.TempDir()), 0)
	streamHandler := game.NewStreamHandler(noStreamer{}, dmSvc)
	return NewRouter(dmSvc, streamHandler, nil, characterModel.NewMemoryStore())
}

func TestStreamRouteRejectsInvalidSession(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stream/bad%20id?message=hi", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d with body %q", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "error") {
		t.Fatalf("expected an error body, got %q", resp.Body.String())
	}
}

func TestStreamRouteRequiresMessage(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stream/s1", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
