package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	speechmodel "github.com/AbonDev/realm-of-legends/internal/model/speech"
)

type fakeSynthesizer struct {
	gotText string
	err     error
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req *speechmodel.TTSRequest) (*speechmodel.TTSResponse, error) {
	f.gotText = req.Text
	if f.err != nil {
		return nil, f.err
	}
	return &speechmodel.TTSResponse{AudioData: []byte("mp3-bytes"), ContentType: "audio/mpeg"}, nil
}

func setupRouter(fake *fakeSynthesizer) *chi.Mux {
	r := chi.NewRouter()
	New(fake).RegisterRoutes(r)
	return r
}

func TestSynthesizeReturnsAudio(t *testing.T) {
	fake := &fakeSynthesizer{}
	r := setupRouter(fake)

	payload, _ := json.Marshal(map[string]string{"text": "Welcome, adventurer"})
	req := httptest.NewRequest(http.MethodPost, "/tts", bytes.NewReader(payload))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Type") != "audio/mpeg" {
		t.Fatalf("unexpected content type: %s", resp.Header().Get("Content-Type"))
	}
	if resp.Body.String() != "mp3-bytes" {
		t.Fatalf("audio payload modified: %q", resp.Body.String())
	}
	if fake.gotText != "Welcome, adventurer" {
		t.Fatalf("unexpected text forwarded: %q", fake.gotText)
	}
}

func TestSynthesizeMissingText(t *testing.T) {
	r := setupRouter(&fakeSynthesizer{})

	req := httptest.NewRequest(http.MethodPost, "/tts", bytes.NewReader([]byte(`{}`)))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	r := setupRouter(&fakeSynthesizer{err: errors.New("provider down")})

	payload, _ := json.Marshal(map[string]string{"text": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/tts", bytes.NewReader(payload))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
