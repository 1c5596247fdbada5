package speech_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	speechmodel "github.com/AbonDev/realm-of-legends/internal/model/speech"
	"github.com/AbonDev/realm-of-legends/internal/service/speech"
)

func TestSynthesizePassesAudioThrough(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload err: %v", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	client := speech.NewClient(&speechmodel.SpeechConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "tts-1",
		Voice:   "onyx",
		Format:  "mp3",
	})

	resp, err := client.Synthesize(context.Background(), &speechmodel.TTSRequest{Text: "Welcome, adventurer"})
	if err != nil {
		t.Fatalf("Synthesize err: %v", err)
	}
	if string(resp.AudioData) != "mp3-bytes" {
		t.Fatalf("audio payload modified: %q", resp.AudioData)
	}
	if resp.ContentType != "audio/mpeg" {
		t.Fatalf("unexpected content type: %s", resp.ContentType)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotPayload["input"] != "Welcome, adventurer" || gotPayload["voice"] != "onyx" {
		t.Fatalf("unexpected outbound payload: %v", gotPayload)
	}
}

func TestSynthesizeProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := speech.NewClient(&speechmodel.SpeechConfig{APIKey: "k", BaseURL: server.URL, Model: "tts-1"})

	_, err := client.Synthesize(context.Background(), &speechmodel.TTSRequest{Text: "hello"})
	if !errors.Is(err, speech.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestSynthesizeRequiresText(t *testing.T) {
	client := speech.NewClient(&speechmodel.SpeechConfig{APIKey: "k", BaseURL: "http://localhost", Model: "tts-1"})

	if _, err := client.Synthesize(context.Background(), &speechmodel.TTSRequest{Text: "  "}); err == nil {
		t.Fatal("expected error for empty text")
	}
}
