package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AbonDev/realm-of-legends/internal/model/speech"
)

var ErrUpstream = errors.New("speech provider failed")

const defaultTimeoutSeconds = 30

// Client is a stateless pass-through to the TTS provider: one HTTP call per
// request, no retry, no caching, no fallback synthesis.
type Client struct {
	config     *speech.SpeechConfig
	httpClient *http.Client
}

// NewClient builds a TTS client with the configured request timeout.
func NewClient(config *speech.SpeechConfig) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

type synthesizePayload struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	ResponseFormat string  `json:"response_format,omitempty"`
	Speed          float32 `json:"speed,omitempty"`
}

// Synthesize sends the text to the provider's speech endpoint and returns
// the raw audio payload with the provider-declared MIME type.
func (c *Client) Synthesize(ctx context.Context, req *speech.TTSRequest) (*speech.TTSResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("text is required")
	}

	voice := req.Voice
	if voice == "" {
		voice = c.config.Voice
	}
	format := req.Format
	if format == "" {
		format = c.config.Format
	}
	speed := req.Speed
	if speed == 0 {
		speed = c.config.Speed
	}

	payload, err := json.Marshal(synthesizePayload{
		Model:          c.config.Model,
		Input:          req.Text,
		Voice:          voice,
		ResponseFormat: format,
		Speed:          speed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode tts request: %w", err)
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/audio/speech"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build tts request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio body: %v", ErrUpstream, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return &speech.TTSResponse{AudioData: audio, ContentType: contentType}, nil
}
