package speech

// TTSResponse carries the synthesized audio exactly as the provider
// returned it.
type TTSResponse struct {
	AudioData   []byte `json:"-"`
	ContentType string `json:"contentType"`
}
