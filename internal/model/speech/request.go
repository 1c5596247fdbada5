package speech

// TTSRequest asks the provider to narrate a piece of text.
type TTSRequest struct {
	Text   string  `json:"text"`
	Voice  string  `json:"voice,omitempty"`
	Speed  float32 `json:"speed,omitempty"`
	Format string  `json:"format,omitempty"`
}
