package speech

// SpeechConfig holds the TTS provider settings.
type SpeechConfig struct {
	APIKey  string  `json:"-"`
	BaseURL string  `json:"baseUrl"`
	Model   string  `json:"model"`
	Voice   string  `json:"voice"`
	Speed   float32 `json:"speed"`   // playback speed multiplier 0.5-2.0
	Format  string  `json:"format"`  // mp3, wav, etc.
	Timeout int     `json:"timeout"` // seconds
}
