package character

import "time"

// Character is one saved hero from the creation wizard.
type Character struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Race       string         `json:"race"`
	Class      string         `json:"class"`
	Background string         `json:"background"`
	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills"`
	Appearance map[string]any `json:"appearance"`
	Equipment  []string       `json:"equipment"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
