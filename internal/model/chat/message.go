package chat

// Role tags the author of a turn inside a session transcript.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one immutable message in a transcript. Turns are only ever
// appended, never edited or removed.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Speaker translates the internal role tag into the label the frontend
// renders next to a message.
func (r Role) Speaker() string {
	switch r {
	case RoleUser:
		return "player"
	case RoleAssistant:
		return "narrator"
	default:
		return "system"
	}
}
