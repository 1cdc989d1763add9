package chat

import "strings"

// Role tags a Turn for the model provider.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a role-tagged entry of the conversation history sent to the resolver.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Valid reports whether the turn has a known role and non-blank content.
func (t Turn) Valid() bool {
	if t.Role != RoleUser && t.Role != RoleAssistant {
		return false
	}
	return strings.TrimSpace(t.Content) != ""
}

// LastTurns returns at most limit of the most recent turns, skipping invalid ones.
// The returned slice never aliases the input.
func LastTurns(turns []Turn, limit int) []Turn {
	if limit <= 0 || len(turns) == 0 {
		return nil
	}

	valid := make([]Turn, 0, len(turns))
	for _, t := range turns {
		if t.Valid() {
			valid = append(valid, t)
		}
	}

	start := 0
	if len(valid) > limit {
		start = len(valid) - limit
	}
	return append([]Turn(nil), valid[start:]...)
}
