package assistant

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn. Values are never modified after
// construction.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// WithSystemPrompt returns history guaranteed to start with exactly one
// system message. An empty history or one whose first message is not a
// system message gets prompt prepended; a history that already leads with a
// system message is returned as is, so callers supplying their own prompt
// keep it. The input slice is never modified. The operation is idempotent.
func WithSystemPrompt(history []Message, prompt string) []Message {
	if len(history) > 0 && history[0].Role == RoleSystem {
		return history
	}

	normalized := make([]Message, 0, len(history)+1)
	normalized = append(normalized, Message{Role: RoleSystem, Content: prompt})
	normalized = append(normalized, history...)
	return normalized
}
