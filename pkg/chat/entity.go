package chat

import "errors"

// Message roles accepted from callers.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn of a conversation, oldest first. The last element is
// always treated as the current user query for retrieval.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StreamEvent is the wire-level unit of a streamed reply: a text fragment,
// the terminal marker, or an error. A successful stream carries zero or more
// text events followed by exactly one terminal event.
type StreamEvent struct {
	Text string
	Done bool
	Err  error
}

var (
	// ErrEmptyConversation: the caller sent no messages, there is nothing
	// to retrieve against.
	ErrEmptyConversation = errors.New("messages must not be empty")
	// ErrInvalidRole: a message carried a role outside user/assistant/system.
	ErrInvalidRole = errors.New("message role must be user, assistant or system")
)

// ValidateMessages rejects malformed conversations at ingress so ambiguity
// never propagates into the pipeline.
func ValidateMessages(msgs []Message) error {
	if len(msgs) == 0 {
		return ErrEmptyConversation
	}
	for _, m := range msgs {
		switch m.Role {
		case RoleUser, RoleAssistant, RoleSystem:
		default:
			return ErrInvalidRole
		}
	}
	return nil
}
