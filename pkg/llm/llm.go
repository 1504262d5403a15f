package llm

import "context"

// Message roles accepted on the chat completions wire.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged block of a chat completion prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Delta is one unit of a streamed completion: a text fragment, the terminal
// marker (Done), or a mid-stream failure (Err). A successful stream is zero
// or more text deltas followed by exactly one Done.
type Delta struct {
	Text string
	Done bool
	Err  error
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, msgs []Message) (string, error)
}

// StreamingChatModel produces the completion incrementally. Stream returns an
// error if the call cannot be established (auth, rate limit, network); in
// that case no channel has been handed out and nothing was emitted. Once a
// channel is returned, failures surface as a Delta with Err set, after which
// the channel is closed. The channel is single-consumer and not restartable.
type StreamingChatModel interface {
	ChatModel
	Stream(ctx context.Context, msgs []Message) (<-chan Delta, error)
}
