package chat

import (
	"context"
	"fmt"
	"log"

	"github.com/artem13815/stockchat/pkg/llm"
)

// Reply is the outcome of a chat request. Exactly one of Events and Text is
// populated: Events on the live streaming path, Text when the model call
// failed and the deterministic fallback answered instead.
type Reply struct {
	Events   <-chan StreamEvent
	Text     string
	Degraded bool
}

// UseCase runs the request pipeline: validate, retrieve, assemble, stream.
// Respond serves the streaming deployment mode, RespondBuffered the
// non-streaming one; both degrade to the fallback text when the model call
// fails after retrieval succeeded.
type UseCase interface {
	Respond(ctx context.Context, msgs []Message) (Reply, error)
	RespondBuffered(ctx context.Context, msgs []Message) (Reply, error)
}

type service struct {
	retriever *Retriever
	model     llm.StreamingChatModel
}

func NewService(retriever *Retriever, model llm.StreamingChatModel) UseCase {
	return &service{retriever: retriever, model: model}
}

func (s *service) Respond(ctx context.Context, msgs []Message) (Reply, error) {
	if err := ValidateMessages(msgs); err != nil {
		return Reply{}, err
	}
	items, err := s.retriever.Retrieve(ctx, msgs)
	if err != nil {
		// No fallback here: the fallback answer is built from these results.
		return Reply{}, fmt.Errorf("retrieve items: %w", err)
	}
	prompt := AssemblePrompt(msgs, items)

	deltas, err := s.model.Stream(ctx, prompt)
	if err != nil {
		log.Printf("chat: model call failed, serving fallback: %v", err)
		return Reply{Text: FormatFallback(items), Degraded: true}, nil
	}

	events := make(chan StreamEvent)
	go func() {
		defer close(events)
		for d := range deltas {
			select {
			case events <- StreamEvent{Text: d.Text, Done: d.Done, Err: d.Err}:
			case <-ctx.Done():
				return
			}
			if d.Done || d.Err != nil {
				return
			}
		}
	}()
	return Reply{Events: events}, nil
}

func (s *service) RespondBuffered(ctx context.Context, msgs []Message) (Reply, error) {
	if err := ValidateMessages(msgs); err != nil {
		return Reply{}, err
	}
	items, err := s.retriever.Retrieve(ctx, msgs)
	if err != nil {
		return Reply{}, fmt.Errorf("retrieve items: %w", err)
	}
	prompt := AssemblePrompt(msgs, items)

	answer, err := s.model.Ask(ctx, prompt)
	if err != nil {
		log.Printf("chat: model call failed, serving fallback: %v", err)
		return Reply{Text: FormatFallback(items), Degraded: true}, nil
	}
	return Reply{Text: answer}, nil
}
