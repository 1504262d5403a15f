package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artem13815/stockchat/pkg/item"
	"github.com/artem13815/stockchat/pkg/llm"
	"github.com/artem13815/stockchat/pkg/repository/memory"
)

// stubModel implements llm.StreamingChatModel for testing.
type stubModel struct {
	askReply  string
	askErr    error
	fragments []string
	streamErr error
	midErr    error
	gotPrompt []llm.Message
}

func (m *stubModel) Ask(_ context.Context, msgs []llm.Message) (string, error) {
	m.gotPrompt = msgs
	return m.askReply, m.askErr
}

func (m *stubModel) Stream(_ context.Context, msgs []llm.Message) (<-chan llm.Delta, error) {
	m.gotPrompt = msgs
	if m.streamErr != nil {
		return nil, m.streamErr
	}
	ch := make(chan llm.Delta)
	go func() {
		defer close(ch)
		for _, f := range m.fragments {
			ch <- llm.Delta{Text: f}
		}
		if m.midErr != nil {
			ch <- llm.Delta{Err: m.midErr}
			return
		}
		ch <- llm.Delta{Done: true}
	}()
	return ch, nil
}

func newTestService(model llm.StreamingChatModel) UseCase {
	repo := memory.NewItemRepository(item.SampleItems...)
	return NewService(NewRetriever(repo), model)
}

func TestRespondStreamsFragmentsInOrder(t *testing.T) {
	model := &stubModel{fragments: []string{"We ", "have ", "salmon."}}
	svc := newTestService(model)

	reply, err := svc.Respond(context.Background(), []Message{{Role: RoleUser, Content: "salmon"}})
	require.NoError(t, err)
	require.NotNil(t, reply.Events)
	require.False(t, reply.Degraded)

	var texts []string
	doneSeen := 0
	for ev := range reply.Events {
		require.NoError(t, ev.Err)
		if ev.Done {
			doneSeen++
			continue
		}
		texts = append(texts, ev.Text)
	}
	require.Equal(t, []string{"We ", "have ", "salmon."}, texts)
	require.Equal(t, 1, doneSeen)
}

func TestRespondMidStreamErrorForwarded(t *testing.T) {
	model := &stubModel{fragments: []string{"partial "}, midErr: errors.New("connection reset")}
	svc := newTestService(model)

	reply, err := svc.Respond(context.Background(), []Message{{Role: RoleUser, Content: "salmon"}})
	require.NoError(t, err)

	var events []StreamEvent
	for ev := range reply.Events {
		events = append(events, ev)
	}
	// The fragment already delivered, then the error, then nothing more.
	require.Len(t, events, 2)
	require.Equal(t, "partial ", events[0].Text)
	require.Error(t, events[1].Err)
}

func TestRespondModelFailureFallsBack(t *testing.T) {
	model := &stubModel{streamErr: errors.New("401 invalid api key")}
	svc := newTestService(model)

	reply, err := svc.Respond(context.Background(), []Message{{Role: RoleUser, Content: "salmon"}})
	require.NoError(t, err)
	require.Nil(t, reply.Events)
	require.True(t, reply.Degraded)
	require.Contains(t, reply.Text, "Atlantic Salmon Fillet")
	require.Contains(t, reply.Text, "Code: FISH-001")
	require.NotContains(t, reply.Text, "Ribeye")
}

func TestRespondFallbackNoMatches(t *testing.T) {
	model := &stubModel{streamErr: errors.New("quota exceeded")}
	svc := newTestService(model)

	reply, err := svc.Respond(context.Background(), []Message{{Role: RoleUser, Content: "xyz-nonexistent-term"}})
	require.NoError(t, err)
	require.True(t, reply.Degraded)
	require.Equal(t, "I couldn't find any matching items in our inventory.", reply.Text)
}

func TestRespondEmptyConversationRejected(t *testing.T) {
	model := &stubModel{fragments: []string{"never seen"}}
	svc := newTestService(model)

	_, err := svc.Respond(context.Background(), nil)
	require.ErrorIs(t, err, ErrEmptyConversation)
	// No model call may happen for a rejected request.
	require.Nil(t, model.gotPrompt)
}

func TestRespondRetrievalFailureIsHardError(t *testing.T) {
	model := &stubModel{fragments: []string{"never seen"}}
	svc := NewService(NewRetriever(failingRepo{}), model)

	_, err := svc.Respond(context.Background(), []Message{{Role: RoleUser, Content: "salmon"}})
	require.Error(t, err)
	require.Nil(t, model.gotPrompt)
}

func TestRespondPromptIsGrounded(t *testing.T) {
	model := &stubModel{fragments: []string{"ok"}}
	svc := newTestService(model)

	reply, err := svc.Respond(context.Background(), []Message{{Role: RoleUser, Content: "salmon"}})
	require.NoError(t, err)
	for range reply.Events {
	}
	require.GreaterOrEqual(t, len(model.gotPrompt), 3)
	require.Contains(t, model.gotPrompt[1].Content, "FISH-001")
}

func TestRespondBuffered(t *testing.T) {
	model := &stubModel{askReply: "We stock Atlantic Salmon Fillet (FISH-001)."}
	svc := newTestService(model)

	reply, err := svc.RespondBuffered(context.Background(), []Message{{Role: RoleUser, Content: "salmon"}})
	require.NoError(t, err)
	require.False(t, reply.Degraded)
	require.Equal(t, model.askReply, reply.Text)
}

func TestRespondBufferedModelFailureFallsBack(t *testing.T) {
	model := &stubModel{askErr: errors.New("network unreachable")}
	svc := newTestService(model)

	reply, err := svc.RespondBuffered(context.Background(), []Message{{Role: RoleUser, Content: "salmon"}})
	require.NoError(t, err)
	require.True(t, reply.Degraded)
	require.Contains(t, reply.Text, "Code: FISH-001")
}

// failingRepo simulates an unreachable store.
type failingRepo struct{}

var errStoreDown = errors.New("connection refused")

func (failingRepo) Search(context.Context, string) ([]item.StockItem, error) {
	return nil, errStoreDown
}
func (failingRepo) GetByCode(context.Context, string) (item.StockItem, error) {
	return item.StockItem{}, errStoreDown
}
func (failingRepo) GetAll(context.Context) ([]item.StockItem, error) { return nil, errStoreDown }
func (failingRepo) Add(context.Context, item.StockItem) error        { return errStoreDown }
func (failingRepo) Update(context.Context, string, item.Update) (item.StockItem, error) {
	return item.StockItem{}, errStoreDown
}
func (failingRepo) Delete(context.Context, string) error { return errStoreDown }
