package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/stockchat/pkg/chat"
	"github.com/artem13815/stockchat/pkg/config"
)

// stubChatUC scripts the pipeline outcome for handler tests.
type stubChatUC struct {
	fragments    []string
	fallbackText string
	err          error
	calls        int
}

func (s *stubChatUC) Respond(ctx context.Context, msgs []chat.Message) (chat.Reply, error) {
	s.calls++
	if err := chat.ValidateMessages(msgs); err != nil {
		return chat.Reply{}, err
	}
	if s.err != nil {
		return chat.Reply{}, s.err
	}
	if s.fallbackText != "" {
		return chat.Reply{Text: s.fallbackText, Degraded: true}, nil
	}
	ch := make(chan chat.StreamEvent)
	go func() {
		defer close(ch)
		for _, f := range s.fragments {
			select {
			case ch <- chat.StreamEvent{Text: f}:
			case <-ctx.Done():
				return
			}
		}
		select {
		case ch <- chat.StreamEvent{Done: true}:
		case <-ctx.Done():
		}
	}()
	return chat.Reply{Events: ch}, nil
}

func (s *stubChatUC) RespondBuffered(_ context.Context, msgs []chat.Message) (chat.Reply, error) {
	s.calls++
	if err := chat.ValidateMessages(msgs); err != nil {
		return chat.Reply{}, err
	}
	if s.err != nil {
		return chat.Reply{}, s.err
	}
	if s.fallbackText != "" {
		return chat.Reply{Text: s.fallbackText, Degraded: true}, nil
	}
	return chat.Reply{Text: strings.Join(s.fragments, "")}, nil
}

func newChatApp(uc chat.UseCase) *fiber.App {
	app := fiber.New()
	h := NewChatHandler(uc, config.ModeStream)
	app.Post("/api/chat", h.Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body, accept string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestChatMalformedBody(t *testing.T) {
	uc := &stubChatUC{}
	resp := postChat(t, newChatApp(uc), "{not json", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, 0, uc.calls, "pipeline must not run for malformed bodies")
}

func TestChatEmptyMessagesRejected(t *testing.T) {
	uc := &stubChatUC{}
	resp := postChat(t, newChatApp(uc), `{"messages": []}`, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, 0, uc.calls)

	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), `"error"`)
}

func TestChatInvalidRoleRejected(t *testing.T) {
	uc := &stubChatUC{}
	resp := postChat(t, newChatApp(uc), `{"messages": [{"role":"robot","content":"hi"}]}`, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, 0, uc.calls)
}

func TestChatStreamingSuccess(t *testing.T) {
	uc := &stubChatUC{fragments: []string{"We have ", "salmon."}}
	resp := postChat(t, newChatApp(uc), `{"messages": [{"role":"user","content":"salmon"}]}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	s := string(body)
	first := strings.Index(s, `data: {"text":"We have "}`)
	second := strings.Index(s, `data: {"text":"salmon."}`)
	done := strings.Index(s, "data: [DONE]")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	require.Greater(t, done, second)
	require.True(t, strings.HasSuffix(s, "data: [DONE]\n\n"))
}

func TestChatFallbackIsSuccessShaped(t *testing.T) {
	uc := &stubChatUC{fallbackText: "Here are the items I found:\n\n• Atlantic Salmon Fillet (Code: FISH-001)"}
	resp := postChat(t, newChatApp(uc), `{"messages": [{"role":"user","content":"salmon"}]}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), "FISH-001")
	require.NotContains(t, string(body), `"error"`)
}

func TestChatRetrievalFailureIs500(t *testing.T) {
	uc := &stubChatUC{err: errors.New("search items: connection refused")}
	resp := postChat(t, newChatApp(uc), `{"messages": [{"role":"user","content":"salmon"}]}`, "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	// Generic message only, no internal diagnostics.
	require.Contains(t, string(body), `"error"`)
	require.NotContains(t, string(body), "connection refused")
}

func TestChatBufferedMode(t *testing.T) {
	uc := &stubChatUC{fragments: []string{"We have salmon."}}
	resp := postChat(t, newChatApp(uc), `{"messages": [{"role":"user","content":"salmon"}]}`, "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	body, _ := io.ReadAll(resp.Body)
	require.JSONEq(t, `{"text":"We have salmon."}`, string(body))
}

func TestChatBufferedDefaultMode(t *testing.T) {
	uc := &stubChatUC{fragments: []string{"hi"}}
	app := fiber.New()
	app.Post("/api/chat", NewChatHandler(uc, config.ModeBuffered).Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"messages":[{"role":"user","content":"salmon"}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	// Accept: text/event-stream still selects streaming in buffered deployments.
	req = httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"messages":[{"role":"user","content":"salmon"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")
}
