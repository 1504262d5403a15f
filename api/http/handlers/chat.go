package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/artem13815/stockchat/api/http/presenter"
	"github.com/artem13815/stockchat/pkg/chat"
	"github.com/artem13815/stockchat/pkg/config"
)

// ChatHandler serves POST /api/chat in two deployment modes: streaming
// (SSE) and buffered (single JSON body). The mode comes from configuration,
// overridable per request by the Accept header.
type ChatHandler struct {
	uc          chat.UseCase
	defaultMode string
}

func NewChatHandler(uc chat.UseCase, defaultMode string) *ChatHandler {
	return &ChatHandler{uc: uc, defaultMode: defaultMode}
}

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

// Chat answers a conversation with inventory-grounded model output.
// @Summary Inventory chat
// @Description Retrieves matching stock items for the latest user message and streams a grounded model reply. With Accept: application/json the reply is returned buffered in one body. If the model call fails the deterministic fallback text is returned with status 200.
// @Tags    chat
// @Accept  json
// @Produce json
// @Produce text/event-stream
// @Param   input body chatRequest true "Conversation, oldest message first"
// @Success 200 {object} presenter.TextResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	reqID := uuid.NewString()

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	if err := chat.ValidateMessages(req.Messages); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	if !h.wantsStream(c) {
		return h.buffered(c, reqID, req.Messages)
	}
	return h.streaming(c, reqID, req.Messages)
}

// wantsStream resolves the deployment mode for this request. An explicit
// Accept wins over the configured default.
func (h *ChatHandler) wantsStream(c *fiber.Ctx) bool {
	accept := c.Get(fiber.HeaderAccept)
	switch {
	case strings.Contains(accept, "text/event-stream"):
		return true
	case strings.Contains(accept, "application/json"):
		return false
	}
	return h.defaultMode != config.ModeBuffered
}

func (h *ChatHandler) buffered(c *fiber.Ctx, reqID string, msgs []chat.Message) error {
	reply, err := h.uc.RespondBuffered(c.Context(), msgs)
	if err != nil {
		return h.failure(c, reqID, err)
	}
	// Degraded replies ship in the same success envelope as model replies;
	// the caller is not meant to tell them apart.
	return presenter.Text(c, http.StatusOK, reply.Text)
}

func (h *ChatHandler) streaming(c *fiber.Ctx, reqID string, msgs []chat.Message) error {
	// The model stream outlives the handler inside the body writer, so it
	// gets its own context, cancelled when the writer exits.
	ctx, cancel := context.WithCancel(context.Background())

	reply, err := h.uc.Respond(ctx, msgs)
	if err != nil {
		cancel()
		return h.failure(c, reqID, err)
	}
	if reply.Events == nil {
		// Model call failed before the first byte: single-shot fallback.
		cancel()
		return presenter.Text(c, http.StatusOK, reply.Text)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for ev := range reply.Events {
			if ev.Err != nil {
				// Partial output was already delivered; best effort is to
				// log and terminate the stream.
				log.Printf("chat %s: stream failed mid-flight: %v", reqID, ev.Err)
				return
			}
			if ev.Done {
				fmt.Fprint(w, "data: [DONE]\n\n")
				_ = w.Flush()
				return
			}
			payload, _ := json.Marshal(presenter.TextResponse{Text: ev.Text})
			fmt.Fprintf(w, "data: %s\n\n", payload)
			if err := w.Flush(); err != nil {
				// Caller disconnected: stop writing, ctx cancel reaps the
				// upstream call.
				log.Printf("chat %s: client gone: %v", reqID, err)
				return
			}
		}
	}))
	return nil
}

func (h *ChatHandler) failure(c *fiber.Ctx, reqID string, err error) error {
	if errors.Is(err, chat.ErrEmptyConversation) || errors.Is(err, chat.ErrInvalidRole) {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	// Retrieval and everything unclassified: diagnostic detail stays in the
	// server log, the caller gets a generic message.
	log.Printf("chat %s: request failed: %v", reqID, err)
	return presenter.Error(c, http.StatusInternalServerError, "failed to process your request, please try again")
}
