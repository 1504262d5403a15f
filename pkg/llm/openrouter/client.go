package openrouter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/stockchat/pkg/llm"
)

const doneSentinel = "[DONE]"

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey      string
	BaseURL     string
	Model       string
	AppTitle    string
	Referer     string
	Temperature float32
	MaxTokens   int
	httpDo      *http.Client
}

func New(apiKey, baseURL, model, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	return &Client{
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Model:       model,
		AppTitle:    appTitle,
		Referer:     referer,
		Temperature: 0.7,
		MaxTokens:   500,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatCompletionsRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type streamChoice struct {
	Index int `json:"index"`
	Delta struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"delta"`
	FinishReason string `json:"finish_reason"`
}

type streamChunk struct {
	ID      string         `json:"id"`
	Choices []streamChoice `json:"choices"`
}

func (c *Client) newRequest(ctx context.Context, msgs []llm.Message, stream bool) (*http.Request, error) {
	if c.APIKey == "" {
		return nil, errors.New("openrouter api key is empty")
	}
	model := c.Model
	if model == "" {
		model = "openai/gpt-3.5-turbo"
	}
	reqBody := chatCompletionsRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Stream:      stream,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}
	return httpReq, nil
}

// Ask sends the full prompt to the LLM and returns the complete model reply.
func (c *Client) Ask(ctx context.Context, msgs []llm.Message) (string, error) {
	httpReq, err := c.newRequest(ctx, msgs, false)
	if err != nil {
		return "", err
	}
	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("openrouter http %d: %v", resp.StatusCode, errMap)
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}
	return out.Choices[0].Message.Content, nil
}

// Stream opens a streaming chat completion and forwards each content
// fragment as a Delta, in arrival order. Call errors (connect, non-2xx
// status) are returned directly and no channel is created. The returned
// channel is closed after the terminal Done delta or a mid-stream error.
func (c *Client) Stream(ctx context.Context, msgs []llm.Message) (<-chan llm.Delta, error) {
	httpReq, err := c.newRequest(ctx, msgs, true)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		resp.Body.Close()
		return nil, fmt.Errorf("openrouter http %d: %v", resp.StatusCode, errMap)
	}

	out := make(chan llm.Delta)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || !strings.HasPrefix(line, "data:") {
				continue
			}
			payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if payload == doneSentinel {
				emit(ctx, out, llm.Delta{Done: true})
				return
			}
			var chunk streamChunk
			if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
				emit(ctx, out, llm.Delta{Err: fmt.Errorf("decode stream chunk: %w", err)})
				return
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			if text := chunk.Choices[0].Delta.Content; text != "" {
				if !emit(ctx, out, llm.Delta{Text: text}) {
					return
				}
			}
		}
		if err := scanner.Err(); err != nil {
			emit(ctx, out, llm.Delta{Err: fmt.Errorf("read stream: %w", err)})
			return
		}
		// Provider closed the stream without a [DONE] line; treat as complete.
		emit(ctx, out, llm.Delta{Done: true})
	}()
	return out, nil
}

// emit delivers a delta unless the consumer is gone.
func emit(ctx context.Context, out chan<- llm.Delta, d llm.Delta) bool {
	select {
	case out <- d:
		return true
	case <-ctx.Done():
		return false
	}
}

var _ llm.StreamingChatModel = (*Client)(nil)
