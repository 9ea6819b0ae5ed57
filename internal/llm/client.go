// Package llm talks to a local Ollama server for chat replies.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ChatRequest is one conversational turn: a system prompt that sets the
// voice and the user's message.
type ChatRequest struct {
	Task    Task
	System  string
	Message string
}

// ChatReply is the model's answer to a ChatRequest.
type ChatReply struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client answers chat turns with a language model.
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatReply, error)
}

type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient returns a Client for the Ollama /api/chat endpoint.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	dialer := &net.Dialer{Timeout: 5 * time.Second}
	return &ollamaClient{
		cfg:      cfg,
		http:     &http.Client{Transport: &http.Transport{DialContext: dialer.DialContext}},
		observer: observer,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatBody struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type chatResult struct {
	Model   string      `json:"model"`
	Message chatMessage `json:"message"`
}

// statusError is a non-200 answer from Ollama.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("ollama returned status %d: %s", e.code, e.body)
}

func (c *ollamaClient) Chat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	params := c.cfg.Tasks[req.Task]
	body := chatBody{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "system", Content: req.System}, {Role: "user", Content: req.Message}},
		Options:  chatOptions{Temperature: params.Temperature, NumPredict: params.MaxTokens},
	}
	if req.System == "" {
		body.Messages = body.Messages[1:]
	}

	var (
		res      *chatResult
		err      error
		attempts int
	)
	for attempts < 1+c.cfg.MaxRetries {
		attempts++
		res, err = c.post(ctx, body)
		if err == nil || !transient(ctx, err) {
			break
		}
	}

	event := CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		Attempts:  attempts,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		err = classify(ctx, err)
		event.ErrorCode = errorCode(err)
		c.observer.OnCallComplete(event)
		return nil, err
	}
	event.Success = true
	c.observer.OnCallComplete(event)
	return &ChatReply{Text: res.Message.Content, Model: res.Model, LatencyMs: event.LatencyMs}, nil
}

func (c *ollamaClient) post(ctx context.Context, body chatBody) (*chatResult, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/chat", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &statusError{code: resp.StatusCode, body: string(msg)}
	}
	var res chatResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decoding chat reply: %w", err)
	}
	return &res, nil
}

// transient reports whether another attempt could succeed. Client errors
// such as an unknown model are not retried.
func transient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}
	return true
}

func classify(ctx context.Context, err error) error {
	var (
		se    *statusError
		netOp *net.OpError
	)
	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case errors.As(err, &se) && se.code < http.StatusInternalServerError:
		return fmt.Errorf("%w: %v", ErrRejected, err)
	case errors.As(err, &netOp):
		return ErrOllamaUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRejected):
		return "REJECTED"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	}
	return "UNKNOWN"
}
