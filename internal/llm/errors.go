package llm

import "errors"

var (
	// ErrOllamaUnavailable means no Ollama server answered at the endpoint.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout means the reply did not arrive within llm.timeout_ms.
	ErrTimeout = errors.New("llm request timed out")

	// ErrRejected means Ollama refused the request, e.g. the model is not pulled.
	ErrRejected = errors.New("llm request rejected")

	// ErrRetryExhausted means every attempt failed with a server error.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
