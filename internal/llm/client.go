// Package llm abstracts the chat-completion backends the agents run on.
package llm

import (
	"context"
	"errors"
)

// Upstream failure sentinels. Providers wrap their transport errors with
// these so the HTTP layer can map them without knowing the backend.
var (
	ErrAuthFailed    = errors.New("authentication failed")
	ErrRequestFailed = errors.New("request failed")
	ErrEmptyResponse = errors.New("empty response")
	ErrRateLimit     = errors.New("rate limit exceeded")
)

// Client is a single synchronous completion under a fixed system prompt.
type Client interface {
	CompleteWithSystem(ctx context.Context, system, prompt string) (string, error)
}
