package llm

import (
	"context"
	"time"
)

// Recorder receives per-call LLM metrics.
type Recorder interface {
	RecordLLMRequest(provider, status string, duration time.Duration)
}

type instrumentedClient struct {
	next     Client
	provider string
	recorder Recorder
}

// WithMetrics wraps a client so every completion is recorded under the
// given provider label.
func WithMetrics(next Client, provider string, recorder Recorder) Client {
	if recorder == nil {
		return next
	}
	return &instrumentedClient{next: next, provider: provider, recorder: recorder}
}

func (c *instrumentedClient) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	start := time.Now()
	out, err := c.next.CompleteWithSystem(ctx, system, prompt)

	status := "success"
	if err != nil {
		status = "error"
	}
	c.recorder.RecordLLMRequest(c.provider, status, time.Since(start))

	return out, err
}
