package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"contentstudio/internal/llm"
	"contentstudio/internal/llm/mock"
)

type recorderStub struct {
	provider string
	status   string
	calls    int
}

func (r *recorderStub) RecordLLMRequest(provider, status string, duration time.Duration) {
	r.calls++
	r.provider = provider
	r.status = status
}

func TestWithMetrics(t *testing.T) {
	t.Run("records success", func(t *testing.T) {
		rec := &recorderStub{}
		c := llm.WithMetrics(mock.New().WithResponse("ok"), "openai", rec)

		out, err := c.CompleteWithSystem(context.Background(), "s", "p")
		if err != nil || out != "ok" {
			t.Fatalf("CompleteWithSystem() = %q, %v", out, err)
		}
		if rec.calls != 1 || rec.provider != "openai" || rec.status != "success" {
			t.Errorf("recorded %d calls, provider=%q status=%q", rec.calls, rec.provider, rec.status)
		}
	})

	t.Run("records error", func(t *testing.T) {
		rec := &recorderStub{}
		wantErr := errors.New("boom")
		c := llm.WithMetrics(mock.New().WithError(wantErr), "openrouter", rec)

		if _, err := c.CompleteWithSystem(context.Background(), "s", "p"); !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want %v", err, wantErr)
		}
		if rec.status != "error" {
			t.Errorf("status = %q, want error", rec.status)
		}
	})

	t.Run("nil recorder passes through", func(t *testing.T) {
		inner := mock.New()
		if c := llm.WithMetrics(inner, "mock", nil); c != llm.Client(inner) {
			t.Error("nil recorder should return the wrapped client unchanged")
		}
	})
}
