package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"contentstudio/internal/llm"
)

// base bundles what every agent needs: one LLM round trip under a fixed
// system prompt. Agents are plain values composed of a base plus typed
// capability methods; there is no inheritance hierarchy.
type base struct {
	name         string
	systemPrompt string
	llm          llm.Client
	logger       *zap.Logger
}

func newBase(name, systemPrompt string, client llm.Client, logger *zap.Logger) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{
		name:         name,
		systemPrompt: systemPrompt,
		llm:          client,
		logger:       logger.With(zap.String("agent", name)),
	}
}

func (b base) Name() string { return b.name }

// complete runs one synchronous completion. No retry; failures propagate
// to the caller unmodified apart from wrapping.
func (b base) complete(ctx context.Context, prompt string) (string, error) {
	b.logger.Debug("executing task", zap.Int("prompt_length", len(prompt)))

	out, err := b.llm.CompleteWithSystem(ctx, b.systemPrompt, prompt)
	if err != nil {
		b.logger.Error("llm call failed", zap.Error(err))
		return "", fmt.Errorf("llm call failed: %w", err)
	}

	return strings.TrimSpace(out), nil
}
