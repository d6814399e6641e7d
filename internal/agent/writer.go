package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"contentstudio/internal/domain"
	"contentstudio/internal/llm"
)

const writerSystemPrompt = `You are an expert content writer with years of experience in creating engaging, informative, and well-structured articles, blog posts, and marketing copy. You specialize in adapting writing style to match target audience and brand voice.

Your goal: create high-quality, engaging content that meets the specified requirements and target audience needs, and maintains consistent tone and style throughout.`

type WriterAgent struct {
	base
}

func NewWriterAgent(client llm.Client, logger *zap.Logger) *WriterAgent {
	return &WriterAgent{base: newBase("content-writer", writerSystemPrompt, client, logger)}
}

type DraftParams struct {
	Topic          string
	ContentType    string
	TargetAudience string
	WordCount      int
	Tone           string
	Keywords       []string
	// AdditionalRequirements is free text appended to the prompt, typically
	// the research requirements block. The writer has no typed awareness of
	// where it came from.
	AdditionalRequirements string
}

// CreateDraft produces the draft text for a topic. The word count is a
// target hint only; the model decides the actual length.
func (a *WriterAgent) CreateDraft(ctx context.Context, p DraftParams) (string, error) {
	if strings.TrimSpace(p.Topic) == "" {
		return "", domain.ErrEmptyTopic
	}

	draft, err := a.complete(ctx, buildDraftPrompt(p))
	if err != nil {
		return "", err
	}

	a.logger.Info("draft created",
		zap.String("topic", p.Topic),
		zap.Int("draft_length", len(draft)),
	)

	return draft, nil
}

func buildDraftPrompt(p DraftParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Create a %s about %q with the following specifications:\n\n", p.ContentType, p.Topic)
	fmt.Fprintf(&sb, "- Target Audience: %s\n", p.TargetAudience)
	fmt.Fprintf(&sb, "- Word Count: Approximately %d words\n", p.WordCount)
	fmt.Fprintf(&sb, "- Tone: %s\n", p.Tone)
	fmt.Fprintf(&sb, "- Content Type: %s\n", p.ContentType)

	if len(p.Keywords) > 0 {
		fmt.Fprintf(&sb, "- Keywords to include naturally: %s\n", strings.Join(p.Keywords, ", "))
	}
	if p.AdditionalRequirements != "" {
		fmt.Fprintf(&sb, "- Additional Requirements: %s\n", p.AdditionalRequirements)
	}

	sb.WriteString(`
Please ensure the content is:
1. Well-structured with clear headings and subheadings
2. Engaging and informative
3. Optimized for the target audience
4. Free of grammatical errors
5. Original and plagiarism-free`)

	return sb.String()
}
