package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"contentstudio/internal/domain"
	"contentstudio/internal/llm"
)

const editorSystemPrompt = `You are an expert content editor with extensive experience in reviewing, editing, and improving articles, blog posts, and marketing content. You specialize in grammar, style, clarity, and ensuring content meets quality standards.

Your goal: review and improve content so it is grammatically correct, well-structured, engaging, and meets the highest quality standards while maintaining the original message and tone.`

var editorExtractor = LineExtractor{Sets: map[string][]string{
	"suggestions": {"suggest", "improve", "consider", "try"},
	"positives":   {"good", "excellent", "strong", "effective"},
}}

var defaultReviewFocus = []string{"grammar", "style", "clarity", "structure", "engagement"}

type EditorAgent struct {
	base
}

func NewEditorAgent(client llm.Client, logger *zap.Logger) *EditorAgent {
	return &EditorAgent{base: newBase("content-editor", editorSystemPrompt, client, logger)}
}

type ReviewParams struct {
	Content        string
	ContentType    string
	TargetAudience string
	Focus          []string
}

func (a *EditorAgent) ReviewContent(ctx context.Context, p ReviewParams) (*domain.ReviewResult, error) {
	if strings.TrimSpace(p.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	focus := p.Focus
	if len(focus) == 0 {
		focus = defaultReviewFocus
	}

	raw, err := a.complete(ctx, buildReviewPrompt(p, focus))
	if err != nil {
		return nil, err
	}

	buckets := editorExtractor.Extract(raw)
	score := Score(raw, "score")

	a.logger.Info("review completed",
		zap.Int("suggestions", len(buckets["suggestions"])),
		zap.Bool("scored", score != nil),
	)

	return &domain.ReviewResult{
		ReviewText:      raw,
		OverallScore:    score,
		Suggestions:     buckets["suggestions"],
		PositiveAspects: buckets["positives"],
	}, nil
}

var defaultImprovementAreas = []string{"clarity", "engagement", "flow", "impact"}

type ImproveParams struct {
	Content          string
	ImprovementAreas []string
}

// ImproveContent rewrites content for quality while keeping its core
// message. Returns the rewritten text only; pair it with ReviewContent
// when structured feedback is needed.
func (a *EditorAgent) ImproveContent(ctx context.Context, p ImproveParams) (string, error) {
	if strings.TrimSpace(p.Content) == "" {
		return "", domain.ErrEmptyContent
	}

	areas := p.ImprovementAreas
	if len(areas) == 0 {
		areas = defaultImprovementAreas
	}

	improved, err := a.complete(ctx, buildImprovePrompt(p.Content, areas))
	if err != nil {
		return "", err
	}

	a.logger.Info("content improved",
		zap.Int("original_length", len(p.Content)),
		zap.Int("improved_length", len(improved)),
	)

	return improved, nil
}

func buildReviewPrompt(p ReviewParams, focus []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Review the following %s content for %s audience:\n\n", p.ContentType, p.TargetAudience)
	sb.WriteString(p.Content)
	fmt.Fprintf(&sb, "\n\nFocus areas for review: %s\n", strings.Join(focus, ", "))

	sb.WriteString(`
Please provide a comprehensive review including:
1. Overall assessment and score (1-10)
2. Grammar and spelling issues
3. Style and tone consistency
4. Clarity and readability
5. Structure and flow
6. Engagement and impact
7. Specific suggestions for improvement
8. Positive aspects to maintain`)

	return sb.String()
}

func buildImprovePrompt(content string, areas []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Improve the following content by focusing on: %s\n\n", strings.Join(areas, ", "))
	sb.WriteString("Original Content:\n")
	sb.WriteString(content)

	sb.WriteString(`

Please:
1. Maintain the core message and key points
2. Improve clarity and readability
3. Enhance engagement and impact
4. Ensure smooth flow and transitions
5. Fix any grammatical or style issues
6. Make the content more compelling`)

	return sb.String()
}
