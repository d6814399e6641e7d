package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"contentstudio/internal/domain"
	"contentstudio/internal/llm"
)

const creativeSystemPrompt = `You are an expert creative content strategist with extensive experience in brainstorming, ideation, and innovative content approaches. You specialize in generating unique, engaging, and viral-worthy content ideas.

Your goal: generate innovative, creative, and engaging content ideas that capture audience attention, drive engagement, and stand out in the digital landscape.`

type CreativeAgent struct {
	base
}

func NewCreativeAgent(client llm.Client, logger *zap.Logger) *CreativeAgent {
	return &CreativeAgent{base: newBase("creative-specialist", creativeSystemPrompt, client, logger)}
}

type IdeaParams struct {
	Topic           string
	ContentType     string
	TargetAudience  string
	IdeaCount       int
	CreativityLevel string
}

func (a *CreativeAgent) GenerateIdeas(ctx context.Context, p IdeaParams) (*domain.IdeaSet, error) {
	if strings.TrimSpace(p.Topic) == "" {
		return nil, domain.ErrEmptyTopic
	}
	if p.IdeaCount <= 0 {
		p.IdeaCount = 10
	}
	if p.CreativityLevel == "" {
		p.CreativityLevel = "high"
	}

	raw, err := a.complete(ctx, buildIdeaPrompt(p))
	if err != nil {
		return nil, err
	}

	ideas := bulletLines(raw)

	a.logger.Info("ideas generated",
		zap.String("topic", p.Topic),
		zap.Int("ideas", len(ideas)),
	)

	return &domain.IdeaSet{RawText: raw, Ideas: ideas}, nil
}

type HeadlineParams struct {
	Topic         string
	ContentType   string
	HeadlineCount int
	HeadlineStyle string
}

func (a *CreativeAgent) BrainstormHeadlines(ctx context.Context, p HeadlineParams) (*domain.HeadlineSet, error) {
	if strings.TrimSpace(p.Topic) == "" {
		return nil, domain.ErrEmptyTopic
	}
	if p.HeadlineCount <= 0 {
		p.HeadlineCount = 15
	}
	if p.HeadlineStyle == "" {
		p.HeadlineStyle = "creative"
	}

	raw, err := a.complete(ctx, buildHeadlinePrompt(p))
	if err != nil {
		return nil, err
	}

	headlines := bulletLines(raw)

	a.logger.Info("headlines generated",
		zap.String("topic", p.Topic),
		zap.Int("headlines", len(headlines)),
	)

	return &domain.HeadlineSet{RawText: raw, Headlines: headlines}, nil
}

func buildIdeaPrompt(p IdeaParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate %d %s-creativity content ideas for a %s about %q targeting %s audience.\n",
		p.IdeaCount, p.CreativityLevel, p.ContentType, p.Topic, p.TargetAudience)

	sb.WriteString(`
Please provide:
1. Unique and innovative angles
2. Engaging storytelling approaches
3. Interactive content ideas
4. Trending topic connections
5. Emotional appeal strategies

For each idea, include a title and a brief description as a list item.`)

	return sb.String()
}

func buildHeadlinePrompt(p HeadlineParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate %d %s headlines for a %s about %q.\n", p.HeadlineCount, p.HeadlineStyle, p.ContentType, p.Topic)

	sb.WriteString(`
Headline styles to consider:
- How-to guides
- Listicles
- Question-based
- Number-based
- Problem-solution

Return each headline as a list item.`)

	return sb.String()
}
