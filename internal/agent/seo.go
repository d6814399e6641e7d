package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"contentstudio/internal/domain"
	"contentstudio/internal/llm"
)

const seoSystemPrompt = `You are an expert SEO specialist with deep knowledge of search engine optimization, keyword research, and content optimization strategies. You specialize in improving content visibility and ranking in search engines.

Your goal: optimize content for search engines by applying SEO best practices and keyword optimization while maintaining quality and readability.`

var seoExtractor = LineExtractor{Sets: map[string][]string{
	"recommendations": {"recommend", "suggest", "improve", "optimize"},
}}

type SEOAgent struct {
	base
}

func NewSEOAgent(client llm.Client, logger *zap.Logger) *SEOAgent {
	return &SEOAgent{base: newBase("seo-specialist", seoSystemPrompt, client, logger)}
}

type KeywordParams struct {
	Topic          string
	ContentType    string
	TargetAudience string
}

func (a *SEOAgent) SuggestKeywords(ctx context.Context, p KeywordParams) (*domain.KeywordPlan, error) {
	if strings.TrimSpace(p.Topic) == "" {
		return nil, domain.ErrEmptyTopic
	}

	raw, err := a.complete(ctx, buildKeywordPrompt(p))
	if err != nil {
		return nil, err
	}

	plan := &domain.KeywordPlan{
		RawText:          raw,
		PrimaryKeywords:  extractKeywordList(raw, "primary"),
		LongTailKeywords: extractKeywordList(raw, "long-tail", "long tail"),
	}

	a.logger.Info("keyword plan generated",
		zap.String("topic", p.Topic),
		zap.Int("primary", len(plan.PrimaryKeywords)),
		zap.Int("long_tail", len(plan.LongTailKeywords)),
	)

	return plan, nil
}

func buildKeywordPrompt(p KeywordParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Suggest relevant keywords for a %s about %q targeting %s audience.\n", p.ContentType, p.Topic, p.TargetAudience)

	sb.WriteString(`
Please provide:
1. Primary keywords (high search volume)
2. Long-tail keywords (specific phrases)
3. Related keywords and synonyms
4. Keyword difficulty assessment
5. Search intent analysis
6. Seasonal keyword opportunities
7. Local SEO keywords (if applicable)`)

	return sb.String()
}

type OptimizeParams struct {
	Content        string
	TargetKeywords []string
	ContentType    string
	TargetAudience string
}

// OptimizeContent rewrites existing content around the target keywords and
// returns the optimized text plus the agent's analysis.
func (a *SEOAgent) OptimizeContent(ctx context.Context, p OptimizeParams) (*domain.SEOResult, error) {
	if strings.TrimSpace(p.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	raw, err := a.complete(ctx, buildOptimizePrompt(p))
	if err != nil {
		return nil, err
	}

	result := &domain.SEOResult{
		OptimizedContent: sectionAfter(raw, "optimized content", "updated content"),
		RawText:          raw,
		TargetKeywords:   p.TargetKeywords,
		SEOScore:         Score(raw, "seo score"),
		Recommendations:  seoExtractor.Extract(raw)["recommendations"],
	}

	a.logger.Info("content optimized",
		zap.Int("content_length", len(p.Content)),
		zap.Int("recommendations", len(result.Recommendations)),
	)

	return result, nil
}

type MetaTagParams struct {
	Content        string
	TargetKeywords []string
	ContentType    string
}

// GenerateMetaTags produces a meta title and description for content.
func (a *SEOAgent) GenerateMetaTags(ctx context.Context, p MetaTagParams) (*domain.MetaTags, error) {
	if strings.TrimSpace(p.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	raw, err := a.complete(ctx, buildMetaTagPrompt(p))
	if err != nil {
		return nil, err
	}

	tags := parseMetaTags(raw)

	a.logger.Info("meta tags generated",
		zap.Int("title_length", len(tags.MetaTitle)),
		zap.Int("description_length", len(tags.MetaDescription)),
	)

	return &tags, nil
}

func buildOptimizePrompt(p OptimizeParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Optimize the following %s content for SEO with target keywords: %s\n\n",
		p.ContentType, strings.Join(p.TargetKeywords, ", "))
	sb.WriteString("Original Content:\n")
	sb.WriteString(p.Content)
	fmt.Fprintf(&sb, "\n\nTarget Audience: %s\n", p.TargetAudience)

	sb.WriteString(`
Please provide:
1. SEO-optimized version of the content
2. Keyword density analysis
3. Meta title and description suggestions
4. Header structure recommendations
5. Internal linking suggestions
6. SEO score and recommendations
7. Technical SEO improvements`)

	return sb.String()
}

func buildMetaTagPrompt(p MetaTagParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate SEO-optimized meta title and description for the following %s:\n\n", p.ContentType)
	sb.WriteString("Content:\n")
	sb.WriteString(p.Content)
	fmt.Fprintf(&sb, "\n\nTarget Keywords: %s\n", strings.Join(p.TargetKeywords, ", "))

	sb.WriteString(`
Requirements:
- Meta title: 50-60 characters
- Meta description: 150-160 characters
- Include primary keywords naturally
- Compelling and click-worthy
- Accurate representation of content`)

	return sb.String()
}

// parseMetaTags scans for "title" and "description" lines and takes
// whatever follows the last colon on each. Later matches win.
func parseMetaTags(text string) domain.MetaTags {
	var tags domain.MetaTags
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "title"):
			tags.MetaTitle = afterLastColon(line)
		case strings.Contains(lower, "description"):
			tags.MetaDescription = afterLastColon(line)
		}
	}
	return tags
}

func afterLastColon(line string) string {
	if idx := strings.LastIndex(line, ":"); idx != -1 {
		return strings.TrimSpace(line[idx+1:])
	}
	return strings.TrimSpace(line)
}

// extractKeywordList pulls comma-separated keywords off lines mentioning
// any of the markers together with "keyword". Heuristic, no guarantees.
func extractKeywordList(text string, markers ...string) []string {
	var matched []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "keyword") {
			continue
		}
		for _, m := range markers {
			if strings.Contains(lower, m) {
				matched = append(matched, strings.TrimSpace(line))
				break
			}
		}
	}
	return commaItems(matched)
}
