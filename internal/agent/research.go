package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"contentstudio/internal/domain"
	"contentstudio/internal/llm"
)

const researchSystemPrompt = `You are an expert researcher with extensive experience in gathering accurate, relevant, and up-to-date information from reliable sources. You specialize in fact-checking, data analysis, and providing comprehensive research insights.

Your goal: gather comprehensive, accurate, and relevant information to support content creation, ensuring all facts are verified and sources are credible.`

// researchExtractor buckets research output by the keyword heuristics the
// writers downstream expect. Best-effort only.
var researchExtractor = LineExtractor{Sets: map[string][]string{
	"key_facts":       {"fact", "statistic", "data", "figure"},
	"sources":         {"source", "reference", "study", "report"},
	"insights":        {"insight", "finding", "discovery", "observation"},
	"recommendations": {"recommend", "suggest", "advise", "propose"},
}}

type ResearchAgent struct {
	base
}

func NewResearchAgent(client llm.Client, logger *zap.Logger) *ResearchAgent {
	return &ResearchAgent{base: newBase("research-specialist", researchSystemPrompt, client, logger)}
}

type ResearchParams struct {
	Topic          string
	ResearchDepth  string
	ContentType    string
	TargetAudience string
}

func (a *ResearchAgent) ResearchTopic(ctx context.Context, p ResearchParams) (*domain.ResearchResult, error) {
	topic := strings.TrimSpace(p.Topic)
	if topic == "" {
		return nil, domain.ErrEmptyTopic
	}

	raw, err := a.complete(ctx, buildResearchPrompt(topic, p))
	if err != nil {
		return nil, err
	}

	buckets := researchExtractor.Extract(raw)

	a.logger.Info("research completed",
		zap.String("topic", topic),
		zap.Int("key_facts", len(buckets["key_facts"])),
		zap.Int("sources", len(buckets["sources"])),
	)

	return &domain.ResearchResult{
		Topic:           topic,
		RawText:         raw,
		KeyFacts:        buckets["key_facts"],
		Sources:         buckets["sources"],
		Insights:        buckets["insights"],
		Recommendations: buckets["recommendations"],
	}, nil
}

var factCheckExtractor = LineExtractor{Sets: map[string][]string{
	"verified":    {"verified", "confirmed", "accurate", "correct"},
	"corrections": {"correction", "error", "inaccurate", "wrong"},
	"sources":     {"verified source", "credible", "reliable"},
}}

type FactCheckParams struct {
	Content string
	Topic   string
}

// FactCheckContent asks the researcher to verify a draft's claims against
// its topic. Accuracy score is parsed when the model reports one.
func (a *ResearchAgent) FactCheckContent(ctx context.Context, p FactCheckParams) (*domain.FactCheckResult, error) {
	if strings.TrimSpace(p.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	raw, err := a.complete(ctx, buildFactCheckPrompt(p))
	if err != nil {
		return nil, err
	}

	buckets := factCheckExtractor.Extract(raw)

	a.logger.Info("fact check completed",
		zap.String("topic", p.Topic),
		zap.Int("verified", len(buckets["verified"])),
		zap.Int("corrections", len(buckets["corrections"])),
	)

	return &domain.FactCheckResult{
		RawText:         raw,
		VerifiedFacts:   buckets["verified"],
		Corrections:     buckets["corrections"],
		AccuracyScore:   Score(raw, "accuracy"),
		SourcesVerified: buckets["sources"],
	}, nil
}

func buildFactCheckPrompt(p FactCheckParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Fact-check the following content about %q:\n\n", p.Topic)
	sb.WriteString(p.Content)

	sb.WriteString(`

Please verify:
1. All factual claims and statements
2. Statistics and data accuracy
3. Quote authenticity and attribution
4. Date and timeline accuracy
5. Source credibility and reliability
6. Context accuracy and completeness
7. Potential biases or misinformation
8. Recommendations for corrections`)

	return sb.String()
}

func buildResearchPrompt(topic string, p ResearchParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Conduct %s research on the topic: %q\n\n", p.ResearchDepth, topic)
	fmt.Fprintf(&sb, "Content Type: %s\n", p.ContentType)
	fmt.Fprintf(&sb, "Target Audience: %s\n\n", p.TargetAudience)

	sb.WriteString(`Please provide:
1. Key facts and statistics
2. Current trends and developments
3. Expert opinions and quotes
4. Relevant case studies or examples
5. Historical context (if applicable)
6. Controversial aspects or debates
7. Future implications or predictions
8. Credible sources and references
9. Data visualization suggestions
10. Research gaps or areas for further study`)

	return sb.String()
}
