package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"contentstudio/internal/agent"
	"contentstudio/internal/domain"
	"contentstudio/internal/metrics"
)

// Researcher and Drafter are the two collaborators of the content-creation
// pipeline, declared here so tests can stub them.
type Researcher interface {
	ResearchTopic(ctx context.Context, p agent.ResearchParams) (*domain.ResearchResult, error)
}

type Drafter interface {
	CreateDraft(ctx context.Context, p agent.DraftParams) (string, error)
}

// How much of the research result is threaded into the writer's prompt.
const (
	maxRequirementFacts    = 5
	maxRequirementSources  = 3
	maxRequirementInsights = 3
)

type ContentServiceDeps struct {
	Research Researcher
	Writer   Drafter
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Defaults domain.Defaults

	// Now overrides the record timestamp clock; nil means time.Now.
	Now func() time.Time
}

// ContentService runs the fixed two-step pipeline: research the topic,
// then draft with the research threaded into the writer's prompt, and
// assemble one combined record. Steps are strictly sequential — the draft
// prompt depends on the research output — and fail-fast: any step error
// aborts the whole operation with no partial record.
type ContentService struct {
	research Researcher
	writer   Drafter
	logger   *zap.Logger
	metrics  *metrics.Metrics
	defaults domain.Defaults
	now      func() time.Time
}

func NewContentService(deps ContentServiceDeps) *ContentService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Defaults == (domain.Defaults{}) {
		deps.Defaults = domain.Defaults{
			ContentType:    "article",
			TargetAudience: "general",
			WordCount:      1000,
			Tone:           "professional",
			ResearchDepth:  "comprehensive",
		}
	}

	return &ContentService{
		research: deps.Research,
		writer:   deps.Writer,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		defaults: deps.Defaults,
		now:      deps.Now,
	}
}

func (s *ContentService) CreateContent(ctx context.Context, req domain.ContentRequest) (*domain.ContentRecord, error) {
	start := time.Now()

	if s.metrics != nil {
		s.metrics.IncRequestsInFlight()
		defer s.metrics.DecRequestsInFlight()
	}

	if err := req.Validate(); err != nil {
		if s.metrics != nil {
			s.metrics.RecordRequest("content_create", "validation_error", time.Since(start))
		}
		return nil, err
	}
	req.Sanitize(s.defaults)

	s.logger.Info("starting content creation",
		zap.String("topic", req.Topic),
		zap.String("content_type", req.ContentType),
		zap.Int("word_count", req.WordCount),
	)

	// Step 1: research. Failures propagate unmodified; the draft step is
	// never reached.
	research, err := s.research.ResearchTopic(ctx, agent.ResearchParams{
		Topic:          req.Topic,
		ResearchDepth:  req.ResearchDepth,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordRequest("content_create", "research_error", time.Since(start))
		}
		return nil, err
	}

	// Step 2: draft, with the research folded into the prompt as free text.
	requirements := researchRequirements(research)

	draft, err := s.writer.CreateDraft(ctx, agent.DraftParams{
		Topic:                  req.Topic,
		ContentType:            req.ContentType,
		TargetAudience:         req.TargetAudience,
		WordCount:              req.WordCount,
		Tone:                   req.Tone,
		Keywords:               req.Keywords,
		AdditionalRequirements: requirements,
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordRequest("content_create", "draft_error", time.Since(start))
		}
		return nil, err
	}

	keywords := req.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	// Step 3: assemble. The actual word count is the literal token count of
	// the draft, not the requested target.
	record := &domain.ContentRecord{
		Topic:          req.Topic,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
		WordCount:      req.WordCount,
		Tone:           req.Tone,
		Keywords:       keywords,
		ResearchData:   *research,
		Content: domain.DraftResult{
			DraftContent:         draft,
			ResearchIncorporated: true,
			WordCountActual:      len(strings.Fields(draft)),
			KeywordsUsed:         keywords,
		},
		CreationTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:            domain.StatusCompleted,
	}

	s.logger.Info("content creation completed",
		zap.String("topic", req.Topic),
		zap.Int("word_count_actual", record.Content.WordCountActual),
		zap.Int("key_facts", len(research.KeyFacts)),
	)

	if s.metrics != nil {
		s.metrics.RecordRequest("content_create", "success", time.Since(start))
	}

	return record, nil
}

// researchRequirements renders the leading research findings as labeled
// lines for the writer's prompt. Empty buckets are skipped; all buckets
// empty yields an empty block, which is fine — the draft then runs on the
// plain request parameters.
func researchRequirements(r *domain.ResearchResult) string {
	var lines []string

	if len(r.KeyFacts) > 0 {
		lines = append(lines, "Key Facts: "+strings.Join(firstN(r.KeyFacts, maxRequirementFacts), ", "))
	}
	if len(r.Sources) > 0 {
		lines = append(lines, "Credible Sources: "+strings.Join(firstN(r.Sources, maxRequirementSources), ", "))
	}
	if len(r.Insights) > 0 {
		lines = append(lines, "Key Insights: "+strings.Join(firstN(r.Insights, maxRequirementInsights), ", "))
	}

	return strings.Join(lines, "\n")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
