package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"contentstudio/internal/agent"
	"contentstudio/internal/domain"
)

// ResearchProvider is what the research workflows need from the agent:
// topic research plus fact checking.
type ResearchProvider interface {
	Researcher
	FactCheckContent(ctx context.Context, p agent.FactCheckParams) (*domain.FactCheckResult, error)
}

// ResearchRecord is the envelope for a standalone research run.
type ResearchRecord struct {
	ResearchData      domain.ResearchResult `json:"research_data"`
	ResearchTimestamp string                `json:"research_timestamp"`
	Status            domain.Status         `json:"status"`
}

// FactCheckRecord is the envelope for a fact-checking run.
type FactCheckRecord struct {
	FactCheckData      domain.FactCheckResult `json:"fact_check_data"`
	Content            string                 `json:"content"`
	FactCheckTimestamp string                 `json:"fact_check_timestamp"`
	Status             domain.Status          `json:"status"`
}

// ResearchService exposes the research steps as single-step workflows.
type ResearchService struct {
	research ResearchProvider
	logger   *zap.Logger
	defaults domain.Defaults
	now      func() time.Time
}

func NewResearchService(research ResearchProvider, logger *zap.Logger, defaults domain.Defaults) *ResearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResearchService{
		research: research,
		logger:   logger,
		defaults: defaults,
		now:      time.Now,
	}
}

func (s *ResearchService) ResearchTopic(ctx context.Context, req domain.ContentRequest) (*ResearchRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Sanitize(s.defaults)

	result, err := s.research.ResearchTopic(ctx, agent.ResearchParams{
		Topic:          req.Topic,
		ResearchDepth:  req.ResearchDepth,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("research task completed", zap.String("topic", req.Topic))

	return &ResearchRecord{
		ResearchData:      *result,
		ResearchTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:            domain.StatusResearched,
	}, nil
}

type FactCheckRequest struct {
	Content string `json:"content"`
	Topic   string `json:"topic"`
}

func (s *ResearchService) FactCheckContent(ctx context.Context, req FactCheckRequest) (*FactCheckRecord, error) {
	result, err := s.research.FactCheckContent(ctx, agent.FactCheckParams{
		Content: req.Content,
		Topic:   req.Topic,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("fact check task completed",
		zap.String("topic", req.Topic),
		zap.Int("corrections", len(result.Corrections)),
	)

	return &FactCheckRecord{
		FactCheckData:      *result,
		Content:            req.Content,
		FactCheckTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:             domain.StatusFactChecked,
	}, nil
}
