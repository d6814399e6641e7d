package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"contentstudio/internal/agent"
	"contentstudio/internal/domain"
)

// SEOProvider is what the SEO workflows need from the agent: keyword
// suggestion, content optimization and meta tag generation.
type SEOProvider interface {
	SuggestKeywords(ctx context.Context, p agent.KeywordParams) (*domain.KeywordPlan, error)
	OptimizeContent(ctx context.Context, p agent.OptimizeParams) (*domain.SEOResult, error)
	GenerateMetaTags(ctx context.Context, p agent.MetaTagParams) (*domain.MetaTags, error)
}

// KeywordRecord is the envelope for a keyword suggestion run.
type KeywordRecord struct {
	KeywordData         domain.KeywordPlan `json:"keyword_data"`
	Topic               string             `json:"topic"`
	SuggestionTimestamp string             `json:"suggestion_timestamp"`
	Status              domain.Status      `json:"status"`
}

// SEORecord is the envelope for a content optimization run.
type SEORecord struct {
	SEOData               domain.SEOResult `json:"seo_data"`
	OriginalContent       string           `json:"original_content"`
	OptimizationTimestamp string           `json:"optimization_timestamp"`
	Status                domain.Status    `json:"status"`
}

// MetaTagRecord is the envelope for a meta tag generation run.
type MetaTagRecord struct {
	MetaTags            domain.MetaTags `json:"meta_tags"`
	Content             string          `json:"content"`
	GenerationTimestamp string          `json:"generation_timestamp"`
	Status              domain.Status   `json:"status"`
}

type SEOService struct {
	seo      SEOProvider
	logger   *zap.Logger
	defaults domain.Defaults
	now      func() time.Time
}

func NewSEOService(seo SEOProvider, logger *zap.Logger, defaults domain.Defaults) *SEOService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SEOService{
		seo:      seo,
		logger:   logger,
		defaults: defaults,
		now:      time.Now,
	}
}

func (s *SEOService) SuggestKeywords(ctx context.Context, req domain.ContentRequest) (*KeywordRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Sanitize(s.defaults)

	plan, err := s.seo.SuggestKeywords(ctx, agent.KeywordParams{
		Topic:          req.Topic,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("keyword task completed", zap.String("topic", req.Topic))

	return &KeywordRecord{
		KeywordData:         *plan,
		Topic:               req.Topic,
		SuggestionTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:              domain.StatusKeywordsGenerated,
	}, nil
}

type OptimizeRequest struct {
	Content        string   `json:"content"`
	TargetKeywords []string `json:"target_keywords"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
}

func (s *SEOService) OptimizeContent(ctx context.Context, req OptimizeRequest) (*SEORecord, error) {
	if req.ContentType == "" {
		req.ContentType = s.defaults.ContentType
	}
	if req.TargetAudience == "" {
		req.TargetAudience = s.defaults.TargetAudience
	}

	result, err := s.seo.OptimizeContent(ctx, agent.OptimizeParams{
		Content:        req.Content,
		TargetKeywords: req.TargetKeywords,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("optimization task completed",
		zap.Int("content_length", len(req.Content)),
		zap.Int("target_keywords", len(req.TargetKeywords)),
	)

	return &SEORecord{
		SEOData:               *result,
		OriginalContent:       req.Content,
		OptimizationTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:                domain.StatusOptimized,
	}, nil
}

type MetaTagRequest struct {
	Content        string   `json:"content"`
	TargetKeywords []string `json:"target_keywords"`
	ContentType    string   `json:"content_type"`
}

func (s *SEOService) GenerateMetaTags(ctx context.Context, req MetaTagRequest) (*MetaTagRecord, error) {
	if req.ContentType == "" {
		req.ContentType = s.defaults.ContentType
	}

	tags, err := s.seo.GenerateMetaTags(ctx, agent.MetaTagParams{
		Content:        req.Content,
		TargetKeywords: req.TargetKeywords,
		ContentType:    req.ContentType,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("meta tag task completed", zap.Int("content_length", len(req.Content)))

	return &MetaTagRecord{
		MetaTags:            *tags,
		Content:             req.Content,
		GenerationTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:              domain.StatusMetaTagsGenerated,
	}, nil
}
