package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"contentstudio/internal/agent"
	"contentstudio/internal/domain"
)

type Ideator interface {
	GenerateIdeas(ctx context.Context, p agent.IdeaParams) (*domain.IdeaSet, error)
	BrainstormHeadlines(ctx context.Context, p agent.HeadlineParams) (*domain.HeadlineSet, error)
}

// IdeaRecord is the envelope for a creative ideation run.
type IdeaRecord struct {
	IdeasData         domain.IdeaSet `json:"ideas_data"`
	Topic             string         `json:"topic"`
	IdeationTimestamp string         `json:"ideation_timestamp"`
	Status            domain.Status  `json:"status"`
}

// HeadlineRecord is the envelope for a headline brainstorming run.
type HeadlineRecord struct {
	HeadlinesData      domain.HeadlineSet `json:"headlines_data"`
	Topic              string             `json:"topic"`
	HeadlinesTimestamp string             `json:"headlines_timestamp"`
	Status             domain.Status      `json:"status"`
}

type IdeationService struct {
	creative Ideator
	logger   *zap.Logger
	defaults domain.Defaults
	now      func() time.Time
}

func NewIdeationService(creative Ideator, logger *zap.Logger, defaults domain.Defaults) *IdeationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdeationService{
		creative: creative,
		logger:   logger,
		defaults: defaults,
		now:      time.Now,
	}
}

type IdeaRequest struct {
	Topic           string `json:"topic"`
	ContentType     string `json:"content_type"`
	TargetAudience  string `json:"target_audience"`
	IdeaCount       int    `json:"idea_count"`
	CreativityLevel string `json:"creativity_level"`
}

func (s *IdeationService) GenerateIdeas(ctx context.Context, req IdeaRequest) (*IdeaRecord, error) {
	if req.ContentType == "" {
		req.ContentType = s.defaults.ContentType
	}
	if req.TargetAudience == "" {
		req.TargetAudience = s.defaults.TargetAudience
	}

	ideas, err := s.creative.GenerateIdeas(ctx, agent.IdeaParams{
		Topic:           req.Topic,
		ContentType:     req.ContentType,
		TargetAudience:  req.TargetAudience,
		IdeaCount:       req.IdeaCount,
		CreativityLevel: req.CreativityLevel,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ideation task completed",
		zap.String("topic", req.Topic),
		zap.Int("ideas", len(ideas.Ideas)),
	)

	return &IdeaRecord{
		IdeasData:         *ideas,
		Topic:             req.Topic,
		IdeationTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:            domain.StatusIdeasGenerated,
	}, nil
}

type HeadlineRequest struct {
	Topic         string `json:"topic"`
	ContentType   string `json:"content_type"`
	HeadlineCount int    `json:"headline_count"`
	HeadlineStyle string `json:"headline_style"`
}

func (s *IdeationService) BrainstormHeadlines(ctx context.Context, req HeadlineRequest) (*HeadlineRecord, error) {
	if req.ContentType == "" {
		req.ContentType = s.defaults.ContentType
	}

	headlines, err := s.creative.BrainstormHeadlines(ctx, agent.HeadlineParams{
		Topic:         req.Topic,
		ContentType:   req.ContentType,
		HeadlineCount: req.HeadlineCount,
		HeadlineStyle: req.HeadlineStyle,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("headline task completed",
		zap.String("topic", req.Topic),
		zap.Int("headlines", len(headlines.Headlines)),
	)

	return &HeadlineRecord{
		HeadlinesData:      *headlines,
		Topic:              req.Topic,
		HeadlinesTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:             domain.StatusHeadlinesGenerated,
	}, nil
}
