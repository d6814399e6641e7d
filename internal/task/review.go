package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"contentstudio/internal/agent"
	"contentstudio/internal/domain"
)

type Reviewer interface {
	ReviewContent(ctx context.Context, p agent.ReviewParams) (*domain.ReviewResult, error)
	ImproveContent(ctx context.Context, p agent.ImproveParams) (string, error)
}

// ReviewRecord is the envelope for a content review run.
type ReviewRecord struct {
	ReviewData      domain.ReviewResult `json:"review_data"`
	ContentOriginal string              `json:"content_original"`
	ReviewTimestamp string              `json:"review_timestamp"`
	Status          domain.Status       `json:"status"`
}

// ImproveRecord is the envelope for a content improvement run.
type ImproveRecord struct {
	OriginalContent      string        `json:"original_content"`
	ImprovedContent      string        `json:"improved_content"`
	ImprovementTimestamp string        `json:"improvement_timestamp"`
	Status               domain.Status `json:"status"`
}

type ReviewService struct {
	editor   Reviewer
	logger   *zap.Logger
	defaults domain.Defaults
	now      func() time.Time
}

func NewReviewService(editor Reviewer, logger *zap.Logger, defaults domain.Defaults) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		editor:   editor,
		logger:   logger,
		defaults: defaults,
		now:      time.Now,
	}
}

type ReviewRequest struct {
	Content        string   `json:"content"`
	ContentType    string   `json:"content_type"`
	TargetAudience string   `json:"target_audience"`
	ReviewFocus    []string `json:"review_focus,omitempty"`
}

func (s *ReviewService) ReviewContent(ctx context.Context, req ReviewRequest) (*ReviewRecord, error) {
	if req.ContentType == "" {
		req.ContentType = s.defaults.ContentType
	}
	if req.TargetAudience == "" {
		req.TargetAudience = s.defaults.TargetAudience
	}

	result, err := s.editor.ReviewContent(ctx, agent.ReviewParams{
		Content:        req.Content,
		ContentType:    req.ContentType,
		TargetAudience: req.TargetAudience,
		Focus:          req.ReviewFocus,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("review task completed",
		zap.Int("content_length", len(req.Content)),
		zap.Int("suggestions", len(result.Suggestions)),
	)

	return &ReviewRecord{
		ReviewData:      *result,
		ContentOriginal: req.Content,
		ReviewTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:          domain.StatusReviewed,
	}, nil
}

type ImproveRequest struct {
	Content          string   `json:"content"`
	ImprovementAreas []string `json:"improvement_areas,omitempty"`
}

func (s *ReviewService) ImproveContent(ctx context.Context, req ImproveRequest) (*ImproveRecord, error) {
	improved, err := s.editor.ImproveContent(ctx, agent.ImproveParams{
		Content:          req.Content,
		ImprovementAreas: req.ImprovementAreas,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("improvement task completed",
		zap.Int("original_length", len(req.Content)),
		zap.Int("improved_length", len(improved)),
	)

	return &ImproveRecord{
		OriginalContent:      req.Content,
		ImprovedContent:      improved,
		ImprovementTimestamp: s.now().UTC().Format(time.RFC3339),
		Status:               domain.StatusImproved,
	}, nil
}
