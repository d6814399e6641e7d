package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"contentstudio/internal/domain"
	"contentstudio/internal/llm"
	"contentstudio/internal/metrics"
	"contentstudio/internal/ratelimit"
	"contentstudio/internal/task"
)

const apiKeyHeader = "X-API-Key"

// Service interfaces are declared here so handler tests can stub them.
type ContentCreator interface {
	CreateContent(ctx context.Context, req domain.ContentRequest) (*domain.ContentRecord, error)
}

type TopicResearcher interface {
	ResearchTopic(ctx context.Context, req domain.ContentRequest) (*task.ResearchRecord, error)
	FactCheckContent(ctx context.Context, req task.FactCheckRequest) (*task.FactCheckRecord, error)
}

type ContentReviewer interface {
	ReviewContent(ctx context.Context, req task.ReviewRequest) (*task.ReviewRecord, error)
	ImproveContent(ctx context.Context, req task.ImproveRequest) (*task.ImproveRecord, error)
}

type KeywordPlanner interface {
	SuggestKeywords(ctx context.Context, req domain.ContentRequest) (*task.KeywordRecord, error)
	OptimizeContent(ctx context.Context, req task.OptimizeRequest) (*task.SEORecord, error)
	GenerateMetaTags(ctx context.Context, req task.MetaTagRequest) (*task.MetaTagRecord, error)
}

type IdeaGenerator interface {
	GenerateIdeas(ctx context.Context, req task.IdeaRequest) (*task.IdeaRecord, error)
	BrainstormHeadlines(ctx context.Context, req task.HeadlineRequest) (*task.HeadlineRecord, error)
}

type Deps struct {
	Content   ContentCreator
	Research  TopicResearcher
	Review    ContentReviewer
	SEO       KeywordPlanner
	Ideation  IdeaGenerator
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Limiter   *ratelimit.Limiter
	SecretKey string
}

type Server struct {
	content   ContentCreator
	research  TopicResearcher
	review    ContentReviewer
	seo       KeywordPlanner
	ideation  IdeaGenerator
	logger    *zap.Logger
	metrics   *metrics.Metrics
	limiter   *ratelimit.Limiter
	secretKey string
}

func New(deps Deps) (*Server, error) {
	if deps.Content == nil {
		return nil, errors.New("content service required")
	}
	if deps.SecretKey == "" {
		return nil, errors.New("secret key required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Server{
		content:   deps.Content,
		research:  deps.Research,
		review:    deps.Review,
		seo:       deps.SEO,
		ideation:  deps.Ideation,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		limiter:   deps.Limiter,
		secretKey: deps.SecretKey,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())

	mux.Handle("POST /content/create", s.api("content_create", s.handleContentCreate))
	mux.Handle("POST /content/research", s.api("content_research", s.handleContentResearch))
	mux.Handle("POST /content/fact-check", s.api("content_fact_check", s.handleContentFactCheck))
	mux.Handle("POST /content/review", s.api("content_review", s.handleContentReview))
	mux.Handle("POST /content/improve", s.api("content_improve", s.handleContentImprove))
	mux.Handle("POST /content/keywords", s.api("content_keywords", s.handleContentKeywords))
	mux.Handle("POST /content/optimize", s.api("content_optimize", s.handleContentOptimize))
	mux.Handle("POST /content/meta-tags", s.api("content_meta_tags", s.handleContentMetaTags))
	mux.Handle("POST /content/ideas", s.api("content_ideas", s.handleContentIdeas))
	mux.Handle("POST /content/headlines", s.api("content_headlines", s.handleContentHeadlines))

	return s.withRequestID(mux)
}

// api chains auth, rate limiting, access logging and metrics around a
// JSON handler.
func (s *Server) api(endpoint string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		key := r.Header.Get(apiKeyHeader)
		if key != s.secretKey {
			s.logger.Warn("rejected request",
				zap.String("endpoint", endpoint),
				zap.String("reason", "invalid api key"),
			)
			s.record(endpoint, "unauthorized", start)
			writeError(w, http.StatusUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		if s.limiter != nil {
			caller := callerKey(r)
			if !s.limiter.Allow(caller) {
				if s.metrics != nil {
					s.metrics.RecordRateLimitHit()
				}
				s.record(endpoint, "rate_limited", start)
				w.Header().Set("X-RateLimit-Remaining", "0")
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(s.limiter.RemainingRequests(caller)))
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)

		s.record(endpoint, strconv.Itoa(rec.status), start)
		s.logger.Info("request handled",
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestIDFrom(r)),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) record(endpoint, status string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordRequest(endpoint, status, time.Since(start))
	}
}

type requestIDKey struct{}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// callerKey identifies a caller for rate limiting: the API key when
// present, otherwise the remote host.
func callerKey(r *http.Request) string {
	if key := r.Header.Get(apiKeyHeader); key != "" {
		return key
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps pipeline failures onto HTTP statuses: validation
// errors are the client's fault, completion failures are the upstream's.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyTopic),
		errors.Is(err, domain.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, llm.ErrAuthFailed),
		errors.Is(err, llm.ErrRateLimit),
		errors.Is(err, llm.ErrEmptyResponse),
		errors.Is(err, llm.ErrRequestFailed):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, err.Error())
	default:
		s.logger.Error("unexpected service error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
