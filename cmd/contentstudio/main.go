package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"contentstudio/internal/agent"
	"contentstudio/internal/config"
	"contentstudio/internal/domain"
	"contentstudio/internal/llm"
	"contentstudio/internal/llm/mock"
	"contentstudio/internal/llm/openai"
	"contentstudio/internal/llm/openrouter"
	"contentstudio/internal/metrics"
	"contentstudio/internal/ratelimit"
	"contentstudio/internal/server"
	"contentstudio/internal/task"
)

func main() {
	root := &cobra.Command{
		Use:   "contentstudio",
		Short: "Multi-agent content creation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	client, err := newLLMClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("init llm client: %w", err)
	}

	defaults := contentDefaults(cfg)
	m := metrics.New()
	client = llm.WithMetrics(client, cfg.LLM.Provider, m)

	researchAgent := agent.NewResearchAgent(client, logger)
	writerAgent := agent.NewWriterAgent(client, logger)
	editorAgent := agent.NewEditorAgent(client, logger)
	seoAgent := agent.NewSEOAgent(client, logger)
	creativeAgent := agent.NewCreativeAgent(client, logger)

	contentSvc := task.NewContentService(task.ContentServiceDeps{
		Research: researchAgent,
		Writer:   writerAgent,
		Logger:   logger,
		Metrics:  m,
		Defaults: defaults,
	})

	srv, err := server.New(server.Deps{
		Content:   contentSvc,
		Research:  task.NewResearchService(researchAgent, logger, defaults),
		Review:    task.NewReviewService(editorAgent, logger, defaults),
		SEO:       task.NewSEOService(seoAgent, logger, defaults),
		Ideation:  task.NewIdeationService(creativeAgent, logger, defaults),
		Logger:    logger,
		Metrics:   m,
		Limiter:   ratelimit.New(ratelimit.Config{RequestsPerMinute: cfg.RateLimit.RequestsPerMinute}),
		SecretKey: cfg.Security.SecretKey,
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Routes(),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("provider", cfg.LLM.Provider),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}

func newLLMClient(cfg *config.Config, logger *zap.Logger) (llm.Client, error) {
	switch cfg.LLM.Provider {
	case "openai":
		return openai.New(openai.Config{
			APIKey:  cfg.LLM.OpenAI.APIKey,
			Model:   cfg.LLM.OpenAI.Model,
			BaseURL: cfg.LLM.OpenAI.BaseURL,
			Timeout: cfg.LLM.Timeout,
		}, logger)
	case "openrouter":
		return openrouter.New(openrouter.Config{
			APIKey:  cfg.LLM.OpenRouter.APIKey,
			Model:   cfg.LLM.OpenRouter.Model,
			BaseURL: cfg.LLM.OpenRouter.BaseURL,
			Timeout: cfg.LLM.Timeout,
		}, logger), nil
	case "mock":
		logger.Warn("using mock llm client, responses are canned")
		return mock.New(), nil
	default:
		return nil, config.ErrUnknownProvider
	}
}

func contentDefaults(cfg *config.Config) domain.Defaults {
	return domain.Defaults{
		ContentType:    cfg.Defaults.ContentType,
		TargetAudience: cfg.Defaults.TargetAudience,
		WordCount:      cfg.Defaults.WordCount,
		Tone:           cfg.Defaults.Tone,
		ResearchDepth:  cfg.Defaults.ResearchDepth,
	}
}
