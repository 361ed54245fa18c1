package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sharkpanel/pitch-agent/internal/config"
	"github.com/sharkpanel/pitch-agent/internal/health"
	"github.com/sharkpanel/pitch-agent/internal/llm"
	"github.com/sharkpanel/pitch-agent/internal/metrics"
	"github.com/sharkpanel/pitch-agent/internal/orchestrator"
	"github.com/sharkpanel/pitch-agent/internal/panel"
	"github.com/sharkpanel/pitch-agent/internal/server"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Setup structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	if os.Getenv("ENVIRONMENT") == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Logger = logger

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Info().
		Str("environment", cfg.Environment).
		Int("http_port", cfg.HTTPPort).
		Str("model", cfg.ModelString()).
		Msg("starting pitch agent")

	// Model backend
	generator, err := buildGenerator(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init model backend")
	}

	// Metrics
	metricsCollector := metrics.New()

	// Health checker
	checker := health.NewChecker(logger)
	checker.Register("model_backend", func(ctx context.Context) health.Status {
		// Configuration presence only; a live probe per readiness poll
		// would burn tokens.
		if generator.ModelID() == "" {
			return health.StatusDown
		}
		return health.StatusOK
	})

	// Judge panel (built-in default unless a panel file is configured)
	var defaultPanel []panel.RoleProfile
	if cfg.PanelConfigPath != "" {
		defaultPanel, err = panel.LoadFile(cfg.PanelConfigPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.PanelConfigPath).Msg("failed to load panel config")
		}
		logger.Info().Int("judges", len(defaultPanel)).Str("path", cfg.PanelConfigPath).Msg("panel loaded from file")
	}

	orch := orchestrator.New(generator, orchestrator.Config{
		GenerateTimeout: cfg.GenerateTimeout,
		DefaultPanel:    defaultPanel,
	}, metricsCollector, logger)

	srv := server.NewServer(server.ServerConfig{
		ListenAddr: fmt.Sprintf(":%d", cfg.HTTPPort),
		AuthConfig: server.AuthConfig{
			Mode:   cfg.AuthMode,
			APIKey: cfg.APIKey,
		},
		RateLimit: server.RateLimitConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		},
		CORSOrigins: cfg.CORSOrigins,
		ModelID:     cfg.ModelString(),
	}, orch, checker, metricsCollector, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down gracefully")
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
		return
	}

	done := make(chan struct{})
	go func() {
		if err := srv.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		logger.Warn().Msg("shutdown timed out")
	}

	logger.Info().Msg("pitch agent stopped")
}

func buildGenerator(cfg *config.Config, logger zerolog.Logger) (llm.Generator, error) {
	switch {
	case cfg.AzureEnabled():
		return llm.NewAzureProvider(
			cfg.AzureAPIKey,
			cfg.AzureEndpoint,
			cfg.AzureDeployment,
			cfg.AzureAPIVersion,
			llm.WithMaxTokens(cfg.MaxTokens),
			llm.WithHTTPClient(&http.Client{Timeout: cfg.GenerateTimeout}),
			llm.WithLogger(logger),
		), nil
	case cfg.OpenAIEnabled():
		return llm.NewOpenAIProvider(
			cfg.OpenAIAPIKey,
			llm.WithModel(cfg.OpenAIModel),
			llm.WithMaxTokens(cfg.MaxTokens),
			llm.WithHTTPClient(&http.Client{Timeout: cfg.GenerateTimeout}),
			llm.WithLogger(logger),
		), nil
	default:
		return nil, fmt.Errorf("no model backend configured for API_TYPE=%q", cfg.APIType)
	}
}
