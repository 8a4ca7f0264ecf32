package server

import (
	"net/http"

	"quiz-relay/internal/adapter"
	"quiz-relay/internal/adapter/quizgen"
	"quiz-relay/internal/cache"
	"quiz-relay/internal/config"
	"quiz-relay/internal/logger"
	"quiz-relay/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewQuizService wires the prompt builder and the upstream generator.
// The HTTP client keeps its defaults: no timeout override, no retries.
func NewQuizService(cfg *config.Config) (service.QuizService, error) {
	generator, err := quizgen.NewGeminiQuizGenerator(&http.Client{}, cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.APIKey, logger.Get())
	if err != nil {
		return nil, err
	}
	if cfg.Gemini.APIKey == "" {
		logger.Get().Warn("GEN_API_KEY is empty; upstream calls will fail authentication")
	}
	return service.NewQuizService(quizgen.NewQuizPromptBuilder(), generator), nil
}

// NewLimiterStorage returns Redis-backed limiter storage when rate limiting
// and Redis are both configured. Otherwise it returns nil (in-memory counters).
// The returned close func is always safe to call.
func NewLimiterStorage(cfg *config.Config) (fiber.Storage, func(), error) {
	noop := func() {}
	if cfg.RateLimit.Max <= 0 || cfg.Redis.Address == "" {
		return nil, noop, nil
	}

	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, noop, err
	}
	logger.Get().Info("Rate limiter using Redis", zap.String("address", cfg.Redis.Address))

	storage := adapter.NewRedisStorage(client, cache.GenerateCacheKey("relay", "ratelimit", ""))
	return storage, func() {
		if err := client.Close(); err != nil {
			logger.Get().Warn("Failed to close Redis client", zap.Error(err))
		}
	}, nil
}

// Build assembles the full application from configuration.
func Build(cfg *config.Config) (*fiber.App, func(), error) {
	quizService, err := NewQuizService(cfg)
	if err != nil {
		return nil, nil, err
	}
	storage, closeStorage, err := NewLimiterStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	app := NewApp(Dependencies{
		Config:         cfg,
		QuizService:    quizService,
		LimiterStorage: storage,
	})
	return app, closeStorage, nil
}
