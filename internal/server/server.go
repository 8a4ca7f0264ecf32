package server

import (
	"net/http"
	"time"

	_ "quiz-relay/docs"
	"quiz-relay/internal/config"
	"quiz-relay/internal/handler"
	"quiz-relay/internal/middleware"
	"quiz-relay/internal/service"
	"quiz-relay/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const bodyLimit = 1 * 1024 * 1024

// Dependencies are the collaborators the HTTP surface needs.
type Dependencies struct {
	Config      *config.Config
	QuizService service.QuizService
	// LimiterStorage backs the rate limiter; nil keeps counters in memory.
	LimiterStorage fiber.Storage
}

// NewApp builds the Fiber application shared by the server and the serverless entry point.
func NewApp(deps Dependencies) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		AppName:      "quiz-relay",
		ReadTimeout:  durationOr(cfg.Server.ReadTimeout, 20*time.Second),
		WriteTimeout: durationOr(cfg.Server.WriteTimeout, 20*time.Second),
		IdleTimeout:  20 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/healthz", handler.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	quizHandler := handler.NewQuizHandler(deps.QuizService)
	apiGroup := app.Group("/api")
	apiGroup.Post("/generate",
		middleware.RateLimit(cfg.RateLimit.Max, cfg.RateLimit.Expiration, deps.LimiterStorage),
		quizHandler.GenerateQuiz,
	)
	apiGroup.All("/generate", quizHandler.MethodNotAllowed)

	app.Use("/", filesystem.New(filesystem.Config{
		Root:       http.FS(web.Assets),
		PathPrefix: web.StaticDir,
	}))

	return app
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
