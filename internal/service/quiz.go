package service

import (
	"context"

	"quiz-relay/internal/domain"
	"quiz-relay/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the quiz relay operation
type QuizService interface {
	// GenerateQuiz builds the prompt for keyword, calls the upstream API once
	// and returns its body unmodified.
	GenerateQuiz(ctx context.Context, keyword string) ([]byte, error)
}

// quizService implements QuizService
type quizService struct {
	prompts   domain.PromptBuilder
	generator domain.QuizGenerator
}

// NewQuizService creates a new instance of quizService
func NewQuizService(prompts domain.PromptBuilder, generator domain.QuizGenerator) QuizService {
	return &quizService{
		prompts:   prompts,
		generator: generator,
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, keyword string) ([]byte, error) {
	if keyword == "" {
		return nil, domain.NewKeywordRequiredError()
	}

	prompt, err := s.prompts.Build(keyword)
	if err != nil {
		return nil, domain.NewInternalError("Failed to build quiz prompt", err)
	}

	body, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Get().Error("Upstream quiz generation failed",
			zap.String("keyword", keyword),
			zap.Error(err),
		)
		return nil, domain.NewLLMServiceError(err)
	}

	logger.Get().Debug("Upstream quiz generation succeeded",
		zap.String("keyword", keyword),
		zap.Int("body_bytes", len(body)),
	)
	return body, nil
}
