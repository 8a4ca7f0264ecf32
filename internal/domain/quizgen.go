package domain

import "context"

// QuizGenerator sends a rendered prompt to the upstream generative-language
// API and returns the response body untouched.
type QuizGenerator interface {
	GenerateContent(ctx context.Context, prompt string) ([]byte, error)
}

// PromptBuilder renders the quiz prompt for a keyword.
type PromptBuilder interface {
	Build(keyword string) (string, error)
}
