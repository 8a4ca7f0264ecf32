package quizgen

import (
	"fmt"

	"quiz-relay/internal/domain"

	"github.com/tmc/langchaingo/prompts"
)

const keywordVar = "keyword"

// quizPromptTemplate asks for a junior-high history quiz whose correct answer
// is the keyword. The keyword is referenced once, in the 正解は clause.
const quizPromptTemplate = `
中学生向けの歴史クイズを作ってください。
正解は「{{.keyword}}」です。
問題文と3つの選択肢、解説をJSON形式で返してください。
フォーマット例:
{
  "question": "問題文",
  "answerOptions": [
    {"text":"選択肢1","isCorrect":false,"rationale":"不正解の理由"},
    {"text":"選択肢2","isCorrect":true,"rationale":"正解の理由"},
    {"text":"選択肢3","isCorrect":false,"rationale":"不正解の理由"}
  ],
  "keyword_explanation": "キーワードの解説"
}
`

// QuizPromptBuilder renders the fixed quiz template.
type QuizPromptBuilder struct {
	template prompts.PromptTemplate
}

func NewQuizPromptBuilder() *QuizPromptBuilder {
	return &QuizPromptBuilder{
		template: prompts.PromptTemplate{
			Template:       quizPromptTemplate,
			InputVariables: []string{keywordVar},
			TemplateFormat: prompts.TemplateFormatGoTemplate,
		},
	}
}

// Build substitutes keyword into the template. Output is deterministic.
func (b *QuizPromptBuilder) Build(keyword string) (string, error) {
	prompt, err := b.template.Format(map[string]any{keywordVar: keyword})
	if err != nil {
		return "", fmt.Errorf("failed to render quiz prompt: %w", err)
	}
	return prompt, nil
}

var _ domain.PromptBuilder = (*QuizPromptBuilder)(nil)
