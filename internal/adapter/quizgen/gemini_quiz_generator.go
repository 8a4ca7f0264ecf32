package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quiz-relay/internal/domain"

	"go.uber.org/zap"
)

// APIKeyHeader carries the static upstream secret.
const APIKeyHeader = "X-goog-api-key"

// Fixed generation parameters sent with every request.
const (
	Temperature     = 0.7
	CandidateCount  = 1
	MaxOutputTokens = 500
)

// GenerateContentRequest is the upstream request body.
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	CandidateCount  int     `json:"candidateCount"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// NewGenerateContentRequest wraps prompt in the fixed generation settings.
func NewGenerateContentRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: GenerationConfig{
			Temperature:     Temperature,
			CandidateCount:  CandidateCount,
			MaxOutputTokens: MaxOutputTokens,
		},
	}
}

// GeminiQuizGenerator posts prompts to the generateContent endpoint and
// hands back the response body without decoding it.
type GeminiQuizGenerator struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *zap.Logger
}

// NewGeminiQuizGenerator builds a generator for {baseURL}/models/{model}:generateContent.
// An empty apiKey is accepted; the upstream rejects it.
func NewGeminiQuizGenerator(httpClient *http.Client, baseURL, model, apiKey string, logger *zap.Logger) (*GeminiQuizGenerator, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("Gemini base URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Initializing GeminiQuizGenerator", zap.String("model", model))
	return &GeminiQuizGenerator{
		httpClient: httpClient,
		endpoint:   fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(baseURL, "/"), model),
		apiKey:     apiKey,
		logger:     logger,
	}, nil
}

// Endpoint returns the full upstream URL.
func (g *GeminiQuizGenerator) Endpoint() string {
	return g.endpoint
}

// GenerateContent performs exactly one POST. Any transport failure, non-2xx
// status or non-JSON body is returned as an error. A valid body is returned
// byte-for-byte.
func (g *GeminiQuizGenerator) GenerateContent(ctx context.Context, prompt string) ([]byte, error) {
	payload, err := json.Marshal(NewGenerateContentRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to encode upstream request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(APIKeyHeader, g.apiKey)

	g.logger.Debug("Calling upstream generateContent", zap.String("endpoint", g.endpoint), zap.Int("prompt_len", len(prompt)))

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Warn("Upstream returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(body, 512)),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: g.endpoint}
	}

	if !json.Valid(body) {
		g.logger.Warn("Upstream returned a non-JSON body", zap.ByteString("body", truncate(body, 512)))
		return nil, ErrInvalidUpstreamJSON
	}

	return body, nil
}

// ErrInvalidUpstreamJSON is returned when a 2xx response body is not valid JSON.
var ErrInvalidUpstreamJSON = errors.New("invalid JSON in upstream response")

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	kind := "Server Error"
	if e.StatusCode < 500 {
		kind = "Client Error"
	}
	return fmt.Sprintf("%d %s: %s for url: %s", e.StatusCode, kind, http.StatusText(e.StatusCode), e.URL)
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

var _ domain.QuizGenerator = (*GeminiQuizGenerator)(nil)
