package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quiz-relay/internal/domain"
	"quiz-relay/internal/dto"
	"quiz-relay/internal/handler"
	"quiz-relay/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockQuizService struct {
	GenerateQuizFunc func(ctx context.Context, keyword string) ([]byte, error)
	calls            int
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, keyword string) ([]byte, error) {
	m.calls++
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, keyword)
	}
	panic("MockQuizService.GenerateQuizFunc not implemented")
}

func newTestApp(svc *MockQuizService) *fiber.App {
	quizHandler := handler.NewQuizHandler(svc)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Post("/api/generate", quizHandler.GenerateQuiz)
	app.All("/api/generate", quizHandler.MethodNotAllowed)
	app.Get("/healthz", handler.Health)
	return app
}

func postGenerate(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return b
}

func TestQuizHandler_GenerateQuiz_MissingKeyword(t *testing.T) {
	bodies := map[string]string{
		"empty object":   `{}`,
		"empty keyword":  `{"keyword":""}`,
		"null keyword":   `{"keyword":null}`,
		"malformed json": `{"keyword":`,
		"wrong type":     `{"keyword":42}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			svc := &MockQuizService{GenerateQuizFunc: func(ctx context.Context, keyword string) ([]byte, error) {
				return nil, domain.NewKeywordRequiredError()
			}}
			resp := postGenerate(t, newTestApp(svc), body)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, `{"error":"keyword is required"}`, string(readBody(t, resp)))
		})
	}
}

func TestQuizHandler_GenerateQuiz_RejectedBeforeService(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
	}{
		{"upper-case member", fiber.MIMEApplicationJSON, `{"KEYWORD":"徳川家康"}`},
		{"title-case member", fiber.MIMEApplicationJSON, `{"Keyword":"徳川家康"}`},
		{"json array", fiber.MIMEApplicationJSON, `["徳川家康"]`},
		{"form body", fiber.MIMEApplicationForm, "keyword=徳川家康"},
		{"plain text", fiber.MIMETextPlain, `{"keyword":"徳川家康"}`},
		{"no content type", "", `{"keyword":"徳川家康"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockQuizService{}
			req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			resp, err := newTestApp(svc).Test(req)
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, `{"error":"keyword is required"}`, string(readBody(t, resp)))
			assert.Zero(t, svc.calls)
		})
	}
}

func TestQuizHandler_GenerateQuiz_JSONWithCharset(t *testing.T) {
	var gotKeyword string
	svc := &MockQuizService{GenerateQuizFunc: func(ctx context.Context, keyword string) ([]byte, error) {
		gotKeyword = keyword
		return []byte(`{}`), nil
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"keyword":"源頼朝","extra":1}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := newTestApp(svc).Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "源頼朝", gotKeyword)
}

func TestQuizHandler_GenerateQuiz_RelaysUpstreamBody(t *testing.T) {
	upstream := []byte(`{"question":"...","answerOptions":[{"text":"徳川家康","isCorrect":true,"rationale":"..."}],"keyword_explanation":"..."}`)
	var gotKeyword string
	svc := &MockQuizService{GenerateQuizFunc: func(ctx context.Context, keyword string) ([]byte, error) {
		gotKeyword = keyword
		return upstream, nil
	}}

	resp := postGenerate(t, newTestApp(svc), `{"keyword":"徳川家康"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get("Content-Type"))
	assert.Equal(t, upstream, readBody(t, resp))
	assert.Equal(t, "徳川家康", gotKeyword)
}

func TestQuizHandler_GenerateQuiz_UpstreamFailure(t *testing.T) {
	svc := &MockQuizService{GenerateQuizFunc: func(ctx context.Context, keyword string) ([]byte, error) {
		return nil, domain.NewLLMServiceError(errors.New("dial tcp 127.0.0.1:1: connect: connection refused"))
	}}

	resp := postGenerate(t, newTestApp(svc), `{"keyword":"徳川家康"}`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &out))
	assert.Equal(t, "dial tcp 127.0.0.1:1: connect: connection refused", out.Error)
}

func TestQuizHandler_GenerateQuiz_EachCallReachesService(t *testing.T) {
	svc := &MockQuizService{GenerateQuizFunc: func(ctx context.Context, keyword string) ([]byte, error) {
		return []byte(`{}`), nil
	}}
	app := newTestApp(svc)

	for i := 0; i < 2; i++ {
		resp := postGenerate(t, app, `{"keyword":"織田信長"}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 2, svc.calls)
}

func TestQuizHandler_MethodNotAllowed(t *testing.T) {
	svc := &MockQuizService{}
	app := newTestApp(svc)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(method, "/api/generate", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
			assert.Equal(t, http.MethodPost, resp.Header.Get("Allow"))
			assert.JSONEq(t, `{"error":"Method not allowed"}`, string(readBody(t, resp)))
		})
	}
	assert.Zero(t, svc.calls)
}

func TestHealth(t *testing.T) {
	resp, err := newTestApp(&MockQuizService{}).Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(readBody(t, resp)))
}
