package handler

import (
	"encoding/json"

	"quiz-relay/internal/domain"
	"quiz-relay/internal/dto"
	"quiz-relay/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a history quiz
// @Description Builds a quiz prompt for the keyword, sends it to the generative-language API and returns the API response unmodified
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Keyword"
// @Success 200 {object} object "Raw upstream response"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	if !c.Is("json") {
		return domain.NewKeywordRequiredError()
	}
	req, err := parseGenerateQuizRequest(c.Body())
	if err != nil {
		return domain.NewKeywordRequiredError()
	}

	body, err := h.service.GenerateQuiz(c.UserContext(), req.Keyword)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

// parseGenerateQuizRequest reads only the exact "keyword" member. A missing
// or null member leaves Keyword empty.
func parseGenerateQuizRequest(body []byte) (dto.GenerateQuizRequest, error) {
	var req dto.GenerateQuizRequest
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return req, err
	}
	raw, ok := fields["keyword"]
	if !ok {
		return req, nil
	}
	if err := json.Unmarshal(raw, &req.Keyword); err != nil {
		return req, err
	}
	return req, nil
}

// MethodNotAllowed rejects any non-POST call to the generate route.
func (h *QuizHandler) MethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return domain.NewMethodNotAllowedError()
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
