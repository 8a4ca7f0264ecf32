package dto

// GenerateQuizRequest is the body of POST /api/generate
// @Description Keyword for which a quiz is generated
type GenerateQuizRequest struct {
	Keyword string `json:"keyword" example:"徳川家康"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error" example:"keyword is required"`
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
