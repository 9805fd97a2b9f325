package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Validate reports a missing or empty message.
func (r *ChatRequest) Validate() error {
	return validate.Struct(r)
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatErrorResponse always carries renderable text next to the error.
type ChatErrorResponse struct {
	Error    string `json:"error"`
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	GroqEnabled bool   `json:"groqEnabled"`
}
