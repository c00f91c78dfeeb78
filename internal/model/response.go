package model

// Коды ошибок для API ответов
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeGenreNotFound = "GENRE_NOT_FOUND"
	ErrCodeEmptyContent  = "EMPTY_CONTENT"
	ErrCodeAIConfig      = "AI_CONFIG_ERROR"
	ErrCodeGeneration    = "GENERATION_FAILED"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
