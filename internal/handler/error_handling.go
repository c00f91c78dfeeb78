package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/pkg/ai"
)

// handleServiceError переводит ошибки сервисного слоя в HTTP-ответы.
func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp model.ErrorResponse

	switch {
	case errors.Is(err, model.ErrGenreNotFound):
		statusCode = http.StatusNotFound
		errResp = model.ErrorResponse{Code: model.ErrCodeGenreNotFound, Message: "Genre not found"}
	case errors.Is(err, model.ErrEmptyContent):
		statusCode = http.StatusBadRequest
		errResp = model.ErrorResponse{Code: model.ErrCodeEmptyContent, Message: "Content must not be empty"}
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrBadRequest):
		statusCode = http.StatusBadRequest
		errResp = model.ErrorResponse{Code: model.ErrCodeBadRequest, Message: err.Error()}
	case errors.Is(err, model.ErrAPIKeyMissing):
		statusCode = http.StatusInternalServerError
		errResp = model.ErrorResponse{Code: model.ErrCodeAIConfig, Message: "AI provider is not configured"}
	case errors.Is(err, ai.ErrGenerationFailed), errors.Is(err, ai.ErrInvalidResponse):
		statusCode = http.StatusBadGateway
		errResp = model.ErrorResponse{Code: model.ErrCodeGeneration, Message: "Story generation failed, please try again"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = model.ErrorResponse{Code: model.ErrCodeInternal, Message: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
