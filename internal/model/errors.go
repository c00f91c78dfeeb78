package model

import "errors"

// Application-wide standard errors
var (
	// General Request/Server Errors
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidInput   = errors.New("invalid input data")
	ErrInternalServer = errors.New("internal server error")

	// Content Errors
	ErrEmptyContent = errors.New("content is empty")

	// Genre Errors
	ErrGenreNotFound = errors.New("genre not found")

	// AI Configuration Errors
	ErrAPIKeyMissing = errors.New("AI API key is missing or a placeholder")
)
