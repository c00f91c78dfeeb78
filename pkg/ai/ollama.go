package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// ollamaClient реализует Client через нативный ollama/api.
type ollamaClient struct {
	client  *api.Client
	model   string
	timeout time.Duration
}

// newOllamaClient создает клиент для локального инстанса Ollama.
// api.NewClient требует URL без суффикса /v1.
func newOllamaClient(cfg Config) (Client, error) {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/v1")
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга Ollama Base URL '%s': %w", baseURL, err)
	}

	client := api.NewClient(parsedURL, &http.Client{Timeout: cfg.Timeout})
	log.Info().Str("baseURL", baseURL).Str("model", cfg.Model).Dur("timeout", cfg.Timeout).Msg("Ollama клиент создан")

	return &ollamaClient{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateText выполняет один chat запрос к Ollama без стриминга.
func (c *ollamaClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string, params GenerationParams) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", fmt.Errorf("%w: пустой пользовательский промпт", ErrGenerationFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stream := false
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": params.Temperature,
			"num_predict": params.MaxTokens,
		},
	}

	start := time.Now()
	var resp api.ChatResponse
	err := c.client.Chat(ctx, req, func(r api.ChatResponse) error {
		resp = r // Сохраняем последний (полный) ответ
		return nil
	})
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error().Err(err).Dur("timeout", c.timeout).Str("model", c.model).Msg("Таймаут запроса к Ollama")
		} else {
			log.Error().Err(err).Dur("duration", duration).Str("model", c.model).Msg("Ошибка от Ollama API")
		}
		observeRequest(c.model, "error", duration)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if resp.Message.Content == "" {
		log.Warn().Dur("duration", duration).Str("model", c.model).Msg("Ollama API вернул пустой ответ")
		observeRequest(c.model, "error_empty_response", duration)
		return "", fmt.Errorf("%w: получен пустой ответ", ErrGenerationFailed)
	}

	observeRequest(c.model, "success", duration)
	observeTokens(c.model, resp.PromptEvalCount, resp.EvalCount)

	log.Info().
		Dur("duration", duration).
		Str("model", c.model).
		Int("responseLength", len(resp.Message.Content)).
		Msg("Ответ от Ollama API получен")

	return resp.Message.Content, nil
}
