package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openaigo "github.com/sashabaranov/go-openai"
)

var log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Str("component", "ai").Logger()

// Ошибки клиента AI
var (
	// ErrGenerationFailed - транспортная ошибка или не-2xx ответ от AI API.
	ErrGenerationFailed = errors.New("ошибка генерации текста AI")
	// ErrInvalidResponse - ответ получен, но не содержит ожидаемой структуры.
	ErrInvalidResponse = errors.New("ответ AI не содержит ожидаемой структуры")
)

// GenerationParams содержит параметры одного запроса генерации.
type GenerationParams struct {
	Temperature float32
	MaxTokens   int
}

// Client интерфейс для взаимодействия с AI API.
// Политика повторов намеренно отсутствует: один неуспешный вызов
// считается терминальным, fallback решается на уровне компонента.
type Client interface {
	// GenerateText отправляет системный и пользовательский промпты
	// и возвращает содержимое первого choice ответа.
	GenerateText(ctx context.Context, systemPrompt, userPrompt string, params GenerationParams) (string, error)
}

// Config содержит конфигурацию для клиента AI
type Config struct {
	ClientType string // openai | ollama
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
}

// --- OpenAI Client Implementation ---

// openAIClient реализует Client через go-openai (chat completions).
type openAIClient struct {
	client  *openaigo.Client
	model   string
	timeout time.Duration
}

// GenerateText выполняет один запрос chat completion без повторов.
func (c *openAIClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string, params GenerationParams) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", fmt.Errorf("%w: пустой пользовательский промпт", ErrGenerationFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	promptTokens := estimateTokens(c.model, systemPrompt) + estimateTokens(c.model, userPrompt)
	log.Debug().
		Str("model", c.model).
		Int("estimatedPromptTokens", promptTokens).
		Float32("temperature", params.Temperature).
		Int("maxTokens", params.MaxTokens).
		Msg("Отправка запроса к AI API")

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model: c.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openaigo.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	duration := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("duration", duration).Str("model", c.model).Msg("Ошибка от AI API")
		observeRequest(c.model, "error", duration)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Warn().Dur("duration", duration).Str("model", c.model).Msg("AI API вернул пустой ответ")
		observeRequest(c.model, "error_empty_response", duration)
		return "", fmt.Errorf("%w: получен пустой ответ", ErrGenerationFailed)
	}

	observeRequest(c.model, "success", duration)
	if resp.Usage.TotalTokens > 0 {
		observeTokens(c.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	} else {
		// Usage пришел пустым - оцениваем токены сами (как и промпт выше).
		observeTokens(c.model, promptTokens, estimateTokens(c.model, resp.Choices[0].Message.Content))
	}

	log.Info().
		Dur("duration", duration).
		Str("model", c.model).
		Int("responseLength", len(resp.Choices[0].Message.Content)).
		Msg("Ответ от AI API получен")

	return resp.Choices[0].Message.Content, nil
}

// --- Factory Function ---

// NewClient создает клиент AI в зависимости от конфигурации.
// Отсутствующий или шаблонный API ключ для OpenAI - ошибка конфигурации,
// обнаруживаемая до каких-либо сетевых вызовов.
func NewClient(cfg Config) (Client, error) {
	if cfg.Model == "" {
		return nil, errors.New("не указана модель AI")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}

	switch strings.ToLower(cfg.ClientType) {
	case "openai":
		if strings.TrimSpace(cfg.APIKey) == "" {
			return nil, errors.New("не указан API ключ для AI API")
		}
		openaiConfig := openaigo.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			openaiConfig.BaseURL = cfg.BaseURL
		}
		openaiConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		client := openaigo.NewClientWithConfig(openaiConfig)
		log.Info().Str("baseURL", openaiConfig.BaseURL).Str("model", cfg.Model).Dur("timeout", cfg.Timeout).Msg("OpenAI клиент создан")
		return &openAIClient{
			client:  client,
			model:   cfg.Model,
			timeout: cfg.Timeout,
		}, nil
	case "ollama":
		return newOllamaClient(cfg)
	default:
		return nil, fmt.Errorf("неизвестный тип AI клиента: '%s'", cfg.ClientType)
	}
}
