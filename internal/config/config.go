package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Режимы генерации
const (
	ModeLocal  = "local"  // детерминированные шаблоны, без сети
	ModeRemote = "remote" // делегирование внешнему AI API
)

// Значение ключа, которое оставляют в .env.example; считаем его отсутствием ключа.
const placeholderAPIKey = "your-api-key-here"

// Config содержит конфигурацию сервера генерации историй
type Config struct {
	Env string `envconfig:"ENV" default:"development"`

	// Настройки HTTP сервера
	ServerPort          string `envconfig:"SERVER_PORT" default:"8080"`
	ServerBasePath      string `envconfig:"SERVER_BASE_PATH" default:"/api"`
	ReadTimeoutSeconds  int    `envconfig:"SERVER_READ_TIMEOUT" default:"15"`
	WriteTimeoutSeconds int    `envconfig:"SERVER_WRITE_TIMEOUT" default:"120"`
	IdleTimeoutSeconds  int    `envconfig:"SERVER_IDLE_TIMEOUT" default:"60"`

	// Настройки логирования
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	// CORS
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`

	// Режим генерации: local (шаблоны) или remote (AI API)
	GenerationMode string `envconfig:"GENERATION_MODE" default:"local"`

	// Имитация задержки обработки в локальном режиме, чтобы поведение
	// UI совпадало с удаленным. В тестах ставится в 0.
	StoryDelay    time.Duration `envconfig:"STORY_DELAY" default:"2s"`
	PlaylistDelay time.Duration `envconfig:"PLAYLIST_DELAY" default:"1500ms"`

	// Настройки AI (используются только в remote режиме)
	AIClientType string        `envconfig:"AI_CLIENT_TYPE" default:"openai"` // openai | ollama
	AIBaseURL    string        `envconfig:"AI_BASE_URL" default:"https://openrouter.ai/api/v1"`
	AIModel      string        `envconfig:"AI_MODEL" default:"deepseek/deepseek-chat"`
	AITimeout    time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`
	// Ключ читается только из окружения, дефолта нет намеренно.
	AIAPIKey string `envconfig:"AI_API_KEY"`
}

// Load загружает конфигурацию из переменных окружения и валидирует ее.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	cfg.GenerationMode = strings.ToLower(cfg.GenerationMode)
	if cfg.GenerationMode != ModeLocal && cfg.GenerationMode != ModeRemote {
		return nil, fmt.Errorf("неизвестный режим генерации: '%s' (ожидается local или remote)", cfg.GenerationMode)
	}

	// Отсутствующий или шаблонный ключ - фатальная ошибка конфигурации.
	// Проверяем до любых сетевых вызовов.
	if cfg.GenerationMode == ModeRemote && cfg.AIClientType == "openai" && !cfg.HasValidAPIKey() {
		return nil, fmt.Errorf("remote режим требует AI_API_KEY: ключ отсутствует или является заглушкой")
	}

	return &cfg, nil
}

// IsRemote сообщает, делегируется ли генерация внешнему AI API.
func (c *Config) IsRemote() bool {
	return c.GenerationMode == ModeRemote
}

// HasValidAPIKey проверяет, что ключ задан и не является заглушкой из .env.example.
func (c *Config) HasValidAPIKey() bool {
	key := strings.TrimSpace(c.AIAPIKey)
	return key != "" && key != placeholderAPIKey
}
