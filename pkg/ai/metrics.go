package ai

import (
	"time"

	"github.com/pkoukk/tiktoken-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyweave_ai_requests_total",
			Help: "Total number of requests to the AI API.",
		},
		[]string{"model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storyweave_ai_request_duration_seconds",
			Help:    "Histogram of AI API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
	aiPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storyweave_ai_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(250, 250, 20), // 250, 500, ..., 5000
		},
		[]string{"model"},
	)
	aiCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storyweave_ai_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20), // 100, 200, ..., 2000
		},
		[]string{"model"},
	)
)

// observeRequest обновляет счетчик запросов и гистограмму длительности.
func observeRequest(model, status string, duration time.Duration) {
	aiRequestsTotal.With(prometheus.Labels{"model": model, "status": status}).Inc()
	if status == "success" {
		aiRequestDuration.With(prometheus.Labels{"model": model}).Observe(duration.Seconds())
	}
}

// observeTokens обновляет гистограммы токенов, если значения известны.
func observeTokens(model string, promptTokens, completionTokens int) {
	if promptTokens > 0 {
		aiPromptTokens.With(prometheus.Labels{"model": model}).Observe(float64(promptTokens))
	}
	if completionTokens > 0 {
		aiCompletionTokens.With(prometheus.Labels{"model": model}).Observe(float64(completionTokens))
	}
}

// estimateTokens оценивает количество токенов в тексте через tiktoken.
// Для моделей, неизвестных tiktoken, возвращает 0 - метрика просто не
// обновится, на генерацию это не влияет.
func estimateTokens(model, text string) int {
	if text == "" {
		return 0
	}
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		tke, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return 0
		}
	}
	return len(tke.Encode(text, nil, nil))
}
