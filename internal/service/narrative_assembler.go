package service

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/pkg/ai"
)

// Параметры извлечения цитируемых предложений из исходного текста.
const (
	quoteMinLen   = 20
	quoteMaxLen   = 200
	quoteMaxCount = 10
)

// Слово-заглушка для отсутствующего слота предложения в шаблоне.
const defaultQuote = "Every concept builds upon the ones that came before it."

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// --- Локальная стратегия ---

// localNarrativeStrategy собирает повествование интерполяцией шаблонов.
// Случайность ограничена выбором фраз и цитат; источник случайности
// передается явно, чтобы тесты могли подставить фиксированный seed.
// rand.Rand не потокобезопасен, доступ к нему сериализуется мьютексом.
type localNarrativeStrategy struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLocalNarrativeStrategy создает локальную стратегию сборки повествования.
// При rnd == nil используется источник, инициализированный текущим временем.
func NewLocalNarrativeStrategy(rnd *rand.Rand) NarrativeStrategy {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &localNarrativeStrategy{rnd: rnd}
}

// AssembleNarrative интерполирует имена персонажей, темы и цитаты из
// исходного текста в фиксированный многоабзацный каркас. Для неизвестных
// жанров используется набор фраз "fantasy". Отсутствующие темы заменяются
// словами-заглушками (wisdom/knowledge/understanding/practice).
func (s *localNarrativeStrategy) AssembleNarrative(_ context.Context, genre model.Genre, content string, characters []model.Character, topics []string) (string, error) {
	tpl := narrativeTemplateFor(genre.ID)

	quotes := extractQuotableSentences(content)

	s.mu.Lock()
	opening := tpl.Openings[s.rnd.Intn(len(tpl.Openings))]
	plotElement := tpl.PlotElements[s.rnd.Intn(len(tpl.PlotElements))]
	conflict := tpl.Conflicts[s.rnd.Intn(len(tpl.Conflicts))]
	firstQuote, secondQuote := s.pickQuotes(quotes)
	s.mu.Unlock()

	protagonist := "Our hero"
	mentor := "their guide"
	for _, c := range characters {
		switch c.Role {
		case model.RoleProtagonist:
			protagonist = c.Name
		case model.RoleMentor:
			mentor = c.Name
		}
	}

	story := fmt.Sprintf(`%s the realm of learning, %s found themselves facing an unprecedented challenge. The ancient texts spoke of %s, but understanding its true meaning required more than just reading.

%s discovered that %s the very essence of %s. With %s by their side, they began to unravel the complex patterns that had puzzled scholars for generations. One passage stood out above the rest: "%s"

The journey was not without obstacles. %s than anyone had imagined. Each step forward revealed new layers of complexity, where %s and %s intertwined in unexpected ways.

As %s delved deeper into the mysteries, they realized that the true challenge was not in memorizing facts, but in seeing the connections between different concepts. The teachings were clear: "%s" The %s they sought was not a destination, but a way of thinking.

Through trials and revelations, %s learned that %s comes not from having all the answers, but from asking the right questions. With each discovery, the world became richer and more interconnected.

In the end, %s understood that their journey had only just begun. The %s they had gained was not an end in itself, but a foundation for future exploration and growth.

The story concludes with %s ready to share their discoveries with others, knowing that true understanding grows when it is shared and built upon by a community of learners.`,
		opening, protagonist, topicOrDefault(topics, 0, "wisdom"),
		protagonist, plotElement, topicOrDefault(topics, 1, "knowledge"), mentor, firstQuote,
		conflict, topicOrDefault(topics, 2, "understanding"), topicOrDefault(topics, 3, "practice"),
		protagonist, secondQuote, topicOrDefault(topics, 0, "knowledge"),
		protagonist, topicOrDefault(topics, 1, "wisdom"),
		protagonist, topicOrDefault(topics, 0, "knowledge"),
		protagonist)

	return story, nil
}

// pickQuotes выбирает две цитаты для слотов каркаса. При отсутствии
// подходящих предложений оба слота получают заглушку.
// Вызывается под s.mu.
func (s *localNarrativeStrategy) pickQuotes(quotes []string) (string, string) {
	switch len(quotes) {
	case 0:
		return defaultQuote, defaultQuote
	case 1:
		return quotes[0], defaultQuote
	default:
		first := s.rnd.Intn(len(quotes))
		second := s.rnd.Intn(len(quotes) - 1)
		if second >= first {
			second++
		}
		return quotes[first], quotes[second]
	}
}

// extractQuotableSentences разбивает текст на предложения по .!? и
// оставляет до 10 предложений длиной в интервале (20, 200) символов.
func extractQuotableSentences(content string) []string {
	parts := sentenceSplitRe.Split(content, -1)
	sentences := make([]string, 0, quoteMaxCount)
	for _, part := range parts {
		sentence := strings.TrimSpace(part)
		n := len([]rune(sentence))
		if n <= quoteMinLen || n >= quoteMaxLen {
			continue
		}
		sentences = append(sentences, sentence)
		if len(sentences) == quoteMaxCount {
			break
		}
	}
	return sentences
}

// --- Удаленная стратегия ---

// remoteNarrativeStrategy делегирует написание истории внешнему AI API.
// Резервного текста здесь нет намеренно: подмена AI-повествования
// шаблонным исказила бы заявленное авторство, поэтому ошибка отдается
// вызывающему как есть.
type remoteNarrativeStrategy struct {
	client ai.Client
	logger *zap.Logger
}

// NewRemoteNarrativeStrategy создает удаленную стратегию сборки повествования.
func NewRemoteNarrativeStrategy(client ai.Client, logger *zap.Logger) NarrativeStrategy {
	return &remoteNarrativeStrategy{client: client, logger: logger}
}

const narrativeSystemPrompt = `You are a talented storyteller who turns educational material into engaging genre fiction. You write complete stories with a clear beginning, middle and end, staying faithful to the facts of the source material.`

// AssembleNarrative выполняет один вызов AI API и возвращает текст ответа
// как есть, без дополнительного парсинга.
func (s *remoteNarrativeStrategy) AssembleNarrative(ctx context.Context, genre model.Genre, content string, characters []model.Character, topics []string) (string, error) {
	var roster strings.Builder
	for _, c := range characters {
		fmt.Fprintf(&roster, "- %s (%s), represents %s: %s\n", c.Name, c.Role, c.Represents, c.Description)
	}

	userPrompt := fmt.Sprintf(`Write a %s story of roughly 800-1000 words based on this educational content.

Content excerpt:
%s

Key topics to weave in: %s

Characters:
%s
Requirements:
- a clear beginning, middle and end
- stay true to the %s genre
- incorporate the factual content accurately
- the protagonist's journey mirrors the process of understanding the material

Return only the story text.`,
		genre.Name, excerpt(content, 3000), strings.Join(topics, ", "), roster.String(), genre.Name)

	story, err := s.client.GenerateText(ctx, narrativeSystemPrompt, userPrompt, ai.GenerationParams{
		Temperature: 0.8,
		MaxTokens:   2000,
	})
	if err != nil {
		s.logger.Error("Генерация повествования не удалась", zap.Error(err))
		return "", fmt.Errorf("сборка повествования: %w", err)
	}

	return story, nil
}

// excerpt обрезает текст до max символов (в рунах), чтобы промпт
// не разрастался на больших загрузках.
func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
