package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/model"
)

// Средняя скорость чтения, слов в минуту. Используется для оценки
// времени чтения истории.
const wordsPerMinute = 200

// StoryService превращает учебный текст в жанровую историю.
type StoryService struct {
	characters CharacterStrategy
	narrative  NarrativeStrategy
	notifier   Notifier
	logger     *zap.Logger
	delay      time.Duration
}

// NewStoryService создает сервис генерации историй.
func NewStoryService(characters CharacterStrategy, narrative NarrativeStrategy, notifier Notifier, logger *zap.Logger, delay time.Duration) *StoryService {
	return &StoryService{
		characters: characters,
		narrative:  narrative,
		notifier:   notifier,
		logger:     logger,
		delay:      delay,
	}
}

// GenerateStory строит историю по загруженному тексту и жанру: извлекает
// ключевые темы, синтезирует персонажей и собирает повествование.
// Ошибка сборки повествования прерывает генерацию; пользователь получает
// уведомление с предложением повторить попытку.
func (s *StoryService) GenerateStory(ctx context.Context, upload model.ContentUpload, genreID string) (*model.Story, error) {
	content := strings.TrimSpace(upload.Content)
	if content == "" {
		return nil, model.ErrEmptyContent
	}

	genre, ok := model.GenreByID(genreID)
	if !ok {
		return nil, fmt.Errorf("жанр %q: %w", genreID, model.ErrGenreNotFound)
	}

	s.logger.Info("Начата генерация истории",
		zap.String("genre", genre.ID),
		zap.Int("content_words", upload.WordCount))

	if err := simulateDelay(ctx, s.delay); err != nil {
		return nil, err
	}

	topics := ExtractTopics(content)

	characters, err := s.characters.SynthesizeCharacters(ctx, genre, content, topics)
	if err != nil {
		// Стратегии персонажей не возвращают ошибок при недоступном AI,
		// сюда попадает только отмена контекста.
		return nil, err
	}

	narrative, err := s.narrative.AssembleNarrative(ctx, genre, content, characters, topics)
	if err != nil {
		s.notify(ctx, model.Notification{
			Title:       "Story generation failed",
			Description: "We couldn't generate your story. Please try again.",
			Severity:    model.SeverityError,
		})
		return nil, err
	}

	now := time.Now()
	story := &model.Story{
		ID:                  strconv.FormatInt(now.UnixMilli(), 10),
		Title:               storyTitle(genre, topics),
		Content:             narrative,
		Genre:               genre,
		Characters:          characters,
		EducationalElements: topics,
		EstimatedReadTime:   estimateReadTime(narrative),
		CreatedAt:           now,
		OriginalContent:     content,
	}

	s.logger.Info("История сгенерирована",
		zap.String("story_id", story.ID),
		zap.String("title", story.Title),
		zap.Int("characters", len(story.Characters)),
		zap.Int("read_time_minutes", story.EstimatedReadTime))

	s.notify(ctx, model.Notification{
		Title:       "Story generated!",
		Description: fmt.Sprintf("Your %s story is ready to read.", strings.ToLower(genre.Name)),
		Severity:    model.SeveritySuccess,
	})

	return story, nil
}

// storyTitle собирает заголовок из названия жанра и главной темы текста.
func storyTitle(genre model.Genre, topics []string) string {
	return fmt.Sprintf("The %s of %s", genre.Name, capitalize(topicOrDefault(topics, 0, "Learning")))
}

// estimateReadTime оценивает время чтения в минутах, округляя вверх.
func estimateReadTime(text string) int {
	words := len(strings.Fields(text))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

func (s *StoryService) notify(ctx context.Context, n model.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("Не удалось доставить уведомление", zap.Error(err))
	}
}
