package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/pkg/ai"
)

// Темы-заглушки для слотов персонажей, когда извлеченных тем не хватило.
const (
	defaultMentorTopic     = "Guidance"
	defaultAntagonistTopic = "Challenge"
)

// --- Локальная стратегия ---

// localCharacterStrategy строит персонажей из жанровых шаблонов.
// Полностью детерминированная, сетевых вызовов нет.
type localCharacterStrategy struct{}

// NewLocalCharacterStrategy создает локальную стратегию синтеза персонажей.
func NewLocalCharacterStrategy() CharacterStrategy {
	return &localCharacterStrategy{}
}

// SynthesizeCharacters комбинирует жанровый шаблон с первыми тремя темами.
// Наставник появляется при двух и более темах, антагонист - при трех.
func (s *localCharacterStrategy) SynthesizeCharacters(_ context.Context, genre model.Genre, _ string, topics []string) ([]model.Character, error) {
	protagonist, ok := genreCharacterTemplates[genre.ID]
	if !ok {
		protagonist = defaultProtagonist
	}

	characters := []model.Character{
		{
			Name:        protagonist.Name,
			Role:        model.RoleProtagonist,
			Represents:  topicOrDefault(topics, 0, protagonist.Default),
			Description: protagonist.Description,
		},
	}

	if len(topics) > 1 {
		mentorName := genreMentorNames[genre.ID]
		if mentorName == "" {
			mentorName = defaultMentorName
		}
		characters = append(characters, model.Character{
			Name:        mentorName,
			Role:        model.RoleMentor,
			Represents:  topicOrDefault(topics, 1, defaultMentorTopic),
			Description: "A wise guide who helps unlock the deeper mysteries.",
		})
	}

	if len(topics) > 2 {
		antagonistName := genreAntagonistNames[genre.ID]
		if antagonistName == "" {
			antagonistName = defaultAntagonistName
		}
		characters = append(characters, model.Character{
			Name:        antagonistName,
			Role:        model.RoleAntagonist,
			Represents:  topicOrDefault(topics, 2, defaultAntagonistTopic),
			Description: "The primary obstacle that must be overcome through understanding.",
		})
	}

	return characters, nil
}

// --- Удаленная стратегия ---

// remoteCharacterStrategy делегирует синтез персонажей внешнему AI API.
// Любая ошибка транспорта или парсинга приводит к фиксированному
// резервному составу, наружу ошибка не отдается.
type remoteCharacterStrategy struct {
	client ai.Client
	logger *zap.Logger
}

// NewRemoteCharacterStrategy создает удаленную стратегию синтеза персонажей.
func NewRemoteCharacterStrategy(client ai.Client, logger *zap.Logger) CharacterStrategy {
	return &remoteCharacterStrategy{client: client, logger: logger}
}

const characterSystemPrompt = `You are a creative writing assistant that designs story characters from educational material. Respond with a JSON array only, no prose around it.`

// SynthesizeCharacters выполняет один вызов AI API без повторов.
func (s *remoteCharacterStrategy) SynthesizeCharacters(ctx context.Context, genre model.Genre, content string, topics []string) ([]model.Character, error) {
	userPrompt := fmt.Sprintf(`Design exactly 3 characters for a %s story based on this educational content.

Content excerpt:
%s

Key topics: %s

Return a JSON array of exactly 3 objects with this schema:
[{"name": "...", "role": "Protagonist", "represents": "...", "description": "..."}]
Roles must be "Protagonist", "Mentor" and "Antagonist", in that order. Each character represents one of the key topics.`,
		genre.Name, excerpt(content, 1000), strings.Join(topics, ", "))

	response, err := s.client.GenerateText(ctx, characterSystemPrompt, userPrompt, ai.GenerationParams{
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		s.logger.Warn("AI недоступен, используем резервный состав персонажей", zap.Error(err))
		return fallbackCharacters(topics), nil
	}

	characters, err := parseCharacterResponse(response)
	if err != nil {
		s.logger.Warn("Не удалось разобрать ответ AI, используем резервный состав персонажей", zap.Error(err))
		return fallbackCharacters(topics), nil
	}

	return characters, nil
}

// parseCharacterResponse извлекает из ответа модели первый JSON-массив
// и разбирает его в список персонажей.
func parseCharacterResponse(response string) ([]model.Character, error) {
	raw, err := ai.ExtractJSONArray(response)
	if err != nil {
		return nil, err
	}

	var characters []model.Character
	if err := json.Unmarshal([]byte(raw), &characters); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrInvalidResponse, err)
	}
	if len(characters) == 0 {
		return nil, fmt.Errorf("%w: пустой список персонажей", ai.ErrInvalidResponse)
	}
	if len(characters) > 3 {
		characters = characters[:3]
	}

	// Модели иногда путают роли; протагонист обязан быть первым.
	roles := []model.CharacterRole{model.RoleProtagonist, model.RoleMentor, model.RoleAntagonist}
	for i := range characters {
		if characters[i].Role != roles[i] {
			characters[i].Role = roles[i]
		}
		if characters[i].Name == "" {
			return nil, fmt.Errorf("%w: персонаж без имени", ai.ErrInvalidResponse)
		}
	}

	return characters, nil
}

// fallbackCharacters - фиксированный резервный состав на случай отказа AI.
func fallbackCharacters(topics []string) []model.Character {
	return []model.Character{
		{
			Name:        "Alex",
			Role:        model.RoleProtagonist,
			Represents:  topicOrDefault(topics, 0, "Learning"),
			Description: "A curious student eager to master new ideas.",
		},
		{
			Name:        "Professor Morgan",
			Role:        model.RoleMentor,
			Represents:  topicOrDefault(topics, 1, defaultMentorTopic),
			Description: "An experienced teacher who sees the bigger picture.",
		},
		{
			Name:        "The Challenge",
			Role:        model.RoleAntagonist,
			Represents:  topicOrDefault(topics, 2, defaultAntagonistTopic),
			Description: "The difficulty of the subject itself, waiting to be overcome.",
		},
	}
}
