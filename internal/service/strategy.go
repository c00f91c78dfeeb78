package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/config"
	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/pkg/ai"
)

// Каждый компонент генерации существует в двух взаимозаменяемых вариантах:
// локальном (детерминированные шаблоны, без сети) и удаленном (делегирование
// внешнему AI API). Вариант выбирается конфигурацией, а не отдельными
// путями в коде.

// CharacterStrategy синтезирует набор персонажей под жанр и темы.
// Возвращает от 1 до 3 персонажей, протагонист присутствует всегда.
type CharacterStrategy interface {
	SynthesizeCharacters(ctx context.Context, genre model.Genre, content string, topics []string) ([]model.Character, error)
}

// NarrativeStrategy собирает текст повествования.
type NarrativeStrategy interface {
	AssembleNarrative(ctx context.Context, genre model.Genre, content string, characters []model.Character, topics []string) (string, error)
}

// PlaylistStrategy подбирает треки под сгенерированную историю.
// Дедупликация и усечение до лимита выполняются на уровне сервиса.
type PlaylistStrategy interface {
	CuratePlaylist(ctx context.Context, story model.Story) ([]model.Track, error)
}

// NewGenerationStrategies собирает тройку стратегий согласно конфигурации.
// В remote режиме client обязателен; в local режиме он не используется.
// Локальные стратегии получают независимые источники случайности:
// один rand.Rand нельзя разделять между компонентами без синхронизации.
func NewGenerationStrategies(cfg *config.Config, client ai.Client, logger *zap.Logger) (CharacterStrategy, NarrativeStrategy, PlaylistStrategy) {
	if cfg.IsRemote() {
		return NewRemoteCharacterStrategy(client, logger.Named("RemoteCharacters")),
			NewRemoteNarrativeStrategy(client, logger.Named("RemoteNarrative")),
			NewRemotePlaylistStrategy(client, logger.Named("RemotePlaylist"))
	}
	return NewLocalCharacterStrategy(),
		NewLocalNarrativeStrategy(nil),
		NewLocalPlaylistStrategy(nil)
}
