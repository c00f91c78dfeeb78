package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/pkg/ai"
)

// Количество треков, отбираемых на каждое настроение жанра.
const tracksPerMood = 3

// --- Локальная стратегия ---

// localPlaylistStrategy подбирает треки из встроенной фонотеки по
// профилю настроений жанра истории.
// rand.Rand не потокобезопасен, доступ к нему сериализуется мьютексом.
type localPlaylistStrategy struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLocalPlaylistStrategy создает локальную стратегию подбора плейлиста.
func NewLocalPlaylistStrategy(rnd *rand.Rand) PlaylistStrategy {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &localPlaylistStrategy{rnd: rnd}
}

// CuratePlaylist берет по три случайных трека на каждое настроение жанра.
// Настроение без записей в фонотеке заменяется на "ambient".
func (s *localPlaylistStrategy) CuratePlaylist(_ context.Context, story model.Story) ([]model.Track, error) {
	moods := moodsForGenre(story.Genre.Name)

	tracks := make([]model.Track, 0, len(moods)*tracksPerMood)
	for _, mood := range moods {
		pool, ok := trackDatabase[mood]
		if !ok {
			pool = trackDatabase["ambient"]
		}
		tracks = append(tracks, s.sample(pool, tracksPerMood)...)
	}
	return tracks, nil
}

// sample возвращает до n элементов из перемешанной копии пула.
// Исходный слайс не изменяется.
func (s *localPlaylistStrategy) sample(pool []model.Track, n int) []model.Track {
	shuffled := make([]model.Track, len(pool))
	copy(shuffled, pool)
	s.mu.Lock()
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// --- Удаленная стратегия ---

// remotePlaylistStrategy запрашивает подборку треков у внешнего AI API.
// При любой ошибке возвращается фиксированный резервный плейлист:
// саундтрек является сопровождением и не должен ронять весь запрос.
type remotePlaylistStrategy struct {
	client ai.Client
	logger *zap.Logger
}

// NewRemotePlaylistStrategy создает удаленную стратегию подбора плейлиста.
func NewRemotePlaylistStrategy(client ai.Client, logger *zap.Logger) PlaylistStrategy {
	return &remotePlaylistStrategy{client: client, logger: logger}
}

const playlistSystemPrompt = `You are a music curator who builds reading soundtracks. You only recommend real, well-known tracks and respond strictly in the requested JSON format.`

// curatedPlaylistResponse описывает ожидаемую форму ответа AI.
type curatedPlaylistResponse struct {
	Tracks []model.Track `json:"tracks"`
}

// CuratePlaylist выполняет один вызов AI API и парсит JSON-объект ответа.
func (s *remotePlaylistStrategy) CuratePlaylist(ctx context.Context, story model.Story) ([]model.Track, error) {
	userPrompt := fmt.Sprintf(`Curate a playlist of exactly 10 real tracks to accompany reading this story.

Title: %s
Genre: %s
Characters: %s
Key themes: %s

Story excerpt:
%s

Return a JSON object with this exact structure:
{"tracks": [{"title": "...", "artist": "...", "duration": "M:SS", "mood": "...", "genre": "..."}]}

Pick tracks whose mood matches the emotional arc of the story. Return only the JSON object.`,
		story.Title, story.Genre.Name,
		strings.Join(story.CharacterNames(), ", "),
		strings.Join(story.EducationalElements, ", "),
		excerpt(story.Content, 2000))

	raw, err := s.client.GenerateText(ctx, playlistSystemPrompt, userPrompt, ai.GenerationParams{
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		s.logger.Warn("AI-куратор недоступен, используется резервный плейлист", zap.Error(err))
		return fallbackPlaylistTracks(), nil
	}

	tracks, err := parsePlaylistResponse(raw)
	if err != nil {
		s.logger.Warn("Не удалось распарсить ответ AI-куратора, используется резервный плейлист",
			zap.Error(err))
		return fallbackPlaylistTracks(), nil
	}

	return tracks, nil
}

// parsePlaylistResponse извлекает JSON-объект из ответа модели и
// валидирует список треков.
func parsePlaylistResponse(raw string) ([]model.Track, error) {
	objJSON, err := ai.ExtractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("извлечение JSON из ответа: %w", err)
	}

	var resp curatedPlaylistResponse
	if err := json.Unmarshal([]byte(objJSON), &resp); err != nil {
		return nil, fmt.Errorf("разбор списка треков: %w", err)
	}
	if len(resp.Tracks) == 0 {
		return nil, fmt.Errorf("ответ не содержит треков")
	}

	tracks := resp.Tracks
	if len(tracks) > maxPlaylistTracks {
		tracks = tracks[:maxPlaylistTracks]
	}
	for _, t := range tracks {
		if t.Title == "" || t.Artist == "" {
			return nil, fmt.Errorf("трек без названия или исполнителя")
		}
	}
	return tracks, nil
}
