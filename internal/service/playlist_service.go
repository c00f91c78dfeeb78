package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/model"
)

// Максимальный размер плейлиста после дедупликации.
const maxPlaylistTracks = 10

// PlaylistService подбирает музыкальное сопровождение для чтения истории.
// rand.Rand не потокобезопасен, доступ к нему сериализуется мьютексом:
// перемешивание вызывается из параллельных HTTP-запросов.
type PlaylistService struct {
	curator  PlaylistStrategy
	notifier Notifier
	logger   *zap.Logger
	delay    time.Duration
	mu       sync.Mutex
	rnd      *rand.Rand
}

// NewPlaylistService создает сервис подбора плейлистов.
func NewPlaylistService(curator PlaylistStrategy, notifier Notifier, logger *zap.Logger, delay time.Duration, rnd *rand.Rand) *PlaylistService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlaylistService{
		curator:  curator,
		notifier: notifier,
		logger:   logger,
		delay:    delay,
		rnd:      rnd,
	}
}

// GeneratePlaylist собирает плейлист под историю: получает треки от
// куратора, убирает дубликаты и считает суммарную длительность.
func (s *PlaylistService) GeneratePlaylist(ctx context.Context, story model.Story) (*model.Playlist, error) {
	s.logger.Info("Начат подбор плейлиста",
		zap.String("story_id", story.ID),
		zap.String("genre", story.Genre.ID))

	if err := simulateDelay(ctx, s.delay); err != nil {
		return nil, err
	}

	tracks, err := s.curator.CuratePlaylist(ctx, story)
	if err != nil {
		s.notify(ctx, model.Notification{
			Title:       "Playlist generation failed",
			Description: "We couldn't build a soundtrack for this story. Please try again.",
			Severity:    model.SeverityError,
		})
		return nil, err
	}

	tracks = dedupeTracks(tracks)

	playlist := &model.Playlist{
		Name: fmt.Sprintf("%s - Reading Soundtrack", story.Title),
		Description: fmt.Sprintf(
			"A curated playlist to accompany your %s reading experience. Let these tracks transport you deeper into the world of %s.",
			strings.ToLower(story.Genre.Name), story.Title),
		Tracks:        tracks,
		TotalDuration: formatTotalDuration(totalSeconds(tracks)),
	}

	s.logger.Info("Плейлист собран",
		zap.String("story_id", story.ID),
		zap.Int("tracks", len(playlist.Tracks)),
		zap.String("total_duration", playlist.TotalDuration))

	s.notify(ctx, model.Notification{
		Title:       "Playlist ready!",
		Description: fmt.Sprintf("%d tracks curated for your reading session.", len(playlist.Tracks)),
		Severity:    model.SeveritySuccess,
	})

	return playlist, nil
}

// ShufflePlaylist возвращает копию плейлиста со случайным порядком треков.
// Исходный плейлист не изменяется.
func (s *PlaylistService) ShufflePlaylist(playlist model.Playlist) model.Playlist {
	shuffled := make([]model.Track, len(playlist.Tracks))
	copy(shuffled, playlist.Tracks)
	s.mu.Lock()
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()
	playlist.Tracks = shuffled
	return playlist
}

// dedupeTracks убирает повторы по паре (название, исполнитель), сохраняя
// первое вхождение, и обрезает список до максимального размера.
func dedupeTracks(tracks []model.Track) []model.Track {
	seen := make(map[string]struct{}, len(tracks))
	result := make([]model.Track, 0, len(tracks))
	for _, t := range tracks {
		key := strings.ToLower(t.Title) + "|" + strings.ToLower(t.Artist)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, t)
		if len(result) == maxPlaylistTracks {
			break
		}
	}
	return result
}

// totalSeconds суммирует длительности треков в секундах.
func totalSeconds(tracks []model.Track) int {
	total := 0
	for _, t := range tracks {
		total += parseTrackSeconds(t.Duration)
	}
	return total
}

// parseTrackSeconds разбирает длительность вида "M:SS". Отсутствующее
// или некорректное поле секунд считается нулем, минуты при этом
// сохраняются; нечитаемые минуты дают 0 для всего трека. Плейлист
// в любом случае не отбрасывается.
func parseTrackSeconds(duration string) int {
	parts := strings.SplitN(duration, ":", 2)
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	seconds := 0
	if len(parts) == 2 {
		if s, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			seconds = s
		}
	}
	return minutes*60 + seconds
}

// formatTotalDuration форматирует длительность как "1h 2m" или "45m".
func formatTotalDuration(totalSec int) string {
	minutes := totalSec / 60
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

func (s *PlaylistService) notify(ctx context.Context, n model.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("Не удалось доставить уведомление", zap.Error(err))
	}
}
