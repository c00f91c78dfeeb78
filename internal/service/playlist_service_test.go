package service_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/mocks"
	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/internal/service"
)

// stubCurator возвращает заранее заданные треки без обращения к сети.
type stubCurator struct {
	tracks []model.Track
	err    error
}

func (s *stubCurator) CuratePlaylist(_ context.Context, _ model.Story) ([]model.Track, error) {
	return s.tracks, s.err
}

func newPlaylistService(curator service.PlaylistStrategy, notifier service.Notifier, seed int64) *service.PlaylistService {
	return service.NewPlaylistService(curator, notifier, zap.NewNop(), 0, rand.New(rand.NewSource(seed)))
}

func TestGeneratePlaylist(t *testing.T) {
	ctx := context.Background()

	t.Run("Builds name description and duration", func(t *testing.T) {
		curator := &stubCurator{tracks: []model.Track{
			{Title: "Time", Artist: "Hans Zimmer", Duration: "4:36", Mood: "epic", Genre: "Orchestral"},
			{Title: "May It Be", Artist: "Enya", Duration: "3:34", Mood: "mystical", Genre: "Celtic"},
		}}
		svc := newPlaylistService(curator, nil, 1)

		playlist, err := svc.GeneratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		assert.Equal(t, "The Fantasy of Photosynthesis - Reading Soundtrack", playlist.Name)
		assert.Contains(t, playlist.Description, "fantasy reading experience")
		assert.Contains(t, playlist.Description, "The Fantasy of Photosynthesis")
		// 276 + 214 = 490 секунд = 8 минут
		assert.Equal(t, "8m", playlist.TotalDuration)
	})

	t.Run("Deduplicates by title and artist keeping first", func(t *testing.T) {
		curator := &stubCurator{tracks: []model.Track{
			{Title: "Time", Artist: "Hans Zimmer", Duration: "4:36", Mood: "epic"},
			{Title: "Time", Artist: "Hans Zimmer", Duration: "9:99", Mood: "ambient"},
			{Title: "Time", Artist: "Pink Floyd", Duration: "6:53", Mood: "ambient"},
		}}
		svc := newPlaylistService(curator, nil, 1)

		playlist, err := svc.GeneratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		require.Len(t, playlist.Tracks, 2)
		assert.Equal(t, "epic", playlist.Tracks[0].Mood)
		assert.Equal(t, "Pink Floyd", playlist.Tracks[1].Artist)
	})

	t.Run("Caps playlist at ten tracks", func(t *testing.T) {
		var tracks []model.Track
		for i := 0; i < 15; i++ {
			tracks = append(tracks, model.Track{
				Title:    "Track " + string(rune('A'+i)),
				Artist:   "Artist",
				Duration: "3:00",
			})
		}
		svc := newPlaylistService(&stubCurator{tracks: tracks}, nil, 1)

		playlist, err := svc.GeneratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		assert.Len(t, playlist.Tracks, 10)
	})

	t.Run("Hour boundary formatting", func(t *testing.T) {
		// 62 минуты 5 секунд = 3725 секунд
		curator := &stubCurator{tracks: []model.Track{
			{Title: "Long One", Artist: "Composer", Duration: "62:05"},
		}}
		svc := newPlaylistService(curator, nil, 1)

		playlist, err := svc.GeneratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		assert.Equal(t, "1h 2m", playlist.TotalDuration)
	})

	t.Run("Malformed seconds default to zero, minutes still count", func(t *testing.T) {
		curator := &stubCurator{tracks: []model.Track{
			{Title: "No Seconds", Artist: "W", Duration: "62:"},
			{Title: "Bad Seconds", Artist: "X", Duration: "4:xx"},
			{Title: "Bad Minutes", Artist: "Y", Duration: "abc"},
			{Title: "Missing", Artist: "Z", Duration: ""},
		}}
		svc := newPlaylistService(curator, nil, 1)

		playlist, err := svc.GeneratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		require.Len(t, playlist.Tracks, 4)
		// 62 мин + 4 мин + 0 + 0 = 66 минут
		assert.Equal(t, "1h 6m", playlist.TotalDuration)
	})

	t.Run("Sends success notification", func(t *testing.T) {
		mockNotifier := mocks.NewMockNotifier(t)
		mockNotifier.On("Notify", mock.Anything, mock.MatchedBy(func(n model.Notification) bool {
			return n.Severity == model.SeveritySuccess
		})).Return(nil)

		curator := &stubCurator{tracks: []model.Track{{Title: "A", Artist: "B", Duration: "1:00"}}}
		svc := newPlaylistService(curator, mockNotifier, 1)

		_, err := svc.GeneratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Respects context cancellation during delay", func(t *testing.T) {
		svc := service.NewPlaylistService(&stubCurator{}, nil, zap.NewNop(),
			5*time.Second, rand.New(rand.NewSource(1)))

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.GeneratePlaylist(cancelCtx, testStory(t, "fantasy"))

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestShufflePlaylist(t *testing.T) {
	original := model.Playlist{
		Name: "Test",
		Tracks: []model.Track{
			{Title: "A", Artist: "1"}, {Title: "B", Artist: "2"}, {Title: "C", Artist: "3"},
			{Title: "D", Artist: "4"}, {Title: "E", Artist: "5"}, {Title: "F", Artist: "6"},
			{Title: "G", Artist: "7"}, {Title: "H", Artist: "8"},
		},
		TotalDuration: "30m",
	}

	svc := newPlaylistService(&stubCurator{}, nil, 99)

	shuffled := svc.ShufflePlaylist(original)

	t.Run("Result is a permutation", func(t *testing.T) {
		assert.Len(t, shuffled.Tracks, len(original.Tracks))
		assert.ElementsMatch(t, original.Tracks, shuffled.Tracks)
	})

	t.Run("Input is not mutated", func(t *testing.T) {
		assert.Equal(t, "A", original.Tracks[0].Title)
		assert.Equal(t, "H", original.Tracks[7].Title)
	})

	t.Run("Metadata is preserved", func(t *testing.T) {
		assert.Equal(t, original.Name, shuffled.Name)
		assert.Equal(t, original.TotalDuration, shuffled.TotalDuration)
	})
}

// Перемешивание и подбор треков вызываются из параллельных HTTP-запросов,
// поэтому общие экземпляры должны выдерживать конкурентный доступ.
func TestPlaylistConcurrentAccess(t *testing.T) {
	ctx := context.Background()

	playlist := model.Playlist{
		Tracks: []model.Track{
			{Title: "A", Artist: "1"}, {Title: "B", Artist: "2"},
			{Title: "C", Artist: "3"}, {Title: "D", Artist: "4"},
		},
	}

	svc := newPlaylistService(&stubCurator{}, nil, 42)
	curator := service.NewLocalPlaylistStrategy(nil)
	story := testStory(t, "fantasy")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				shuffled := svc.ShufflePlaylist(playlist)
				assert.Len(t, shuffled.Tracks, len(playlist.Tracks))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				tracks, err := curator.CuratePlaylist(ctx, story)
				assert.NoError(t, err)
				assert.NotEmpty(t, tracks)
			}
		}()
	}
	wg.Wait()
}
