package service_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/mocks"
	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/internal/service"
)

func testStory(t *testing.T, genreID string) model.Story {
	t.Helper()
	return model.Story{
		ID:                  "1700000000000",
		Title:               "The Fantasy of Photosynthesis",
		Content:             "A long tale about plants and light.",
		Genre:               mustGenre(t, genreID),
		Characters:          testCast(),
		EducationalElements: []string{"photosynthesis", "chloroplasts"},
	}
}

func TestLocalPlaylistStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("Three tracks per genre mood", func(t *testing.T) {
		strategy := service.NewLocalPlaylistStrategy(rand.New(rand.NewSource(5)))

		tracks, err := strategy.CuratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		// Fantasy: epic, mystical, ambient - по три трека на настроение
		require.Len(t, tracks, 9)
		moodCounts := map[string]int{}
		for _, track := range tracks {
			moodCounts[track.Mood]++
		}
		assert.Equal(t, 3, moodCounts["epic"])
		assert.Equal(t, 3, moodCounts["mystical"])
		assert.Equal(t, 3, moodCounts["ambient"])
	})

	t.Run("Tracks have complete metadata", func(t *testing.T) {
		strategy := service.NewLocalPlaylistStrategy(rand.New(rand.NewSource(9)))

		tracks, err := strategy.CuratePlaylist(ctx, testStory(t, "sci-fi"))

		require.NoError(t, err)
		for _, track := range tracks {
			assert.NotEmpty(t, track.Title)
			assert.NotEmpty(t, track.Artist)
			assert.NotEmpty(t, track.Duration)
			assert.NotEmpty(t, track.Mood)
		}
	})
}

func TestRemotePlaylistStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses valid AI response", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		mockAI.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(`Here is your playlist:
{"tracks": [
  {"title": "Nocturne", "artist": "Chopin", "duration": "5:30", "mood": "ambient", "genre": "Classical"},
  {"title": "Clair de Lune", "artist": "Debussy", "duration": "4:42", "mood": "ambient", "genre": "Classical"}
]}`, nil)

		strategy := service.NewRemotePlaylistStrategy(mockAI, zap.NewNop())
		tracks, err := strategy.CuratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		require.Len(t, tracks, 2)
		assert.Equal(t, "Nocturne", tracks[0].Title)
		assert.Equal(t, "Chopin", tracks[0].Artist)
	})

	t.Run("Transport error falls back to fixed playlist", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		mockAI.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("timeout"))

		strategy := service.NewRemotePlaylistStrategy(mockAI, zap.NewNop())
		tracks, err := strategy.CuratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		require.Len(t, tracks, 10)
		assert.Equal(t, "Time", tracks[0].Title)
	})

	t.Run("Invalid JSON falls back to fixed playlist", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		mockAI.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("no json here at all", nil)

		strategy := service.NewRemotePlaylistStrategy(mockAI, zap.NewNop())
		tracks, err := strategy.CuratePlaylist(ctx, testStory(t, "mystery"))

		require.NoError(t, err)
		require.Len(t, tracks, 10)
	})

	t.Run("Oversized answer is truncated to ten", func(t *testing.T) {
		payload := `{"tracks": [`
		for i := 0; i < 12; i++ {
			if i > 0 {
				payload += ","
			}
			payload += `{"title": "T` + string(rune('A'+i)) + `", "artist": "Artist", "duration": "3:00", "mood": "ambient", "genre": "Ambient"}`
		}
		payload += `]}`

		mockAI := mocks.NewMockAIClient(t)
		mockAI.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(payload, nil)

		strategy := service.NewRemotePlaylistStrategy(mockAI, zap.NewNop())
		tracks, err := strategy.CuratePlaylist(ctx, testStory(t, "fantasy"))

		require.NoError(t, err)
		assert.Len(t, tracks, 10)
	})
}
