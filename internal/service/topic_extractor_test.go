package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prajuktadey/storyweave-learn/internal/service"
)

func TestExtractTopics(t *testing.T) {
	t.Run("Extracts frequent domain words", func(t *testing.T) {
		text := "Photosynthesis is the process by which plants convert light energy. " +
			"During photosynthesis, plants absorb carbon dioxide. " +
			"Photosynthesis happens in chloroplasts."

		topics := service.ExtractTopics(text)

		assert.NotEmpty(t, topics)
		// Самое частое слово должно быть первым
		assert.Equal(t, "photosynthesis", topics[0])
		assert.Contains(t, topics, "plants")
	})

	t.Run("Filters stop words and short tokens", func(t *testing.T) {
		topics := service.ExtractTopics("the cat and the dog ran to the big red barn")

		assert.NotContains(t, topics, "the")
		assert.NotContains(t, topics, "and")
		// Токены длиной 3 и меньше отбрасываются
		assert.NotContains(t, topics, "cat")
		assert.NotContains(t, topics, "dog")
		assert.NotContains(t, topics, "ran")
		assert.NotContains(t, topics, "big")
		assert.NotContains(t, topics, "red")
		assert.Contains(t, topics, "barn")
	})

	t.Run("Returns at most eight topics", func(t *testing.T) {
		text := "alpha bravo charlie delta echoes foxtrot golfs hotel india juliet kilos lima"

		topics := service.ExtractTopics(text)

		assert.LessOrEqual(t, len(topics), 8)
	})

	t.Run("No duplicates and frequency ordering", func(t *testing.T) {
		text := "water water water fire fire earth"

		topics := service.ExtractTopics(text)

		assert.Equal(t, []string{"water", "fire", "earth"}, topics)
	})

	t.Run("Ties keep first occurrence order", func(t *testing.T) {
		topics := service.ExtractTopics("neurons synapse neurons synapse")

		assert.Equal(t, []string{"neurons", "synapse"}, topics)
	})

	t.Run("Empty input gives empty result", func(t *testing.T) {
		assert.Empty(t, service.ExtractTopics(""))
		assert.Empty(t, service.ExtractTopics("   \n\t  "))
	})

	t.Run("Deterministic for identical input", func(t *testing.T) {
		text := "gravity mass force gravity acceleration mass gravity"

		first := service.ExtractTopics(text)
		second := service.ExtractTopics(text)

		assert.Equal(t, first, second)
	})
}
