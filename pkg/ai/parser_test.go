package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajuktadey/storyweave-learn/pkg/ai"
)

func TestExtractJSONArray(t *testing.T) {
	t.Run("Bare array", func(t *testing.T) {
		out, err := ai.ExtractJSONArray(`[1, 2, 3]`)
		require.NoError(t, err)
		assert.Equal(t, `[1, 2, 3]`, out)
	})

	t.Run("Array wrapped in prose", func(t *testing.T) {
		text := `Sure! Here are your characters:
[{"name": "Aria"}, {"name": "Thornwick"}]
Hope this helps.`

		out, err := ai.ExtractJSONArray(text)
		require.NoError(t, err)
		assert.Equal(t, `[{"name": "Aria"}, {"name": "Thornwick"}]`, out)
	})

	t.Run("Array inside markdown code block", func(t *testing.T) {
		text := "```json\n[{\"name\": \"Aria\"}]\n```"

		out, err := ai.ExtractJSONArray(text)
		require.NoError(t, err)
		assert.Equal(t, `[{"name": "Aria"}]`, out)
	})

	t.Run("Nested arrays are balanced", func(t *testing.T) {
		out, err := ai.ExtractJSONArray(`result: [[1, 2], [3, [4]]] trailing`)
		require.NoError(t, err)
		assert.Equal(t, `[[1, 2], [3, [4]]]`, out)
	})

	t.Run("Brackets inside strings are ignored", func(t *testing.T) {
		out, err := ai.ExtractJSONArray(`[{"note": "use ] carefully"}]`)
		require.NoError(t, err)
		assert.Equal(t, `[{"note": "use ] carefully"}]`, out)
	})

	t.Run("No array present", func(t *testing.T) {
		_, err := ai.ExtractJSONArray("just some plain text")
		require.Error(t, err)
		assert.ErrorIs(t, err, ai.ErrInvalidResponse)
	})

	t.Run("Unbalanced array", func(t *testing.T) {
		_, err := ai.ExtractJSONArray(`[{"name": "Aria"}`)
		require.Error(t, err)
		assert.ErrorIs(t, err, ai.ErrInvalidResponse)
	})

	t.Run("Balanced but invalid JSON", func(t *testing.T) {
		_, err := ai.ExtractJSONArray(`[not json at all]`)
		require.Error(t, err)
		assert.ErrorIs(t, err, ai.ErrInvalidResponse)
	})
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("Object wrapped in prose", func(t *testing.T) {
		text := `Here is the playlist: {"tracks": [{"title": "Time"}]} enjoy!`

		out, err := ai.ExtractJSONObject(text)
		require.NoError(t, err)
		assert.Equal(t, `{"tracks": [{"title": "Time"}]}`, out)
	})

	t.Run("Escaped quotes inside strings", func(t *testing.T) {
		out, err := ai.ExtractJSONObject(`{"title": "He said \"hi\""}`)
		require.NoError(t, err)
		assert.Equal(t, `{"title": "He said \"hi\""}`, out)
	})

	t.Run("No object present", func(t *testing.T) {
		_, err := ai.ExtractJSONObject("nothing here")
		require.Error(t, err)
		assert.ErrorIs(t, err, ai.ErrInvalidResponse)
	})
}
