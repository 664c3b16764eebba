package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackQuestions(t *testing.T) {
	t.Parallel()

	questions := FallbackQuestions("Google", "SDE")
	require.Len(t, questions, 2)
	assert.Contains(t, questions[0].Question, "SDE")
	assert.Contains(t, questions[0].Question, "Google")
	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.LessOrEqual(t, q.CorrectAnswer, 3)
		assert.NotEmpty(t, q.Explanation)
		assert.NotEmpty(t, q.Difficulty)
		assert.NotEmpty(t, q.Category)
	}

	// Pure function: identical inputs, identical output.
	assert.Equal(t, questions, FallbackQuestions("Google", "SDE"))
}

func TestFallbackCompanies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		check func(t *testing.T, got []string)
	}{
		{
			name:  "substring_match",
			query: "Go",
			check: func(t *testing.T, got []string) {
				assert.Equal(t, []string{"Google"}, got)
			},
		},
		{
			name:  "case_insensitive_substring",
			query: "pay",
			check: func(t *testing.T, got []string) {
				assert.Equal(t, []string{"PayPal"}, got)
			},
		},
		{
			name:  "first_letter_tier",
			query: "Superhuman",
			check: func(t *testing.T, got []string) {
				require.NotEmpty(t, got)
				for _, name := range got {
					assert.Equal(t, "s", string(name[0]|0x20))
				}
			},
		},
		{
			name:  "no_match_returns_top_ten",
			query: "Qqqqqq",
			check: func(t *testing.T, got []string) {
				assert.Len(t, got, 10)
				assert.Equal(t, "Google", got[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FallbackCompanies(tt.query)
			require.NotEmpty(t, got)
			assert.LessOrEqual(t, len(got), 10)
			for _, name := range got {
				assert.NotEmpty(t, name)
			}
			tt.check(t, got)

			assert.Equal(t, got, FallbackCompanies(tt.query), "must be deterministic")
		})
	}
}

func TestFallbackVideos(t *testing.T) {
	t.Parallel()

	videos := FallbackVideos("react hooks", 3)
	require.Len(t, videos, 3)
	channels := map[string]bool{}
	for _, video := range videos {
		assert.Equal(t, "react hooks Tutorial", video.Title)
		assert.Empty(t, video.URL)
		assert.Contains(t, video.SearchQuery, "react hooks")
		assert.Equal(t, "Tutorial", video.Type)
		channels[video.Channel] = true
	}
	assert.Len(t, channels, 3, "channels rotate, no repeats within a batch")

	assert.Len(t, FallbackVideos("go", 8), 3, "capped at three stubs")
	assert.Equal(t, FallbackVideos("go", 2), FallbackVideos("go", 2))
}
