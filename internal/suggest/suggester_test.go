package suggest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"fjacquet/testimony-csv/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is an AIClient returning a canned response and recording the
// prompt it was given.
type mockClient struct {
	response string
	err      error
	prompt   string
}

func (m *mockClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestSuggestKeywords(t *testing.T) {
	client := &mockClient{response: "healed\ncancer\nmiracle"}
	s := NewSuggester(client, &logging.MockLogger{})

	keywords, err := s.SuggestKeywords(context.Background(), "Healing", []string{"I was healed"})

	require.NoError(t, err)
	assert.Equal(t, []string{"healed", "cancer", "miracle"}, keywords)
	assert.Contains(t, client.prompt, "Category: Healing")
	assert.Contains(t, client.prompt, "I was healed")
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected []string
	}{
		{"Plain lines", "healed\ncancer", []string{"healed", "cancer"}},
		{"Bullet markers stripped", "- healed\n* cancer\n1. miracle", []string{"healed", "cancer", "miracle"}},
		{"Quotes stripped", `"healed"` + "\n" + `"cancer"`, []string{"healed", "cancer"}},
		{"Lowercased and deduplicated", "Healed\nhealed\nHEALED", []string{"healed"}},
		{"Blank lines skipped", "healed\n\n\ncancer\n", []string{"healed", "cancer"}},
		{"Empty response", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseKeywords(tc.response))
		})
	}
}

func TestSuggestKeywordsSampleCap(t *testing.T) {
	samples := make([]string, 40)
	for i := range samples {
		samples[i] = fmt.Sprintf("sample-%02d", i)
	}

	client := &mockClient{response: "healed"}
	s := NewSuggester(client, &logging.MockLogger{})

	_, err := s.SuggestKeywords(context.Background(), "Healing", samples)
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "sample-24")
	assert.NotContains(t, client.prompt, "sample-25")
	assert.Equal(t, maxSamples, strings.Count(client.prompt, "sample-"))
}

func TestSuggestKeywordsErrors(t *testing.T) {
	t.Run("Empty rule name", func(t *testing.T) {
		s := NewSuggester(&mockClient{response: "healed"}, &logging.MockLogger{})
		_, err := s.SuggestKeywords(context.Background(), "   ", []string{"sample"})
		assert.Error(t, err)
	})

	t.Run("Nil client", func(t *testing.T) {
		s := NewSuggester(nil, &logging.MockLogger{})
		_, err := s.SuggestKeywords(context.Background(), "Healing", []string{"sample"})
		assert.Error(t, err)
	})

	t.Run("Client error", func(t *testing.T) {
		s := NewSuggester(&mockClient{err: fmt.Errorf("quota exceeded")}, &logging.MockLogger{})
		_, err := s.SuggestKeywords(context.Background(), "Healing", []string{"sample"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}
