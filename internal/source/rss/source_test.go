package rss

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orizenati71-dev/media-agents/internal/config"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "טיפ חדש לאימוני בוקר",
			expected: "טיפ חדש לאימוני בוקר",
		},
		{
			name:     "strips paragraph tags",
			input:    "<p>שורה ראשונה</p><p>שורה שנייה</p>",
			expected: "שורה ראשונה שורה שנייה",
		},
		{
			name:     "breaks become spaces",
			input:    "לפני<br>אחרי<br />סוף",
			expected: "לפני אחרי סוף",
		},
		{
			name:     "strips arbitrary tags",
			input:    `<a href="https://example.com">קישור</a> עם <strong>הדגשה</strong>`,
			expected: "קישור עם הדגשה",
		},
		{
			name:     "collapses whitespace",
			input:    "  מילה   אחת \n שתיים  ",
			expected: "מילה אחת שתיים",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanText(tt.input))
		})
	}
}

func TestNewMultiple(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "console", Output: "stdout"})

	sources := NewMultiple(config.RSSConfig{
		Enabled: true,
		Feeds: []config.RSSFeed{
			{Name: "fitness-blog", URL: "https://example.com/feed.xml"},
			{Name: "nutrition-blog", URL: "https://example.com/other.xml"},
		},
	}, log)

	assert.Len(t, sources, 2)
	assert.Equal(t, "fitness-blog", sources[0].Name())
	assert.Equal(t, "rss", sources[0].Type())
	assert.Equal(t, "nutrition-blog", sources[1].Name())
}
