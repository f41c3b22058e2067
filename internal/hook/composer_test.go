package hook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

func TestGenerateForStyle(t *testing.T) {
	c := NewComposer()

	hook := c.GenerateForStyle(models.HookQuestion, models.ToneCasual, "אימוני בוקר")

	assert.Equal(t, models.HookQuestion, hook.Style)
	assert.Equal(t, "מה אם אגיד לכם שאימוני בוקר?", hook.Text)
	assert.NotEmpty(t, hook.DurationEstimate)
	assert.NotEmpty(t, hook.EngagementNotes)
	assert.NotEmpty(t, hook.PlatformFit)
	assert.Zero(t, hook.AttentionScore)
}

func TestTemplateInterpolatesEveryStyleAndTone(t *testing.T) {
	c := NewComposer()

	for _, style := range models.AllHookStyles() {
		for _, tone := range models.AllTones() {
			hook := c.GenerateForStyle(style, tone, "הנושא")
			assert.Contains(t, hook.Text, "הנושא", "style=%s tone=%s", style, tone)
			assert.NotContains(t, hook.Text, "{topic}", "style=%s tone=%s", style, tone)
		}
	}
}

func TestABVariantDiffersFromPrimary(t *testing.T) {
	c := NewComposer()

	primary := c.GenerateForStyle(models.HookStory, models.ToneSales, "שיווק")
	variant := c.ABVariant(models.HookStory, models.ToneSales, "שיווק")

	require.NotEmpty(t, variant)
	assert.NotEqual(t, primary.Text, variant)
}

func TestEstimateDuration(t *testing.T) {
	assert.Equal(t, "2-3 שניות", estimateDuration("שלוש מילים כאן"))
	assert.Equal(t, "5-6 שניות", estimateDuration(strings.Repeat("מילה ", 20)))
}

func TestOptimizeForTikTokStripsFillers(t *testing.T) {
	c := NewComposer()

	v := c.OptimizeForPlatform("זה בעצם הסיפור נו של כולם", models.PlatformTikTok, "הנושא")

	assert.Equal(t, "זה הסיפור של כולם", v.HookText)
	assert.Equal(t, models.PlatformTikTok, v.Platform)
}

func TestOptimizeKeepsTextForOtherPlatforms(t *testing.T) {
	c := NewComposer()

	text := "זה בעצם הסיפור של כולם"
	v := c.OptimizeForPlatform(text, models.PlatformInstagram, "הנושא")

	assert.Equal(t, text, v.HookText)
}

func TestTextOverlay(t *testing.T) {
	c := NewComposer()

	tiktok := c.OptimizeForPlatform("הוק", models.PlatformTikTok, "אימוני בוקר")
	assert.Equal(t, "#אימוניבוקר", tiktok.TextOverlay)

	youtube := c.OptimizeForPlatform("הוק", models.PlatformYouTubeShorts, "אימוני בוקר")
	assert.Equal(t, "חייבים לדעת על אימוני בוקר", youtube.TextOverlay)
}

func TestVisualSuggestionPerPlatform(t *testing.T) {
	c := NewComposer()

	seen := make(map[string]bool)
	for _, p := range models.AllPlatforms() {
		v := c.OptimizeForPlatform("הוק", p, "נושא")
		require.NotEmpty(t, v.VisualSuggestion)
		seen[v.VisualSuggestion] = true
	}
	assert.Len(t, seen, 3)
}

func TestSelectBestByTonePriority(t *testing.T) {
	c := NewComposer()

	var hooks []models.Hook
	for _, style := range models.AllHookStyles() {
		hooks = append(hooks, c.GenerateForStyle(style, models.ToneSales, "שיווק"))
	}

	best, ok := c.SelectBest(hooks, models.ToneSales)
	require.True(t, ok)
	assert.Equal(t, models.HookCuriosityGap, best.Style)
}

func TestSelectBestFallsBackToFirst(t *testing.T) {
	c := NewComposer()

	hooks := []models.Hook{
		c.GenerateForStyle(models.HookStory, models.ToneCasual, "נושא"),
	}

	// Casual prefers question/bold_statement, neither present
	best, ok := c.SelectBest(hooks, models.ToneCasual)
	require.True(t, ok)
	assert.Equal(t, models.HookStory, best.Style)
}

func TestSelectBestEmpty(t *testing.T) {
	c := NewComposer()

	_, ok := c.SelectBest(nil, models.ToneCasual)
	assert.False(t, ok)
}

func TestEngagementTips(t *testing.T) {
	c := NewComposer()

	for _, tone := range models.AllTones() {
		assert.Len(t, c.EngagementTips(tone), 3, "tone: %s", tone)
	}
}
