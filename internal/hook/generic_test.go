package hook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

func TestGenericGenerateForStyle(t *testing.T) {
	c := NewGenericComposer()

	hook := c.GenerateForStyle(models.HookQuestion, models.ToneEducational, "morning workouts")

	assert.Equal(t, models.HookQuestion, hook.Style)
	assert.True(t, strings.HasPrefix(hook.Text, "📚 "))
	assert.Contains(t, hook.Text, "morning workouts")
	assert.Equal(t, 8, hook.AttentionScore)
}

func TestGenericTemplatesCoverAllStylesAndTones(t *testing.T) {
	c := NewGenericComposer()

	for _, style := range models.AllHookStyles() {
		for _, tone := range models.AllTones() {
			hook := c.GenerateForStyle(style, tone, "the topic")
			assert.Contains(t, hook.Text, "the topic", "style=%s tone=%s", style, tone)
			assert.NotContains(t, hook.Text, "{topic}", "style=%s tone=%s", style, tone)
		}
	}
}

func TestDecorateCasualEllipsis(t *testing.T) {
	assert.Equal(t, "Let's talk about it...", Decorate("Let's talk about it.", models.ToneCasual))
	// Already trailing off stays as is
	assert.Equal(t, "Quick story...", Decorate("Quick story...", models.ToneCasual))
	// Mid-sentence periods stretch too
	assert.Equal(t, "First... Second...", Decorate("First. Second.", models.ToneCasual))
}

func TestDecorateToneMarkers(t *testing.T) {
	assert.Equal(t, "📚 A fact.", Decorate("A fact.", models.ToneEducational))
	assert.Equal(t, "🔥 Go now.", Decorate("Go now.", models.ToneMotivational))
	assert.Equal(t, "👉 Buy it.", Decorate("Buy it.", models.ToneSales))
}

func TestAttentionScore(t *testing.T) {
	assert.Equal(t, 9, AttentionScore(models.HookControversial, models.ToneCasual))
	// Motivational adds one
	assert.Equal(t, 10, AttentionScore(models.HookControversial, models.ToneMotivational))
	assert.Equal(t, 7, AttentionScore(models.HookStory, models.ToneMotivational))
}

func TestGenericABVariant(t *testing.T) {
	c := NewGenericComposer()

	primary := c.GenerateForStyle(models.HookBoldStatement, models.ToneSales, "pricing")
	variant := c.ABVariant(models.HookBoldStatement, models.ToneSales, "pricing")

	require.NotEmpty(t, variant)
	assert.NotEqual(t, primary.Text, variant)
	assert.True(t, strings.HasPrefix(variant, "👉 "))
}

func TestVideoPlan(t *testing.T) {
	c := NewGenericComposer()

	plan := c.VideoPlan("the hook line", "the key message")

	require.Len(t, plan, 3)
	assert.Equal(t, "hook", plan[0].Name)
	assert.Equal(t, "0-3s", plan[0].Timing)
	assert.Contains(t, plan[0].Guidance, "the hook line")
	assert.Equal(t, "body", plan[1].Name)
	assert.Contains(t, plan[1].Guidance, "the key message")
	assert.Equal(t, "cta", plan[2].Name)
	assert.Equal(t, "20-30s", plan[2].Timing)
}
