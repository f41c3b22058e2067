package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "console", Output: "stdout"})
}

func testInput() models.HookInput {
	return models.HookInput{
		VideoTopic:     "אימוני כושר בבית",
		TargetAudience: "צעירים עסוקים",
		KeyMessage:     "מספיקות עשר דקות ביום",
		Tone:           models.ToneSales,
		Platforms:      []models.Platform{models.PlatformTikTok, models.PlatformInstagram},
	}
}

func TestProcessAllStyles(t *testing.T) {
	agent := NewAgent(testLogger())

	output, err := agent.Process(testInput())
	require.NoError(t, err)

	// All seven styles when none requested
	require.Len(t, output.Hooks, len(models.AllHookStyles()))
	for i, style := range models.AllHookStyles() {
		assert.Equal(t, style, output.Hooks[i].Style)
		assert.Contains(t, output.Hooks[i].BaseHook.Text, "אימוני כושר בבית")
		assert.Len(t, output.Hooks[i].PlatformVariations, 2)
	}
}

func TestProcessRecommendedHookFollowsTonePriority(t *testing.T) {
	agent := NewAgent(testLogger())

	output, err := agent.Process(testInput())
	require.NoError(t, err)

	// Sales priority: curiosity_gap first
	assert.Equal(t, models.HookCuriosityGap, output.RecommendedHook.Style)
}

func TestProcessRequestedStylesOnly(t *testing.T) {
	agent := NewAgent(testLogger())

	input := testInput()
	input.HookStyles = []models.HookStyle{models.HookStory, models.HookQuestion}

	output, err := agent.Process(input)
	require.NoError(t, err)

	require.Len(t, output.Hooks, 2)
	assert.Equal(t, models.HookStory, output.Hooks[0].Style)
	assert.Equal(t, models.HookQuestion, output.Hooks[1].Style)
}

func TestProcessScriptStarters(t *testing.T) {
	agent := NewAgent(testLogger())

	output, err := agent.Process(testInput())
	require.NoError(t, err)

	require.Len(t, output.ScriptStarters, 3)
	for i, starter := range output.ScriptStarters {
		assert.Equal(t, output.Hooks[i].BaseHook.Text+" מספיקות עשר דקות ביום", starter)
	}
}

func TestProcessInputSummary(t *testing.T) {
	agent := NewAgent(testLogger())

	output, err := agent.Process(testInput())
	require.NoError(t, err)

	assert.Equal(t,
		"נושא: אימוני כושר בבית | קהל יעד: צעירים עסוקים | טון: sales | פלטפורמות: tiktok, instagram",
		output.InputSummary)
}

func TestProcessTips(t *testing.T) {
	agent := NewAgent(testLogger())

	output, err := agent.Process(testInput())
	require.NoError(t, err)

	assert.Len(t, output.GeneralTips, 3)
}

func TestProcessRequiresTopic(t *testing.T) {
	agent := NewAgent(testLogger())

	input := testInput()
	input.VideoTopic = ""

	_, err := agent.Process(input)
	assert.Error(t, err)
}

func TestProcessGeneric(t *testing.T) {
	agent := NewAgent(testLogger())

	input := testInput()
	input.VideoTopic = "home workouts"
	input.KeyMessage = "ten minutes a day is enough"

	output, err := agent.ProcessGeneric(input)
	require.NoError(t, err)

	require.Len(t, output.Hooks, len(models.AllHookStyles()))
	for _, pkg := range output.Hooks {
		assert.Positive(t, pkg.BaseHook.AttentionScore)
		require.Len(t, pkg.VideoPlan, 3)
		assert.Equal(t, "hook", pkg.VideoPlan[0].Name)
	}

	// Highest attention score wins: sales curiosity_gap and controversial
	// both score 9; the first seen wins
	assert.Equal(t, 9, output.RecommendedHook.AttentionScore)
	assert.Equal(t, models.HookControversial, output.RecommendedHook.Style)
}

func TestFormatReport(t *testing.T) {
	agent := NewAgent(testLogger())

	output, err := agent.Process(testInput())
	require.NoError(t, err)

	report := FormatReport(output)

	assert.Contains(t, report, "חבילת הוקים")
	assert.Contains(t, report, "ההוק המומלץ")
	assert.Contains(t, report, "כל ההוקים")
	assert.Contains(t, report, "פתיחות מומלצות לתסריט")
	assert.Contains(t, report, "טיפים למסירה אפקטיבית")
	assert.Contains(t, report, "A/B:")
}
