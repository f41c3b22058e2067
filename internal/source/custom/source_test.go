package custom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizenati71-dev/media-agents/internal/config"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "console", Output: "stdout"})
}

func TestFetch(t *testing.T) {
	src := New(config.CustomConfig{
		Enabled: true,
		Briefs: []config.CustomBrief{
			{Topic: "אימוני בוקר", Caption: "למה כדאי להתאמן בבוקר", Audience: "צעירים"},
			{Topic: "תזונה נכונה"},
			{},
		},
	}, testLogger())

	briefs, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, briefs, 2)

	assert.Equal(t, "למה כדאי להתאמן בבוקר", briefs[0].RawCaption)
	assert.Equal(t, "אימוני בוקר", briefs[0].VideoTopic)
	assert.Equal(t, "צעירים", briefs[0].TargetAudience)
	assert.Equal(t, "custom", briefs[0].SourceType)

	// Caption falls back to the topic when missing
	assert.Equal(t, "תזונה נכונה", briefs[1].RawCaption)
}

func TestHealthCheck(t *testing.T) {
	src := New(config.CustomConfig{}, testLogger())
	assert.NoError(t, src.HealthCheck(context.Background()))
}
