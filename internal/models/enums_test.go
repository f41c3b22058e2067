package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		token    string
		expected Platform
	}{
		{"tiktok", PlatformTikTok},
		{"instagram", PlatformInstagram},
		{"ig", PlatformInstagram},
		{"youtube", PlatformYouTubeShorts},
		{"youtube_shorts", PlatformYouTubeShorts},
		{"yt", PlatformYouTubeShorts},
		{"shorts", PlatformYouTubeShorts},
		{"TikTok", PlatformTikTok},
		{" instagram ", PlatformInstagram},
	}

	for _, tt := range tests {
		p, err := ParsePlatform(tt.token)
		require.NoError(t, err, "token: %q", tt.token)
		assert.Equal(t, tt.expected, p)
	}

	_, err := ParsePlatform("myspace")
	assert.Error(t, err)
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		token    string
		expected Tone
	}{
		{"casual", ToneCasual},
		{"educational", ToneEducational},
		{"motivational", ToneMotivational},
		{"sales", ToneSales},
		{"לימודי", ToneEducational},
		{"מכירות", ToneSales},
		{"Casual", ToneCasual},
	}

	for _, tt := range tests {
		tone, err := ParseTone(tt.token)
		require.NoError(t, err, "token: %q", tt.token)
		assert.Equal(t, tt.expected, tone)
	}

	_, err := ParseTone("angry")
	assert.Error(t, err)
}

func TestParseHookStyle(t *testing.T) {
	style, err := ParseHookStyle("curiosity_gap")
	require.NoError(t, err)
	assert.Equal(t, HookCuriosityGap, style)

	style, err = ParseHookStyle(" Question ")
	require.NoError(t, err)
	assert.Equal(t, HookQuestion, style)

	_, err = ParseHookStyle("clickbait")
	assert.Error(t, err)
}

func TestHebrewNames(t *testing.T) {
	assert.Equal(t, "טיקטוק", PlatformTikTok.HebrewName())
	assert.Equal(t, "קז׳ואל", ToneCasual.HebrewName())
	assert.Equal(t, "מכירתי", ToneSales.HebrewName())
}

func TestContentInputNormalize(t *testing.T) {
	input := ContentInput{RawCaption: "כיתוב"}.Normalize()
	assert.Equal(t, DefaultPlatforms(), input.Platforms)

	explicit := ContentInput{
		RawCaption: "כיתוב",
		Platforms:  []Platform{PlatformInstagram},
	}.Normalize()
	assert.Equal(t, []Platform{PlatformInstagram}, explicit.Platforms)
}

func TestHookInputNormalize(t *testing.T) {
	input := HookInput{VideoTopic: "נושא"}.Normalize()

	assert.Equal(t, DefaultPlatforms(), input.Platforms)
	assert.Equal(t, AllHookStyles(), input.HookStyles)
}

func TestDraftContentInput(t *testing.T) {
	draft := &Draft{
		RawCaption:     "כיתוב",
		VideoTopic:     "נושא",
		TargetAudience: "קהל",
		Tone:           ToneEducational,
		Platforms:      StringSlice{"tiktok", "nonsense", "ig"},
	}

	input := draft.ContentInput()

	assert.Equal(t, ToneEducational, input.Tone)
	// Unknown platform tokens are dropped
	assert.Equal(t, []Platform{PlatformTikTok, PlatformInstagram}, input.Platforms)
}
