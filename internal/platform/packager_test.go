package platform

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

func TestGetProfile(t *testing.T) {
	for _, p := range models.AllPlatforms() {
		profile, ok := GetProfile(p)
		require.True(t, ok, "platform: %s", p)
		assert.NotEmpty(t, profile.HebrewName)
		assert.Positive(t, profile.MaxCaptionLength)
		assert.NotEmpty(t, profile.BestPostingTimes)
	}

	_, ok := GetProfile(models.Platform("myspace"))
	assert.False(t, ok)
}

func TestAdaptAppliesToneLexicon(t *testing.T) {
	p := NewPackager()

	captions := models.CaptionSet{
		CaptionShort: "יאללה בואו נתחיל",
		CaptionLong:  "יאללה בואו נתחיל עכשיו",
	}

	ig := p.Adapt(captions, models.PlatformInstagram, models.ToneCasual, nil, "נושא")
	assert.Equal(t, "הנה בואו נתחיל", ig.CaptionA)

	yt := p.Adapt(captions, models.PlatformYouTubeShorts, models.ToneCasual, nil, "נושא")
	assert.Equal(t, "בואו בואו נתחיל", yt.CaptionA)
}

func TestAdaptCollapsesDoubleSpaces(t *testing.T) {
	// The "נו" deletion on Instagram leaves a double space behind
	adapted := adaptCaption("רגע נו תקשיבו", models.PlatformInstagram, 500)
	assert.Equal(t, "רגע תקשיבו", adapted)
	assert.NotContains(t, adapted, "  ")
}

func TestAdaptTrimsAtSentenceBoundary(t *testing.T) {
	first := strings.Repeat("א", 60)
	second := strings.Repeat("ב", 80)
	caption := first + ". " + second + "."

	adapted := adaptCaption(caption, models.PlatformTikTok, 100)

	// Only the first sentence fits inside 100 runes
	assert.Equal(t, first+".", adapted)
}

func TestAdaptHardTruncatesWhenNoSentenceFits(t *testing.T) {
	caption := strings.Repeat("א", 200)

	adapted := adaptCaption(caption, models.PlatformTikTok, 100)

	assert.True(t, strings.HasSuffix(adapted, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(adapted), 100)
}

func TestAdaptLongCaptionGetsExtraBudget(t *testing.T) {
	p := NewPackager()
	body := strings.Repeat("א", 200)

	pkg := p.Adapt(models.CaptionSet{
		CaptionShort: body,
		CaptionLong:  body,
	}, models.PlatformTikTok, models.ToneCasual, nil, "נושא")

	// 200 runes blows TikTok's 150 cap for the short variant but fits
	// inside the long variant's extended budget
	assert.True(t, strings.HasSuffix(pkg.CaptionA, "..."))
	assert.Equal(t, body, pkg.CaptionB)
}

func TestPostingSuggestion(t *testing.T) {
	s := postingSuggestion(models.PlatformTikTok, models.ToneEducational)

	parts := strings.Split(s, " | ")
	require.Len(t, parts, 3)
	assert.Contains(t, parts[0], "זמנים מומלצים")
	assert.Equal(t, "תוכן לימודי עובד טוב בבוקר כשאנשים פתוחים ללמוד", parts[1])
	assert.Contains(t, parts[2], "טיקטוק")
}

func TestToneNotes(t *testing.T) {
	s := toneNotes(models.PlatformInstagram, models.ToneSales)

	assert.Contains(t, s, "טון אינסטגרם: emotional + clean")
	assert.Contains(t, s, "רך ולא אגרסיבי")
	assert.Contains(t, s, "אימוג׳י: moderate")
	// Characteristics capped at three
	assert.NotContains(t, s, "אסתטי")
}

func TestAdaptCarriesHashtags(t *testing.T) {
	p := NewPackager()
	tags := []string{"#אחד", "#שניים"}

	pkg := p.Adapt(models.CaptionSet{CaptionShort: "טקסט", CaptionLong: "טקסט"},
		models.PlatformInstagram, models.ToneCasual, tags, "נושא")

	assert.Equal(t, tags, pkg.Hashtags)
	assert.Equal(t, models.PlatformInstagram, pkg.Platform)
}

func TestSummary(t *testing.T) {
	p := NewPackager()

	s := p.Summary(models.PlatformYouTubeShorts)

	assert.Contains(t, s, "פלטפורמה: יוטיוב שורטס")
	assert.Contains(t, s, "עד 100 תווים")
	assert.Contains(t, s, "זמני פרסום:")
}
