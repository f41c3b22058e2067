package caption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

const sampleText = "אימון בוקר קצר משפר את כל היום. מספיקות עשר דקות בבית. התוצאות מגיעות מהר."

func TestGenerateShortAndLong(t *testing.T) {
	c := NewComposer()

	set := c.Generate(sampleText, "אימוני בוקר", models.ToneCasual, models.PlatformInstagram)

	require.NotEmpty(t, set.CaptionShort)
	require.NotEmpty(t, set.CaptionLong)
	// Short opens with the default casual hook and keeps only the first sentence
	assert.True(t, strings.HasPrefix(set.CaptionShort, "אוקיי אז"))
	assert.Contains(t, set.CaptionShort, "אימון בוקר קצר משפר את כל היום")
	assert.NotContains(t, set.CaptionShort, "מספיקות עשר דקות")
	// Long keeps the full body
	assert.Contains(t, set.CaptionLong, "מספיקות עשר דקות בבית")
}

func TestTikTokShortCaptionHasNoCTA(t *testing.T) {
	c := NewComposer()

	set := c.Generate(sampleText, "אימוני בוקר", models.ToneCasual, models.PlatformTikTok)

	for _, cta := range softCTAs[models.ToneCasual] {
		assert.NotContains(t, set.CaptionShort, cta)
	}
	assert.NotContains(t, set.CaptionShort, "\n\n")
}

func TestNonTikTokShortCaptionHasCTA(t *testing.T) {
	c := NewComposer()

	for _, p := range []models.Platform{models.PlatformInstagram, models.PlatformYouTubeShorts} {
		set := c.Generate(sampleText, "אימוני בוקר", models.ToneCasual, p)
		assert.Contains(t, set.CaptionShort, "\n\n", "platform: %s", p)
	}
}

func TestTikTokLongCaptionSingleLine(t *testing.T) {
	c := NewComposer()

	set := c.Generate(sampleText, "אימוני בוקר", models.ToneCasual, models.PlatformTikTok)

	assert.NotContains(t, set.CaptionLong, "\n")
}

func TestQuestionTopicPrefersQuestionHook(t *testing.T) {
	c := NewComposer()

	set := c.Generate(sampleText, "איך מתחילים להתאמן", models.ToneEducational, models.PlatformInstagram)

	// First educational hook ending with ":" wins for question-shaped topics
	assert.True(t, strings.HasPrefix(set.CaptionShort, "הנה משהו שלא ידעתם:"))
}

func TestPlatformCTASelection(t *testing.T) {
	c := NewComposer()

	// Instagram prefers save/share CTAs
	ig := c.Generate(sampleText, "אימוני בוקר", models.ToneCasual, models.PlatformInstagram)
	assert.Contains(t, ig.CaptionShort, "שתפו אם הזדהיתם")

	// YouTube prefers follow CTAs
	yt := c.Generate(sampleText, "אימוני בוקר", models.ToneEducational, models.PlatformYouTubeShorts)
	assert.Contains(t, yt.CaptionShort, "עקבו לעוד טיפים")
}

func TestLongFirstSentenceGetsWordCapped(t *testing.T) {
	c := NewComposer()
	longSentence := strings.Repeat("מילה ", 30) + "סוף. עוד משפט."

	set := c.Generate(longSentence, "נושא", models.ToneCasual, models.PlatformInstagram)

	assert.Contains(t, set.CaptionShort, "...")
	// 12 words max plus the hook
	firstLine := strings.Split(set.CaptionShort, "\n")[0]
	assert.LessOrEqual(t, len(strings.Fields(firstLine)), shortWordCap+3)
}

func TestLongCaptionCondensed(t *testing.T) {
	c := NewComposer()

	var sb strings.Builder
	for i := 0; i < 12; i++ {
		sb.WriteString("זה משפט ארוך שחוזר על עצמו שוב ושוב בלי סוף. ")
	}

	set := c.Generate(sb.String(), "נושא", models.ToneCasual, models.PlatformInstagram)

	// Condensed to four sentences
	assert.Equal(t, 4, strings.Count(set.CaptionLong, "זה משפט ארוך"))
}

func TestAddEmojis(t *testing.T) {
	c := NewComposer()

	decorated := c.AddEmojis("טיפ קטן להיום\nקצת על כסף", 2)

	assert.Contains(t, decorated, "💡")
	assert.Contains(t, decorated, "💰")
}

func TestAddEmojisRespectsMax(t *testing.T) {
	c := NewComposer()

	decorated := c.AddEmojis("טיפ חשוב על כסף ועל עבודה", 1)

	count := 0
	for _, e := range []string{"💡", "⚡", "💰", "💼"} {
		count += strings.Count(decorated, e)
	}
	assert.Equal(t, 1, count)
}

func TestAddEmojisNoDuplicates(t *testing.T) {
	c := NewComposer()

	once := c.AddEmojis("טיפ להיום", 3)
	twice := c.AddEmojis(once, 3)

	assert.Equal(t, once, twice)
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("ראשון. שני! שלישי? ")
	assert.Equal(t, []string{"ראשון", "שני", "שלישי"}, sentences)
}
