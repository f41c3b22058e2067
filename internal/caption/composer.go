// Package caption assembles short and long Hebrew captions from
// tone-keyed template tables.
package caption

import (
	"strings"
	"unicode/utf8"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

const (
	shortSentenceMax = 80  // Runes before the short caption gets word-capped
	shortWordCap     = 12  // Words kept when the first sentence is too long
	longCondenseAt   = 300 // Runes before the long caption is condensed
	longSentenceCap  = 4   // Sentences kept when condensing
)

// Composer generates captions for social platforms
type Composer struct{}

// NewComposer creates a new caption composer
func NewComposer() *Composer {
	return &Composer{}
}

// Generate builds the short and long caption variants for one platform
func (c *Composer) Generate(correctedText, topic string, tone models.Tone, platform models.Platform) models.CaptionSet {
	hooks, ok := hookStarters[tone]
	if !ok {
		hooks = hookStarters[models.ToneCasual]
	}
	ctas, ok := softCTAs[tone]
	if !ok {
		ctas = softCTAs[models.ToneCasual]
	}

	hook := selectHook(hooks, topic)
	cta := selectCTA(ctas, platform)

	return models.CaptionSet{
		CaptionShort: c.shortCaption(correctedText, hook, cta, platform),
		CaptionLong:  c.longCaption(correctedText, hook, cta, platform),
	}
}

// selectHook prefers a question-shaped opener for question-shaped topics,
// otherwise the first template.
func selectHook(hooks []string, topic string) string {
	if strings.Contains(topic, "?") || strings.Contains(topic, "למה") || strings.Contains(topic, "איך") {
		for _, h := range hooks {
			if strings.HasSuffix(h, "?") || strings.HasSuffix(h, ":") {
				return h
			}
		}
	}
	return hooks[0]
}

// selectCTA prefers the CTA matching the platform's engagement pattern,
// otherwise the first template.
func selectCTA(ctas []string, platform models.Platform) string {
	var match func(string) bool

	switch platform {
	case models.PlatformTikTok:
		// TikTok rewards comment engagement
		match = func(c string) bool {
			return strings.Contains(c, "תגובות") || strings.Contains(c, "תייגו") || strings.Contains(c, "?")
		}
	case models.PlatformInstagram:
		// Instagram rewards saves and shares
		match = func(c string) bool {
			return strings.Contains(c, "שמרו") || strings.Contains(c, "שתפו")
		}
	case models.PlatformYouTubeShorts:
		// YouTube rewards subscriptions
		match = func(c string) bool {
			return strings.Contains(c, "עקבו") || strings.Contains(c, "עוד")
		}
	}

	if match != nil {
		for _, c := range ctas {
			if match(c) {
				return c
			}
		}
	}
	return ctas[0]
}

// shortCaption builds the punchy variant: hook + first sentence, CTA
// appended for every platform except TikTok.
func (c *Composer) shortCaption(text, hook, cta string, platform models.Platform) string {
	sentences := splitSentences(text)

	var keyMessage string
	if len(sentences) == 0 {
		keyMessage = truncateRunes(text, 100)
	} else {
		keyMessage = sentences[0]
		if utf8.RuneCountInString(keyMessage) > shortSentenceMax {
			words := strings.Fields(keyMessage)
			if len(words) > shortWordCap {
				words = words[:shortWordCap]
			}
			keyMessage = strings.Join(words, " ")
			if !strings.HasSuffix(keyMessage, ".") && !strings.HasSuffix(keyMessage, "!") && !strings.HasSuffix(keyMessage, "?") {
				keyMessage += "..."
			}
		}
	}

	caption := hook + " " + keyMessage

	// TikTok captions stay minimal
	if platform != models.PlatformTikTok {
		caption += "\n\n" + cta
	}

	return strings.TrimSpace(caption)
}

// longCaption builds the detailed variant: hook, condensed body, CTA
func (c *Composer) longCaption(text, hook, cta string, platform models.Platform) string {
	var parts []string

	parts = append(parts, hook)

	body := strings.TrimSpace(text)
	if utf8.RuneCountInString(body) > longCondenseAt {
		sentences := splitSentences(body)
		if len(sentences) > longSentenceCap {
			sentences = sentences[:longSentenceCap]
		}
		body = strings.Join(sentences, ". ") + "."
	}
	parts = append(parts, body)

	// Instagram likes breathing room before the CTA
	if platform == models.PlatformInstagram {
		parts = append(parts, "")
	}

	parts = append(parts, cta)

	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	if platform == models.PlatformTikTok {
		return strings.Join(nonEmpty, " ")
	}
	return strings.Join(nonEmpty, "\n\n")
}

// AddEmojis decorates up to max lines with a keyword-matched emoji
func (c *Composer) AddEmojis(caption string, max int) string {
	added := 0
	for _, e := range emojiByKeyword {
		if added >= max {
			break
		}
		if !strings.Contains(caption, e.Keyword) {
			continue
		}
		lines := strings.Split(caption, "\n")
		for i, line := range lines {
			if strings.Contains(line, e.Keyword) && !strings.Contains(line, e.Emoji) {
				lines[i] = line + " " + e.Emoji
				added++
				break
			}
		}
		caption = strings.Join(lines, "\n")
	}
	return caption
}

// splitSentences splits on sentence-final punctuation, normalizing "!" and
// "?" to "." first, and drops empty segments.
func splitSentences(text string) []string {
	normalized := strings.ReplaceAll(text, "!", ".")
	normalized = strings.ReplaceAll(normalized, "?", ".")

	var sentences []string
	for _, s := range strings.Split(normalized, ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// truncateRunes cuts s to at most n runes
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
