// Package hook generates attention-grabbing openings for short-form video
// from static (style × tone) template tables. Two profiles exist: the
// Hebrew template profile and a generic English profile with attention
// scoring and video section planning.
package hook

import (
	"fmt"
	"strings"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

// Composer generates Hebrew hooks from the template tables
type Composer struct{}

// NewComposer creates a new hook composer
func NewComposer() *Composer {
	return &Composer{}
}

// Template returns the template at index for a (style, tone) pair,
// wrapping modulo the list length. Missing pairs yield the bare topic.
func Template(style models.HookStyle, tone models.Tone, index int) string {
	templates := hebrewTemplates[style][tone]
	if len(templates) == 0 {
		return "{topic}"
	}
	return templates[index%len(templates)]
}

// interpolate substitutes the topic into a template
func interpolate(template, topic string) string {
	return strings.ReplaceAll(template, "{topic}", topic)
}

// GenerateForStyle builds the base hook for one style. The first template
// of the (style, tone) pair is always used.
func (c *Composer) GenerateForStyle(style models.HookStyle, tone models.Tone, topic string) models.Hook {
	text := interpolate(Template(style, tone, 0), topic)

	notes, ok := engagementNotes[style]
	if !ok {
		notes = defaultEngagementNote
	}

	fit, ok := platformFit[style]
	if !ok {
		fit = models.AllPlatforms()
	}

	return models.Hook{
		Style:            style,
		Text:             text,
		DurationEstimate: estimateDuration(text),
		PlatformFit:      fit,
		EngagementNotes:  notes,
	}
}

// ABVariant returns the second template interpolated, or "" when the
// (style, tone) pair has no distinct alternative.
func (c *Composer) ABVariant(style models.HookStyle, tone models.Tone, topic string) string {
	primary := Template(style, tone, 0)
	alt := Template(style, tone, 1)
	if alt == primary {
		return ""
	}
	return interpolate(alt, topic)
}

// OptimizeForPlatform produces the platform-tuned variation of a hook
func (c *Composer) OptimizeForPlatform(hookText string, platform models.Platform, topic string) models.HookVariation {
	optimized := hookText
	if platform == models.PlatformTikTok {
		optimized = stripFillers(hookText)
	}

	visual, ok := visualSuggestions[platform]
	if !ok {
		visual = defaultVisualSuggestion
	}

	return models.HookVariation{
		Platform:         platform,
		HookText:         optimized,
		VisualSuggestion: visual,
		TextOverlay:      textOverlay(topic, platform != models.PlatformYouTubeShorts),
	}
}

// SelectBest returns the first hook matching the tone's style priority
// list, falling back to the first generated hook.
func (c *Composer) SelectBest(hooks []models.Hook, tone models.Tone) (models.Hook, bool) {
	if len(hooks) == 0 {
		return models.Hook{}, false
	}

	for _, preferred := range tonePriority[tone] {
		for _, h := range hooks {
			if h.Style == preferred {
				return h, true
			}
		}
	}
	return hooks[0], true
}

// EngagementTips returns the delivery tips for a tone
func (c *Composer) EngagementTips(tone models.Tone) []string {
	return engagementTips[tone]
}

// estimateDuration approximates spoken length at ~3 Hebrew words per
// second, clamped to 2-5 seconds.
func estimateDuration(text string) string {
	seconds := len(strings.Fields(text))/3 + 1
	if seconds < 2 {
		seconds = 2
	}
	if seconds > 5 {
		seconds = 5
	}
	return fmt.Sprintf("%d-%d שניות", seconds, seconds+1)
}

// fillerWords are stripped for TikTok's punchier pacing
var fillerWords = []string{"בעצם", "כאילו", "אז", "נו"}

func stripFillers(text string) string {
	result := text
	for _, filler := range fillerWords {
		result = strings.ReplaceAll(result, " "+filler+" ", " ")
	}
	return strings.TrimSpace(result)
}

// textOverlay suggests on-screen text: a hashtag for short overlays,
// a teaser line otherwise.
func textOverlay(topic string, short bool) string {
	if short {
		return "#" + strings.ReplaceAll(topic, " ", "")
	}
	return "חייבים לדעת על " + topic
}
