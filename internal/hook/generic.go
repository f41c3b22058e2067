package hook

import (
	"strings"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

// genericTemplates holds the English viral-structure templates per
// (style, tone). Index 0 is primary, index 1 the A/B variant.
var genericTemplates = map[models.HookStyle]map[models.Tone][]string{
	models.HookQuestion: {
		models.ToneCasual:       {"Wait, did you know this about {topic}?", "What if everything you know about {topic} is wrong?"},
		models.ToneEducational:  {"What's the real difference when it comes to {topic}?", "How does {topic} actually work?"},
		models.ToneMotivational: {"What's stopping you from {topic}?", "Why haven't you started {topic} yet?"},
		models.ToneSales:        {"Want to know how {topic} changed everything for us?", "Still struggling with {topic}?"},
	},
	models.HookBoldStatement: {
		models.ToneCasual:       {"{topic} - and that's final.", "Let's talk about {topic}."},
		models.ToneEducational:  {"Here's the truth about {topic}.", "This is what nobody tells you about {topic}."},
		models.ToneMotivational: {"You can master {topic}.", "Today is the day you change {topic}."},
		models.ToneSales:        {"This is the secret to {topic}.", "Stop everything - {topic}."},
	},
	models.HookStory: {
		models.ToneCasual:       {"So last week something wild happened with {topic}...", "Quick story about {topic}..."},
		models.ToneEducational:  {"When I started researching {topic}, I found something surprising...", "Here's what I learned about {topic}..."},
		models.ToneMotivational: {"A year ago I was in a completely different place with {topic}...", "The moment everything changed with {topic}..."},
		models.ToneSales:        {"A client came to me with a {topic} problem...", "Someone asked me about {topic} and..."},
	},
	models.HookStatistic: {
		models.ToneCasual:       {"90% of people get {topic} wrong.", "Only 3% succeed at {topic}."},
		models.ToneEducational:  {"The research on {topic} is clear.", "By the numbers, {topic}."},
		models.ToneMotivational: {"You're in the 1% if {topic}.", "The statistics are against you, but {topic}."},
		models.ToneSales:        {"Our clients saw a 300% lift in {topic}.", "97% of people who tried {topic}."},
	},
	models.HookControversial: {
		models.ToneCasual:       {"Unpopular opinion: {topic}.", "I'm about to upset some people - {topic}."},
		models.ToneEducational:  {"Everyone is wrong about {topic}.", "Contrary to what you were taught, {topic}."},
		models.ToneMotivational: {"Stop believing you can't {topic}.", "It's time to break the myth about {topic}."},
		models.ToneSales:        {"Your competitors don't want you to know about {topic}.", "Why is everyone overpaying for {topic}?"},
	},
	models.HookCuriosityGap: {
		models.ToneCasual:       {"Nobody talks about this side of {topic}...", "What I'm about to reveal about {topic}..."},
		models.ToneEducational:  {"There's a hidden reason behind {topic}...", "This one detail about {topic} changes everything..."},
		models.ToneMotivational: {"This trick changed my life with {topic}...", "After you see this, {topic} will never be the same."},
		models.ToneSales:        {"Here's why our clients never go back to the old way of {topic}...", "This one small change in {topic} made all the difference..."},
	},
	models.HookDirectAddress: {
		models.ToneCasual:       {"If you're dealing with {topic}, listen up.", "This is for you if {topic}."},
		models.ToneEducational:  {"If you want to understand {topic}, here's the guide.", "For everyone trying to learn {topic}."},
		models.ToneMotivational: {"If you're tired of {topic}, here's the fix.", "If you're ready to change {topic}, start here."},
		models.ToneSales:        {"If you're still struggling with {topic}, there's a solution.", "If you're looking for {topic}, you found it."},
	},
}

// attentionBase is the static attention score per style (6-9).
// Motivational tone adds one point, capped at 10.
var attentionBase = map[models.HookStyle]int{
	models.HookQuestion:      8,
	models.HookBoldStatement: 7,
	models.HookStory:         6,
	models.HookStatistic:     8,
	models.HookControversial: 9,
	models.HookCuriosityGap:  9,
	models.HookDirectAddress: 7,
}

// toneMarkers are prepended to non-casual generic hooks
var toneMarkers = map[models.Tone]string{
	models.ToneEducational:  "📚",
	models.ToneMotivational: "🔥",
	models.ToneSales:        "👉",
}

// GenericComposer generates English viral-structure hooks with attention
// scoring and video section planning.
type GenericComposer struct{}

// NewGenericComposer creates a new generic-profile composer
func NewGenericComposer() *GenericComposer {
	return &GenericComposer{}
}

// genericTemplate mirrors Template for the English table
func genericTemplate(style models.HookStyle, tone models.Tone, index int) string {
	templates := genericTemplates[style][tone]
	if len(templates) == 0 {
		return "{topic}"
	}
	return templates[index%len(templates)]
}

// GenerateForStyle builds the base generic hook for one style, decorated
// for the tone and carrying an attention score.
func (c *GenericComposer) GenerateForStyle(style models.HookStyle, tone models.Tone, topic string) models.Hook {
	text := Decorate(interpolate(genericTemplate(style, tone, 0), topic), tone)

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
		AttentionScore:   AttentionScore(style, tone),
	}
}

// ABVariant returns the decorated second template, or "" when identical
// to the first.
func (c *GenericComposer) ABVariant(style models.HookStyle, tone models.Tone, topic string) string {
	primary := genericTemplate(style, tone, 0)
	alt := genericTemplate(style, tone, 1)
	if alt == primary {
		return ""
	}
	return Decorate(interpolate(alt, topic), tone)
}

// Decorate applies the tone styling: casual stretches sentence-final
// periods into ellipses, other tones get a leading marker.
func Decorate(text string, tone models.Tone) string {
	if tone == models.ToneCasual {
		if strings.HasSuffix(text, "...") {
			return text
		}
		text = strings.ReplaceAll(text, ". ", "... ")
		if strings.HasSuffix(text, ".") {
			text = strings.TrimSuffix(text, ".") + "..."
		}
		return text
	}
	if marker, ok := toneMarkers[tone]; ok {
		return marker + " " + text
	}
	return text
}

// AttentionScore returns the static heuristic score for a (style, tone)
func AttentionScore(style models.HookStyle, tone models.Tone) int {
	score, ok := attentionBase[style]
	if !ok {
		score = 6
	}
	if tone == models.ToneMotivational {
		score++
	}
	if score > 10 {
		score = 10
	}
	return score
}

// VideoPlan lays out the standard short-form structure following a hook
func (c *GenericComposer) VideoPlan(hookText, keyMessage string) []models.VideoSection {
	return []models.VideoSection{
		{
			Name:     "hook",
			Timing:   "0-3s",
			Guidance: "Open on the hook line, face to camera: " + hookText,
		},
		{
			Name:     "body",
			Timing:   "3-20s",
			Guidance: "Deliver the key message with one concrete example: " + keyMessage,
		},
		{
			Name:     "cta",
			Timing:   "20-30s",
			Guidance: "Close with a single clear ask - comment, save, or follow",
		},
	}
}
