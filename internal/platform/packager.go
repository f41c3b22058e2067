// Package platform adapts generated captions to each target platform's
// tone lexicon and length limits, and attaches posting advisories.
package platform

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

// longCaptionExtra is added to the profile caption limit for the long variant
const longCaptionExtra = 200

// Packager produces the final per-platform publishing package
type Packager struct{}

// NewPackager creates a new platform packager
func NewPackager() *Packager {
	return &Packager{}
}

// GetProfile returns the static profile for a platform
func GetProfile(p models.Platform) (Profile, bool) {
	profile, ok := profiles[p]
	return profile, ok
}

// Adapt builds the complete package for one platform
func (p *Packager) Adapt(captions models.CaptionSet, platform models.Platform, tone models.Tone, hashtags []string, topic string) models.PlatformPackage {
	profile := profiles[platform]

	return models.PlatformPackage{
		Platform:          platform,
		CaptionA:          adaptCaption(captions.CaptionShort, platform, profile.MaxCaptionLength),
		CaptionB:          adaptCaption(captions.CaptionLong, platform, profile.MaxCaptionLength+longCaptionExtra),
		Hashtags:          hashtags,
		PostingSuggestion: postingSuggestion(platform, tone),
		ToneNotes:         toneNotes(platform, tone),
	}
}

// adaptCaption applies the platform tone lexicon and trims to maxLength,
// keeping whole sentences where possible.
func adaptCaption(caption string, platform models.Platform, maxLength int) string {
	adapted := caption

	for _, adj := range toneAdjustments[platform] {
		adapted = strings.ReplaceAll(adapted, adj.From, adj.To)
	}

	// Replacements with empty values can leave double spaces
	for strings.Contains(adapted, "  ") {
		adapted = strings.ReplaceAll(adapted, "  ", " ")
	}

	if utf8.RuneCountInString(adapted) > maxLength {
		adapted = trimToSentences(adapted, maxLength)
	}

	return strings.TrimSpace(adapted)
}

// trimToSentences keeps whole ". "-delimited sentences that fit within
// maxLength; when none fit, it hard-truncates with an ellipsis.
func trimToSentences(text string, maxLength int) string {
	sentences := strings.Split(text, ". ")

	var trimmed strings.Builder
	for _, sentence := range sentences {
		if utf8.RuneCountInString(trimmed.String())+utf8.RuneCountInString(sentence)+2 <= maxLength-3 {
			trimmed.WriteString(sentence)
			trimmed.WriteString(". ")
		} else {
			break
		}
	}

	if trimmed.Len() > 0 {
		return strings.TrimSpace(trimmed.String())
	}

	runes := []rune(text)
	return string(runes[:maxLength-3]) + "..."
}

// postingSuggestion joins the timing and strategy advisories for
// (platform, tone) with " | ".
func postingSuggestion(platform models.Platform, tone models.Tone) string {
	profile := profiles[platform]

	suggestions := []string{
		"זמנים מומלצים: " + strings.Join(profile.BestPostingTimes, ", "),
	}

	if note, ok := toneTimingNotes[tone]; ok {
		suggestions = append(suggestions, note)
	}
	if note, ok := platformStrategyNotes[platform]; ok {
		suggestions = append(suggestions, note)
	}

	return strings.Join(suggestions, " | ")
}

// toneNotes joins the platform tone profile and tone-alignment advisories
func toneNotes(platform models.Platform, tone models.Tone) string {
	profile := profiles[platform]

	chars := profile.Characteristics
	if len(chars) > 3 {
		chars = chars[:3]
	}

	notes := []string{
		"טון " + profile.HebrewName + ": " + profile.Tone,
		"מאפיינים: " + strings.Join(chars, ", "),
	}
	if note, ok := toneVibeNotes[tone]; ok {
		notes = append(notes, note)
	}
	notes = append(notes, "אימוג׳י: "+profile.EmojiStyle)

	return strings.Join(notes, " | ")
}

// Summary renders the platform characteristics as a multi-line report
func (p *Packager) Summary(platform models.Platform) string {
	profile := profiles[platform]

	lines := []string{
		"פלטפורמה: " + profile.HebrewName,
		"טון: " + profile.Tone,
		"אורך מומלץ: עד " + strconv.Itoa(profile.MaxCaptionLength) + " תווים",
		"מאפיינים: " + strings.Join(profile.Characteristics, ", "),
		"זמני פרסום: " + strings.Join(profile.BestPostingTimes, ", "),
	}

	return strings.Join(lines, "\n")
}
